package manager

import (
	"time"

	"grid-snake/game/entity"
	"grid-snake/game/types"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type FoodManager struct {
	rng *rand.Rand
}

// NewFoodManager uses rng for placement; nil seeds a generator from the clock.
func NewFoodManager(rng *rand.Rand) *FoodManager {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &FoodManager{
		rng: rng,
	}
}

// GenerateFood picks one of the free cells uniformly.
// It returns false when there is no free cell left.
func (fm *FoodManager) GenerateFood(free []types.Cell) (*entity.Food, bool) {
	if len(free) == 0 {
		log.Debug().Msg("no free cell left for food")
		return nil, false
	}
	cell := free[fm.rng.Intn(len(free))]
	log.Debug().Int("x", cell.X).Int("y", cell.Y).Int("free", len(free)).Msg("food placed")
	return entity.NewFood(cell), true
}
