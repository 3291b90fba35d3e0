package main

import (
	"flag"
	"os"
	"time"

	"grid-snake/config"
	"grid-snake/game"
	"grid-snake/game/manager"
	"grid-snake/game/types"
	"grid-snake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// steering maps keys to headings, WASD and arrows
var steering = map[int32]types.Direction{
	rl.KeyW:     types.Up,
	rl.KeyUp:    types.Up,
	rl.KeyS:     types.Down,
	rl.KeyDown:  types.Down,
	rl.KeyA:     types.Left,
	rl.KeyLeft:  types.Left,
	rl.KeyD:     types.Right,
	rl.KeyRight: types.Right,
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	size := flag.Int("size", cfg.BoardSize, "Board width and height in cells")
	seed := flag.Uint64("seed", cfg.Seed, "Random seed for food placement (0 = clock)")
	flag.Parse()
	cfg.BoardSize = *size
	cfg.Seed = *seed
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	g, err := game.NewGame(cfg.BoardSize, rng)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game")
	}
	log.Info().Str("game", g.UUID).Int("size", cfg.BoardSize).Uint64("seed", cfg.Seed).Msg("starting snake")

	rl.InitWindow(int32(cfg.WindowWidth), int32(cfg.WindowHeight), "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()
	lastUpdate := time.Now()

	for !rl.WindowShouldClose() {
		handleInput(g)

		now := time.Now()
		if err := g.Update(now.Sub(lastUpdate)); err != nil {
			log.Fatal().Err(err).Str("game", g.UUID).Msg("game state corrupted")
		}
		lastUpdate = now

		renderer.Draw(g)
	}

	log.Info().Str("game", g.UUID).Int("best", g.State.GetHighScore()).Msg("bye")
}

func handleInput(g *game.Game) {
	for key, dir := range steering {
		if rl.IsKeyPressed(key) {
			g.Steer(dir)
		}
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.Toggle()
	}

	if rl.IsKeyPressed(rl.KeyR) && g.State.GetStatus() == manager.Ended {
		if err := g.Reset(); err != nil {
			log.Fatal().Err(err).Msg("failed to reset game")
		}
		log.Info().Str("game", g.UUID).Msg("new game")
	}
}
