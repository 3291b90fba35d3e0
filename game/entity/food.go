package entity

import "grid-snake/game/types"

// Food marks a single consumable cell
type Food struct {
	cell types.Cell
}

func NewFood(cell types.Cell) *Food {
	return &Food{cell: cell}
}

func (f *Food) Cell() types.Cell {
	return f.cell
}
