package component

import "github.com/lixenwraith/super-dash/vmath"

// Coin is created in a batch at run start and only ever flips to collected
type Coin struct {
	ID        int
	Position  vmath.Vec2
	Collected bool
}

// CountCollected returns how many coins in the batch are collected
func CountCollected(coins []Coin) int {
	n := 0
	for i := range coins {
		if coins[i].Collected {
			n++
		}
	}
	return n
}
