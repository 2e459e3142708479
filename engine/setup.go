package engine

import (
	"github.com/lixenwraith/super-dash/component"
	"github.com/lixenwraith/super-dash/parameter"
	"github.com/lixenwraith/super-dash/vmath"
)

// placeCoins builds the run's coin batch by rejection sampling
// Fewer than count coins are placed if attempts run out; the win check uses the batch size
func placeCoins(s *State, count int) {
	coins := make([]component.Coin, 0, count)
	for attempts := 0; len(coins) < count && attempts < parameter.CoinMaxAttempts; attempts++ {
		p := s.Layout.RandomPoint(s.RNG, parameter.CoinMargin)
		if s.Layout.IsInsideAnyObstacle(p, parameter.CoinObstaclePadding) {
			continue
		}
		coins = append(coins, component.Coin{ID: len(coins), Position: p})
	}
	s.Coins = coins
}

// placeTutorialCoin sets the single fixed coin of the tutorial
func placeTutorialCoin(s *State) {
	c := s.Layout.Center()
	s.Coins = []component.Coin{{
		ID:       parameter.TutorialCoinID,
		Position: vmath.V2(c.X+parameter.TutorialCoinOffsetX, c.Y),
	}}
}
