package portfolio

import "github.com/wonny/cryptoadvisor/internal/contracts"

// MaxPositions is the size of every allocation table
const MaxPositions = 5

// Weights holds the positional percentages for one tolerance tier
// ⭐ SSOT: 배분 비율 테이블은 여기서만
type Weights [MaxPositions]int

var weightTables = map[contracts.Tolerance]Weights{
	contracts.ToleranceLow:    {40, 30, 15, 10, 5},
	contracts.ToleranceMedium: {30, 25, 20, 15, 10},
	contracts.ToleranceHigh:   {25, 25, 20, 15, 15},
}

// WeightsFor returns the table for tol, medium for anything unknown
func WeightsFor(tol contracts.Tolerance) Weights {
	if w, ok := weightTables[tol]; ok {
		return w
	}
	return weightTables[contracts.ToleranceMedium]
}

// Sum returns the total of all five slots
func (w Weights) Sum() int {
	total := 0
	for _, p := range w {
		total += p
	}
	return total
}
