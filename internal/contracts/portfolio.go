package contracts

// Allocation is the positional percentage split over the top ranked assets
// ⭐ SSOT: Planner → Presenter 포트폴리오 비중 전달
type Allocation struct {
	Tolerance Tolerance        `json:"tolerance"`
	Lines     []AllocationLine `json:"lines"`
}

// AllocationLine assigns a whole percentage to one ranked asset
type AllocationLine struct {
	Symbol  string `json:"symbol"`
	Name    string `json:"name"`
	Percent int    `json:"percent"`
}

// TotalPercent returns the sum of all line percentages.
// Fewer than five lines do not sum to 100.
func (a *Allocation) TotalPercent() int {
	total := 0
	for _, line := range a.Lines {
		total += line.Percent
	}
	return total
}

// Count returns the number of lines
func (a *Allocation) Count() int {
	return len(a.Lines)
}

// GetLine finds a line by symbol
func (a *Allocation) GetLine(symbol string) (*AllocationLine, bool) {
	for i := range a.Lines {
		if a.Lines[i].Symbol == symbol {
			return &a.Lines[i], true
		}
	}
	return nil, false
}
