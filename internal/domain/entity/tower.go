package entity

// LaneCount is the number of sugar-cane lanes on each side of the board
const LaneCount = 6

// TowerHeights counts the stacked segments per lane on each side.
// A lane at height 0 only holds its base segment.
type TowerHeights struct {
	Left  [LaneCount]int
	Right [LaneCount]int
}

// Reset sets every lane back to 0
func (t *TowerHeights) Reset() {
	t.Left = [LaneCount]int{}
	t.Right = [LaneCount]int{}
}

// Height returns the height of the given lane.
// Out-of-range lanes report 0.
func (t *TowerHeights) Height(side Side, lane int) int {
	if lane < 0 || lane >= LaneCount {
		return 0
	}
	if side == SideLeft {
		return t.Left[lane]
	}
	return t.Right[lane]
}

// Grow adds one segment to the lane and returns its new height
func (t *TowerHeights) Grow(side Side, lane int) int {
	if lane < 0 || lane >= LaneCount {
		return 0
	}
	if side == SideLeft {
		t.Left[lane]++
		return t.Left[lane]
	}
	t.Right[lane]++
	return t.Right[lane]
}

// Total returns the sum of all lane heights
func (t *TowerHeights) Total() int {
	total := 0
	for i := 0; i < LaneCount; i++ {
		total += t.Left[i] + t.Right[i]
	}
	return total
}
