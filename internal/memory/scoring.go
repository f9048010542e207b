package memory

const (
	baseScore       = 1000
	movePenalty     = 5
	timeBonusWindow = 300
)

// Score - 1000 minus 5 per move plus one point for every second under 300, floored at zero.
func Score(moveCount, elapsedSeconds int) int {
	timeBonus := max(0, timeBonusWindow-elapsedSeconds)

	return max(0, baseScore-movePenalty*moveCount+timeBonus)
}

// StarRating - 1 to 5 stars from moves per pair. Without pairs it is one star.
func StarRating(moveCount, pairCount int) int {
	if pairCount <= 0 {
		return 1
	}

	return StarsForEfficiency(float64(moveCount) / float64(pairCount))
}

// StarsForEfficiency - boundaries are inclusive; NaN falls through to one star.
func StarsForEfficiency(efficiency float64) int {
	switch {
	case efficiency <= 1.5:
		return 5
	case efficiency <= 2:
		return 4
	case efficiency <= 2.5:
		return 3
	case efficiency <= 3:
		return 2
	default:
		return 1
	}
}
