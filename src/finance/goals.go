package finance

// GoalProgressPercent is current/target*100, unclamped so an overfunded goal
// reports more than 100. A zero target yields 0.
func GoalProgressPercent(current, target int64) float64 {
	if target == 0 {
		return 0
	}
	return float64(current) / float64(target) * 100
}

// ClampPercent bounds a percentage to [0, 100]. Only progress bars use it.
func ClampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
