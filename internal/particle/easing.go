package particle

// EaseOutCubic maps normalized age t in [0, 1] to a size multiplier that
// grows quickly and then decelerates: (t-1)^3 + 1.
//
// EaseOutCubic(0) == 0 and EaseOutCubic(1) == 1.
func EaseOutCubic(t float64) float64 {
	t--
	return t*t*t + 1
}
