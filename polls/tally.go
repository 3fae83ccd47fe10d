package polls

import "math"

// Percentages converts per-option counts into whole-number percentages using
// half-up rounding. Each option is rounded independently, so the values may
// not sum to exactly 100. When total is 0 every percentage is 0.
func Percentages(counts []int, total int) []int {
	out := make([]int, len(counts))
	if total == 0 {
		return out
	}
	for i, count := range counts {
		out[i] = int(math.Round(float64(count) / float64(total) * 100))
	}
	return out
}
