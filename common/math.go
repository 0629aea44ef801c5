package common

// Lerp blends a toward b by t.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
