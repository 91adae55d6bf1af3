package domain

// WinningTriple is the fixed digit sequence that defines a spin win.
// A non-winning outcome must never equal it.
var WinningTriple = [3]string{"5", "5", "5"}

// SpinResult represents the outcome of a spin play
type SpinResult struct {
	Numbers [3]string `json:"numbers"` // Single-character digits "0".."9"
	IsWin   bool      `json:"is_win"`
}

// Number returns the compact integer encoding of the three digits
// (e.g. ["5","5","5"] -> 555, ["0","4","2"] -> 42).
func (r SpinResult) Number() int {
	n := 0
	for _, d := range r.Numbers {
		n = n*10 + int(d[0]-'0')
	}
	return n
}
