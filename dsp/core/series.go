package core

// Series is a labelled sequence of samples sharing an external time axis.
type Series struct {
	Label  string
	Values []float64
}

// Len returns the number of samples.
func (s Series) Len() int {
	return len(s.Values)
}
