package classd

// Comparator is an ideal open-loop comparator powered from a single supply.
type Comparator struct {
	vcc float64
}

// NewComparator creates a comparator saturating at vcc.
func NewComparator(vcc float64) *Comparator {
	return &Comparator{vcc: vcc}
}

// Evaluate returns VCC when a > b and 0 otherwise.
func (c *Comparator) Evaluate(a, b float64) float64 {
	if a > b {
		return c.vcc
	}
	return 0
}
