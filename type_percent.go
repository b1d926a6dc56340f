package compound

import "fmt"

// Percent is a rate expressed in percent: 7 means 7%.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// fraction returns the rate as a plain ratio: 7% is 0.07.
func (p Percent) fraction() float64 { return float64(p) / 100 }
