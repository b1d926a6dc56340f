package compound

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// Frequency is how often, within a year, interest is compounded and a
// contribution is paid.
type Frequency int

const (
	Yearly Frequency = iota
	Monthly
	Weekly
	Daily
)

// Frequencies lists every supported frequency, from the least to the most frequent.
var Frequencies = []Frequency{Yearly, Monthly, Weekly, Daily}

// ParseFrequency parses the frequency name, as returned by String, or its
// singular noun.
func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yearly", "year", "annual":
		return Yearly, nil
	case "monthly", "month":
		return Monthly, nil
	case "weekly", "week":
		return Weekly, nil
	case "daily", "day":
		return Daily, nil
	default:
		return Yearly, &InvalidParameterError{Field: "frequency", Reason: fmt.Sprintf("unknown frequency %q", s)}
	}
}

func (f Frequency) String() string {
	switch f {
	case Yearly:
		return "yearly"
	case Monthly:
		return "monthly"
	case Weekly:
		return "weekly"
	case Daily:
		return "daily"
	default:
		return fmt.Sprintf("Frequency(%d)", int(f))
	}
}

// Name returns the singular noun for the period (e.g., "year", "month").
func (f Frequency) Name() string {
	switch f {
	case Yearly:
		return "year"
	case Monthly:
		return "month"
	case Weekly:
		return "week"
	case Daily:
		return "day"
	default:
		return "period"
	}
}

// PeriodsPerYear returns the number of periods in a year, or 0 for an
// unknown frequency.
func (f Frequency) PeriodsPerYear() int {
	switch f {
	case Yearly:
		return 1
	case Monthly:
		return 12
	case Weekly:
		return 52
	case Daily:
		return 365
	default:
		return 0
	}
}

// Valid reports whether f is one of the known frequencies.
func (f Frequency) Valid() bool { return f.PeriodsPerYear() > 0 }

// Set implements flag.Value.
func (f *Frequency) Set(s string) error {
	v, err := ParseFrequency(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f Frequency) MarshalJSON() ([]byte, error) {
	if !f.Valid() {
		return nil, &InvalidParameterError{Field: "frequency", Reason: fmt.Sprintf("unknown frequency %d", int(f))}
	}
	return json.Marshal(f.String())
}

func (f *Frequency) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("frequency must be a string: %w", err)
	}
	return f.Set(s)
}
