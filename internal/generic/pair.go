package generic

import (
	"fmt"
	"strconv"
	"strings"
)

// QubitPair is an ordered (control, target) pair. Direction is significant.
//
// Pairs marshal as the text "control,target" so that they can key JSON objects.
type QubitPair struct {
	Control int `json:"control"`
	Target  int `json:"target"`
}

// Reversed returns the pair with control and target swapped.
func (p QubitPair) Reversed() QubitPair {
	return QubitPair{Control: p.Target, Target: p.Control}
}

// String implements fmt.Stringer.
func (p QubitPair) String() string {
	return strconv.Itoa(p.Control) + "," + strconv.Itoa(p.Target)
}

// MarshalText implements encoding.TextMarshaler.
func (p QubitPair) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *QubitPair) UnmarshalText(text []byte) error {
	c, t, ok := strings.Cut(string(text), ",")
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidPair, text)
	}
	control, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidPair, text, err)
	}
	target, err := strconv.Atoi(strings.TrimSpace(t))
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidPair, text, err)
	}
	p.Control, p.Target = control, target
	return nil
}

// ParsePair parses a "control,target" key.
func ParsePair(s string) (QubitPair, error) {
	var p QubitPair
	err := p.UnmarshalText([]byte(s))
	return p, err
}
