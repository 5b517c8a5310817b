package ibm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nerrad567/qpudev-core/internal/device"
)

// ErrUnknownVariant is returned when a name or value matches no wired processor.
var ErrUnknownVariant = errors.New("ibm: unknown variant")

// Variant identifies one of the wired IBM processors.
type Variant int

// Supported variants.
const (
	Belem Variant = iota
	Lima
	Quito
	Manila
	Jakarta
	Lagos
	Nairobi
	Perth
	variantCount
)

var variantNames = [variantCount]string{
	Belem:   "ibmq_belem",
	Lima:    "ibmq_lima",
	Quito:   "ibmq_quito",
	Manila:  "ibmq_manila",
	Jakarta: "ibmq_jakarta",
	Lagos:   "ibm_lagos",
	Nairobi: "ibm_nairobi",
	Perth:   "ibm_perth",
}

// Variants returns every wired variant in declaration order.
func Variants() []Variant {
	out := make([]Variant, 0, variantCount)
	for v := Belem; v < variantCount; v++ {
		out = append(out, v)
	}
	return out
}

// String returns the IBM device name, for example "ibmq_belem".
func (v Variant) String() string {
	if v < 0 || v >= variantCount {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// Valid reports whether v is a wired variant.
func (v Variant) Valid() bool {
	return v >= 0 && v < variantCount
}

// ParseVariant accepts either the IBM device name ("ibmq_belem") or the
// bare processor name ("belem"), case-insensitively.
func ParseVariant(name string) (Variant, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for v, full := range variantNames {
		short := full[strings.IndexByte(full, '_')+1:]
		if want == full || want == short {
			return Variant(v), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// New constructs a fresh descriptor for v.
func New(v Variant) (device.Device, error) {
	switch v {
	case Belem:
		return NewBelemDevice(), nil
	case Lima:
		return NewLimaDevice(), nil
	case Quito:
		return NewQuitoDevice(), nil
	case Manila:
		return NewManilaDevice(), nil
	case Jakarta:
		return NewJakartaDevice(), nil
	case Lagos:
		return NewLagosDevice(), nil
	case Nairobi:
		return NewNairobiDevice(), nil
	case Perth:
		return NewPerthDevice(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
}
