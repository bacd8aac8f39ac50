package units

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Kind identifies the dimension of a quantity.
type Kind uint8

const (
	KindDistance Kind = iota + 1
	KindTime
	KindAngle
	KindVelocity
	KindAcceleration
	KindJerk
)

var kindNames = map[Kind]string{
	KindDistance:     "distance",
	KindTime:         "time",
	KindAngle:        "angle",
	KindVelocity:     "velocity",
	KindAcceleration: "acceleration",
	KindJerk:         "jerk",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Quantity is the kind-erased view shared by every quantity type.
//
// The typed methods (Distance.Add, Velocity.Sub, ...) never fail. AddQuantity
// and SubQuantity exist for code that holds quantities of unknown kind; they
// return ErrUnitMismatch when the operand is of another kind or nil. The
// returned Quantity always has the receiver's concrete type.
//
// Quantity is sealed: only types in this package implement it.
type Quantity interface {
	Kind() Kind
	Value() float64
	AddQuantity(other Quantity) (Quantity, error)
	SubQuantity(other Quantity) (Quantity, error)
	String() string

	quantity()
}

// kindOf returns q's Kind, or the zero Kind for a nil Quantity.
func kindOf(q Quantity) Kind {
	if q == nil {
		return 0
	}
	return q.Kind()
}

// Add combines a and b through the kind-erased path. The result has a's unit.
func Add(a, b Quantity) (Quantity, error) {
	return a.AddQuantity(b)
}

// Sub subtracts b from a through the kind-erased path. The result has a's unit.
func Sub(a, b Quantity) (Quantity, error) {
	return a.SubQuantity(b)
}

// formatValue renders v with four decimals, rounding halves away from zero on
// the shortest decimal representation of v.
func formatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(v, 'f', -1, 64))
	if !ok {
		return strconv.FormatFloat(v, 'f', 4, 64)
	}
	s := r.FloatString(4)
	if math.Signbit(v) && !strings.HasPrefix(s, "-") {
		s = "-" + s
	}
	return s
}

// format renders value followed by a bracketed distance unit and any number
// of "per [TIME]" slots.
func format(value float64, unit fmt.Stringer, per ...TimeUnit) string {
	var b strings.Builder
	b.WriteString(formatValue(value))
	b.WriteString(" [")
	b.WriteString(unit.String())
	b.WriteString("]")
	for _, t := range per {
		b.WriteString(" per [")
		b.WriteString(t.String())
		b.WriteString("]")
	}
	return b.String()
}
