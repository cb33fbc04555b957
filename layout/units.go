package layout

import (
	"strconv"
	"strings"
)

// This file defines unit-tagged lengths. The engine computes in points;
// content may specify geometry in mm, cm, in or pt.

// Unit identifies the unit a length value was specified in.
type Unit int

const (
	UnitNone Unit = iota // bare number, interpreted by context
	UnitMM
	UnitCM
	UnitIN
	UnitPT
)

// Conversion constants between pt and mm.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// UnitToString returns the suffix for a Unit value.
func UnitToString(u Unit) string {
	switch u {
	case UnitMM:
		return "mm"
	case UnitCM:
		return "cm"
	case UnitIN:
		return "in"
	case UnitPT:
		return "pt"
	default:
		return ""
	}
}

// Length preserves a numeric value with its unit.
type Length struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// MM and PT are shorthand constructors for the two units the engine
// itself works with.
func MM(v float64) Length { return Length{Value: v, Unit: UnitMM} }
func PT(v float64) Length { return Length{Value: v, Unit: UnitPT} }

func (l Length) IsZero() bool { return l.Value == 0 }

// To converts this length to the target unit. Supported targets are
// UnitMM and UnitPT; UnitNone is treated as mm.
func (l Length) To(target Unit) float64 {
	mm := l.Value
	switch l.Unit {
	case UnitCM:
		mm = l.Value * 10
	case UnitIN:
		mm = l.Value * 25.4
	case UnitPT:
		if target == UnitPT {
			return l.Value
		}
		mm = l.Value * PtToMm
	}
	if target == UnitPT {
		return mm * MmToPt
	}
	return mm
}

func (l Length) ToMM() float64 { return l.To(UnitMM) }
func (l Length) ToPT() float64 { return l.To(UnitPT) }

// ParseLength parses a length string such as "25mm", "1.5in" or "72pt",
// preserving its unit. A bare number yields UnitNone so the caller can
// pick the contextual default. Malformed input yields a zero length.
func ParseLength(value string) Length {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return Length{}
	}
	unit := UnitNone
	num := v
	for _, suf := range []struct {
		s string
		u Unit
	}{{"mm", UnitMM}, {"cm", UnitCM}, {"in", UnitIN}, {"pt", UnitPT}} {
		if strings.HasSuffix(v, suf.s) {
			unit = suf.u
			num = strings.TrimSpace(strings.TrimSuffix(v, suf.s))
			break
		}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Length{}
	}
	return Length{Value: f, Unit: unit}
}

// Or returns the length itself when set, otherwise the fallback.
func (l Length) Or(fallback Length) Length {
	if l.IsZero() {
		return fallback
	}
	return l
}

// WithDefaultUnit resolves UnitNone to the given unit.
func (l Length) WithDefaultUnit(u Unit) Length {
	if l.Unit == UnitNone {
		l.Unit = u
	}
	return l
}
