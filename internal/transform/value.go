package transform

// Value is one decoded field result: a kind tag, an absent flag, and the
// typed payload. The payload type per kind:
//
//	KindText       string
//	KindUint       uint
//	KindInt        int
//	KindBool       bool
//	KindDate       nasr.Date
//	KindCoordinate nasr.Coordinate
//	KindFrequency  nasr.Frequency
//	KindEnum       string (canonical member)
//	KindArray      []Value
//	KindGeneric    any (decoder-defined)
//	KindIgnore     none (always absent)
type Value struct {
	kind   Kind
	absent bool
	v      any
}

// Kind returns the transform kind that produced this value.
func (v Value) Kind() Kind { return v.kind }

// Absent reports whether the field decoded to no value under its null
// policy.
func (v Value) Absent() bool { return v.absent }

func absentValue(k Kind) Value {
	return Value{kind: k, absent: true}
}

func presentValue(k Kind, v any) Value {
	return Value{kind: k, v: v}
}
