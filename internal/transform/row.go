package transform

import (
	"fmt"
	"strings"

	"github.com/airnav-tools/nasr/pkg/nasr"
)

// Row is one row's ordered, typed decode results.
type Row struct {
	values []Value
}

// Apply runs the transform pipeline over one row's raw field values. The raw
// value count must equal the pipeline length: a shorter row is a truncated
// record, a longer one means the split and the pipeline disagree about the
// row shape; both are rejected rather than risking misaligned fields.
//
// Decoding fails at the first offending field with a *RowError carrying the
// field index, the raw value and the reason.
func Apply(raw []string, specs []Spec) (Row, error) {
	if len(raw) < len(specs) {
		return Row{}, fmt.Errorf("row has %d fields, pipeline expects %d: %w",
			len(raw), len(specs), nasr.ErrTruncatedRecord)
	}
	if len(raw) > len(specs) {
		return Row{}, fmt.Errorf("row has %d fields, pipeline expects %d", len(raw), len(specs))
	}

	values := make([]Value, len(specs))
	for i, spec := range specs {
		v, err := decodeOne(raw[i], spec)
		if err != nil {
			return Row{}, &RowError{Index: i, Raw: raw[i], Err: err}
		}
		values[i] = v
	}
	return Row{values: values}, nil
}

// decodeOne applies one field's null policy, then its decoder.
func decodeOne(raw string, spec Spec) (Value, error) {
	if spec.Kind == KindIgnore {
		return absentValue(KindIgnore), nil
	}

	trimmed := strings.TrimSpace(raw)
	if spec.Null != NullNone && trimmed == "" {
		return absentValue(spec.Kind), nil
	}

	switch spec.Kind {
	case KindText:
		return presentValue(KindText, trimmed), nil

	case KindUint:
		v, err := decodeUint(trimmed)
		if err != nil {
			return Value{}, err
		}
		return presentValue(KindUint, v), nil

	case KindInt:
		v, err := decodeInt(trimmed)
		if err != nil {
			return Value{}, err
		}
		return presentValue(KindInt, v), nil

	case KindBool:
		v, err := decodeBool(trimmed)
		if err != nil {
			return Value{}, err
		}
		return presentValue(KindBool, v), nil

	case KindDate:
		v, err := decodeDate(trimmed, spec.Layout)
		if err != nil {
			return Value{}, err
		}
		return presentValue(KindDate, v), nil

	case KindCoordinate:
		v, err := ParseDMS(trimmed)
		if err != nil {
			return Value{}, err
		}
		return presentValue(KindCoordinate, v), nil

	case KindFrequency:
		v, err := ParseFrequency(trimmed)
		if err != nil {
			return Value{}, err
		}
		return presentValue(KindFrequency, v), nil

	case KindEnum:
		member, err := spec.Domain.Resolve(trimmed)
		if err != nil {
			return Value{}, err
		}
		return presentValue(KindEnum, member), nil

	case KindArray:
		return decodeArray(raw, spec)

	case KindGeneric:
		v, err := spec.Fn(trimmed)
		if err != nil {
			return Value{}, err
		}
		return presentValue(KindGeneric, v), nil

	default:
		return Value{}, fmt.Errorf("unsupported transform kind %v", spec.Kind)
	}
}

// decodeArray slices the raw value into element slots and decodes each with
// the element transform. Under NullCompact absent elements are dropped, so
// the result may be shorter than the slot count; otherwise absent elements
// stay as explicit holes.
func decodeArray(raw string, spec Spec) (Value, error) {
	var slots []string
	if spec.Width > 0 {
		for start := 0; start < len(raw); start += spec.Width {
			end := start + spec.Width
			if end > len(raw) {
				end = len(raw)
			}
			slots = append(slots, raw[start:end])
		}
	} else {
		slots = strings.Split(strings.TrimSpace(raw), spec.Delim)
	}

	elems := make([]Value, 0, len(slots))
	for _, slot := range slots {
		v, err := decodeOne(slot, *spec.Elem)
		if err != nil {
			return Value{}, err
		}
		if v.absent && spec.Null == NullCompact {
			continue
		}
		elems = append(elems, v)
	}
	return presentValue(KindArray, elems), nil
}

// Len returns the number of fields in the row.
func (r Row) Len() int { return len(r.values) }

// Value returns the raw decode result at index i.
func (r Row) Value(i int) (Value, error) {
	if i < 0 || i >= len(r.values) {
		return Value{}, fmt.Errorf("field index %d out of range (row has %d fields)", i, len(r.values))
	}
	return r.values[i], nil
}

// typed returns the value at i after checking the caller's requested kind
// against what the transform actually produced.
func (r Row) typed(i int, want Kind) (Value, error) {
	v, err := r.Value(i)
	if err != nil {
		return Value{}, err
	}
	if v.kind != want {
		return Value{}, fmt.Errorf("field %d: requested %s, transform produced %s: %w",
			i, want, v.kind, nasr.ErrTypeMismatch)
	}
	return v, nil
}

// required returns the present value at i, failing on absent.
func (r Row) required(i int, want Kind) (Value, error) {
	v, err := r.typed(i, want)
	if err != nil {
		return Value{}, err
	}
	if v.absent {
		return Value{}, fmt.Errorf("field %d: %w", i, nasr.ErrMissingValue)
	}
	return v, nil
}

// Text returns field i as required text.
func (r Row) Text(i int) (string, error) {
	v, err := r.required(i, KindText)
	if err != nil {
		return "", err
	}
	return v.v.(string), nil
}

// OptText returns field i as optional text; ok is false when absent.
func (r Row) OptText(i int) (value string, ok bool, err error) {
	v, err := r.typed(i, KindText)
	if err != nil || v.absent {
		return "", false, err
	}
	return v.v.(string), true, nil
}

// Uint returns field i as a required unsigned integer.
func (r Row) Uint(i int) (uint, error) {
	v, err := r.required(i, KindUint)
	if err != nil {
		return 0, err
	}
	return v.v.(uint), nil
}

// OptUint returns field i as an optional unsigned integer.
func (r Row) OptUint(i int) (value uint, ok bool, err error) {
	v, err := r.typed(i, KindUint)
	if err != nil || v.absent {
		return 0, false, err
	}
	return v.v.(uint), true, nil
}

// Int returns field i as a required signed integer.
func (r Row) Int(i int) (int, error) {
	v, err := r.required(i, KindInt)
	if err != nil {
		return 0, err
	}
	return v.v.(int), nil
}

// Bool returns field i as a required boolean.
func (r Row) Bool(i int) (bool, error) {
	v, err := r.required(i, KindBool)
	if err != nil {
		return false, err
	}
	return v.v.(bool), nil
}

// Date returns field i as a required date.
func (r Row) Date(i int) (nasr.Date, error) {
	v, err := r.required(i, KindDate)
	if err != nil {
		return nasr.Date{}, err
	}
	return v.v.(nasr.Date), nil
}

// OptDate returns field i as an optional date.
func (r Row) OptDate(i int) (value nasr.Date, ok bool, err error) {
	v, err := r.typed(i, KindDate)
	if err != nil || v.absent {
		return nasr.Date{}, false, err
	}
	return v.v.(nasr.Date), true, nil
}

// Coordinate returns field i as a required coordinate.
func (r Row) Coordinate(i int) (nasr.Coordinate, error) {
	v, err := r.required(i, KindCoordinate)
	if err != nil {
		return nasr.Coordinate{}, err
	}
	return v.v.(nasr.Coordinate), nil
}

// Frequency returns field i as a required frequency.
func (r Row) Frequency(i int) (nasr.Frequency, error) {
	v, err := r.required(i, KindFrequency)
	if err != nil {
		return nasr.Frequency{}, err
	}
	return v.v.(nasr.Frequency), nil
}

// OptFrequency returns field i as an optional frequency.
func (r Row) OptFrequency(i int) (value nasr.Frequency, ok bool, err error) {
	v, err := r.typed(i, KindFrequency)
	if err != nil || v.absent {
		return nasr.Frequency{}, false, err
	}
	return v.v.(nasr.Frequency), true, nil
}

// Enum returns field i's canonical domain member, required.
func (r Row) Enum(i int) (string, error) {
	v, err := r.required(i, KindEnum)
	if err != nil {
		return "", err
	}
	return v.v.(string), nil
}

// OptEnum returns field i's canonical domain member, optional.
func (r Row) OptEnum(i int) (value string, ok bool, err error) {
	v, err := r.typed(i, KindEnum)
	if err != nil || v.absent {
		return "", false, err
	}
	return v.v.(string), true, nil
}

// Array returns field i's element values, holes included.
func (r Row) Array(i int) ([]Value, error) {
	v, err := r.required(i, KindArray)
	if err != nil {
		return nil, err
	}
	return v.v.([]Value), nil
}

// TextArray returns field i's present text elements in order.
func (r Row) TextArray(i int) ([]string, error) {
	v, err := r.typed(i, KindArray)
	if err != nil {
		return nil, err
	}
	if v.absent {
		return nil, nil
	}
	elems := v.v.([]Value)
	out := make([]string, 0, len(elems))
	for j, e := range elems {
		if e.absent {
			continue
		}
		if e.kind != KindText {
			return nil, fmt.Errorf("field %d element %d: requested %s, transform produced %s: %w",
				i, j, KindText, e.kind, nasr.ErrTypeMismatch)
		}
		out = append(out, e.v.(string))
	}
	return out, nil
}

// Generic returns field i's decoder-defined value, required.
func (r Row) Generic(i int) (any, error) {
	v, err := r.required(i, KindGeneric)
	if err != nil {
		return nil, err
	}
	return v.v, nil
}
