package transform

// Kind is the tagged variant of one field's transform.
type Kind int

const (
	KindText Kind = iota
	KindUint
	KindInt
	KindBool
	KindDate
	KindCoordinate
	KindFrequency
	KindEnum
	KindArray
	KindGeneric
	KindIgnore
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindUint:
		return "unsigned integer"
	case KindInt:
		return "signed integer"
	case KindBool:
		return "boolean"
	case KindDate:
		return "date"
	case KindCoordinate:
		return "coordinate"
	case KindFrequency:
		return "frequency"
	case KindEnum:
		return "enumeration"
	case KindArray:
		return "array"
	case KindGeneric:
		return "generic"
	case KindIgnore:
		return "ignored"
	default:
		return "unknown"
	}
}

// NullPolicy declares how a field treats raw values that carry no data.
type NullPolicy int

const (
	// NullNone means no value is ever absent; every raw value must decode.
	NullNone NullPolicy = iota

	// NullBlank means an all-whitespace raw value decodes to absent; any
	// other raw value must decode or the row fails.
	NullBlank

	// NullCompact is NullBlank for arrays with absent elements dropped from
	// the result instead of kept as holes.
	NullCompact
)

// GenericFunc is the escape hatch for decoding that fits none of the other
// variants. It receives the raw value with surrounding whitespace trimmed.
type GenericFunc func(raw string) (any, error)

// Spec describes how to decode one positional field.
type Spec struct {
	Kind Kind
	Null NullPolicy

	// Layout is the Go time layout for KindDate.
	Layout string

	// Domain is the closed value set for KindEnum.
	Domain *Domain

	// Elem, Width and Delim configure KindArray: Elem is the element
	// transform; Width > 0 selects fixed-width slicing, otherwise Delim
	// splits the raw value.
	Elem  *Spec
	Width int
	Delim string

	// Fn is the decoder for KindGeneric.
	Fn GenericFunc
}

// Text declares a trimmed text field.
func Text(null NullPolicy) Spec {
	return Spec{Kind: KindText, Null: null}
}

// Uint declares an unsigned decimal integer field.
func Uint(null NullPolicy) Spec {
	return Spec{Kind: KindUint, Null: null}
}

// Int declares a signed decimal integer field.
func Int(null NullPolicy) Spec {
	return Spec{Kind: KindInt, Null: null}
}

// Bool declares a Y/N (also YES/NO, TRUE/FALSE) field.
func Bool(null NullPolicy) Spec {
	return Spec{Kind: KindBool, Null: null}
}

// Date declares a date field in the given Go time layout.
func Date(layout string, null NullPolicy) Spec {
	return Spec{Kind: KindDate, Null: null, Layout: layout}
}

// DMS declares a degrees-minutes-seconds coordinate field.
func DMS(null NullPolicy) Spec {
	return Spec{Kind: KindCoordinate, Null: null}
}

// Frequency declares a megahertz-text radio frequency field.
func Frequency(null NullPolicy) Spec {
	return Spec{Kind: KindFrequency, Null: null}
}

// Enum declares a closed-domain field.
func Enum(domain *Domain, null NullPolicy) Spec {
	return Spec{Kind: KindEnum, Null: null, Domain: domain}
}

// FixedArray declares a field holding consecutive element slots of the given
// byte width, each decoded with elem.
func FixedArray(width int, elem Spec, null NullPolicy) Spec {
	return Spec{Kind: KindArray, Null: null, Elem: &elem, Width: width}
}

// Delimited declares a field holding delimiter-separated elements, each
// decoded with elem.
func Delimited(delim string, elem Spec, null NullPolicy) Spec {
	return Spec{Kind: KindArray, Null: null, Elem: &elem, Delim: delim}
}

// Generic declares a field decoded by fn. The field's null policy still runs
// before fn is invoked.
func Generic(fn GenericFunc, null NullPolicy) Spec {
	return Spec{Kind: KindGeneric, Null: null, Fn: fn}
}

// Ignore declares a layout slot whose raw value is discarded.
func Ignore() Spec {
	return Spec{Kind: KindIgnore}
}
