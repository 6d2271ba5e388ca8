package argr

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds
type Kind int

const (
	KindAbsent  Kind = iota // no occurrence and no definition
	KindBool                // presence flag (true) or the "no default" false
	KindString              // a single raw string
	KindList                // ordered raw strings
	KindLabeled             // signature labels mapped to positional strings
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindLabeled:
		return "labeled"
	default:
		return "unknown"
	}
}

// Value is the result of resolving an option. The zero Value is absent.
type Value struct {
	kind   Kind
	flag   bool
	str    string
	list   []string
	labels []string          // signature order, KindLabeled only
	fields map[string]string // label -> positional value, KindLabeled only
}

// BoolValue returns a presence value
func BoolValue(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// StringValue returns a single raw string value
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// ListValue returns an ordered sequence of raw strings. The slice is copied.
func ListValue(values ...string) Value {
	return Value{kind: KindList, list: slices.Clone(values)}
}

// Vector labels raw values by position when both raw is a list and a
// signature is given; any other combination passes raw through unchanged.
// Raw values beyond the signature are dropped, labels past the end of raw are
// left absent.
func Vector(raw Value, signature []string) Value {
	if raw.kind != KindList || signature == nil {
		return raw
	}

	v := Value{
		kind:   KindLabeled,
		labels: slices.Clone(signature),
		fields: make(map[string]string, len(signature)),
	}
	for i, label := range signature {
		if i < len(raw.list) {
			v.fields[label] = raw.list[i]
		} else {
			delete(v.fields, label)
		}
	}
	return v
}

// Kind reports which variant v holds
func (v Value) Kind() Kind { return v.kind }

// IsPresent reports whether v carries anything at all
func (v Value) IsPresent() bool { return v.kind != KindAbsent }

// Bool reports presence: true for a true flag and for any string, list or
// labeled value; false for absent values and the false flag.
func (v Value) Bool() bool {
	switch v.kind {
	case KindBool:
		return v.flag
	case KindString, KindList, KindLabeled:
		return true
	default:
		return false
	}
}

// String renders v. A single-element list renders as its element, so
// `-o file` and `-o=file` both read back as "file".
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindString:
		return v.str
	case KindList:
		return strings.Join(v.list, " ")
	case KindLabeled:
		var b strings.Builder
		for _, label := range v.Labels() {
			value, ok := v.fields[label]
			if !ok {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(label)
			b.WriteByte('=')
			b.WriteString(value)
		}
		return b.String()
	default:
		return ""
	}
}

// Strings returns the raw strings held by v: the list itself, a one-element
// slice for a string, or the labeled values in signature order.
func (v Value) Strings() []string {
	switch v.kind {
	case KindString:
		return []string{v.str}
	case KindList:
		return slices.Clone(v.list)
	case KindLabeled:
		out := make([]string, 0, len(v.fields))
		for _, label := range v.Labels() {
			if value, ok := v.fields[label]; ok {
				out = append(out, value)
			}
		}
		return out
	default:
		return nil
	}
}

// Label returns the value assigned to a signature label
func (v Value) Label(name string) (string, bool) {
	value, ok := v.fields[name]
	return value, ok
}

// Labels returns the distinct signature labels of a labeled value, in
// signature order.
func (v Value) Labels() []string {
	if v.kind != KindLabeled {
		return nil
	}
	out := make([]string, 0, len(v.labels))
	for _, label := range v.labels {
		if !slices.Contains(out, label) {
			out = append(out, label)
		}
	}
	return out
}

// Map returns a copy of the labeled fields
func (v Value) Map() map[string]string {
	if v.kind != KindLabeled {
		return nil
	}
	return maps.Clone(v.fields)
}
