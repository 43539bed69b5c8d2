package models

// RawKind tags the shape of a caller-supplied value before parsing.
type RawKind int

const (
	RawEmpty RawKind = iota
	RawSingleText
	RawTextList
	RawStructured
)

// RawValue is the tagged variant of everything a caller may hand the parser:
// nothing, one string, a list of strings, or an already structured value.
// Exactly one of Text, List or Value is meaningful, selected by Kind.
type RawValue struct {
	Kind  RawKind
	Text  string
	List  []string
	Value DateValue
}

// EmptyRaw returns the absent input marker.
func EmptyRaw() RawValue {
	return RawValue{Kind: RawEmpty}
}

// TextRaw wraps a single string. An empty string is treated as absent.
func TextRaw(s string) RawValue {
	if s == "" {
		return EmptyRaw()
	}
	return RawValue{Kind: RawSingleText, Text: s}
}

// ListRaw wraps a list of strings. An empty list is treated as absent.
func ListRaw(items []string) RawValue {
	if len(items) == 0 {
		return EmptyRaw()
	}
	return RawValue{Kind: RawTextList, List: items}
}

// StructuredRaw wraps an already canonical value. A zero value is treated
// as absent.
func StructuredRaw(v DateValue) RawValue {
	if v.IsZero() {
		return EmptyRaw()
	}
	return RawValue{Kind: RawStructured, Value: v}
}

// MarkedValue is a value annotated for visual emphasis. The color is a
// rendering hint passed through to the shell; it never affects selection.
type MarkedValue struct {
	Value DateValue
	Color string
}
