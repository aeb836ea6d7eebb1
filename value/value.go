// Package value defines the typed values carried by LYML tokens.
//
// A Value is one of Null, Bool, Int, Float, String, List or *Map. The set is
// closed: no type outside this package can implement Value.
package value

import (
	"iter"
	"strconv"
	"strings"
)

// Kind identifies the variant of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindMap
)

var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "boolean",
	KindInt:    "integer",
	KindFloat:  "float",
	KindString: "string",
	KindList:   "list",
	KindMap:    "map",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Value is the closed set of values a token can hold.
type Value interface {
	// Kind returns the variant of the value.
	Kind() Kind
	// String returns a debug representation of the value.
	String() string

	value()
}

// Null is the absent value.
type Null struct{}

// Bool is a boolean literal.
type Bool bool

// Int is an integer literal.
type Int int64

// Float is a floating point literal.
type Float float64

// String is a quoted or plain scalar.
type String string

// List is an inline list.
type List []Value

func (Null) value()   {}
func (Bool) value()   {}
func (Int) value()    {}
func (Float) value()  {}
func (String) value() {}
func (List) value()   {}
func (*Map) value()   {}

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Int) Kind() Kind    { return KindInt }
func (Float) Kind() Kind  { return KindFloat }
func (String) Kind() Kind { return KindString }
func (List) Kind() Kind   { return KindList }
func (*Map) Kind() Kind   { return KindMap }

func (Null) String() string     { return "null" }
func (b Bool) String() string   { return strconv.FormatBool(bool(b)) }
func (i Int) String() string    { return strconv.FormatInt(int64(i), 10) }
func (f Float) String() string  { return strconv.FormatFloat(float64(f), 'g', -1, 64) }
func (s String) String() string { return strconv.Quote(string(s)) }

func (l List) String() string {
	elements := make([]string, 0, len(l))
	for _, el := range l {
		elements = append(elements, Or(el).String())
	}
	return "[" + strings.Join(elements, ", ") + "]"
}

// Map is an inline map. Keys keep their insertion order; setting an existing
// key replaces its value without moving it.
type Map struct {
	keys   []string
	values map[string]Value
}

// NewMap returns an empty map.
func NewMap() *Map {
	return &Map{values: map[string]Value{}}
}

// Set assigns v to key.
func (m *Map) Set(key string, v Value) {
	if m.values == nil {
		m.values = map[string]Value{}
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = Or(v)
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// All iterates over the entries in insertion order.
func (m *Map) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

func (m *Map) String() string {
	pairs := make([]string, 0, m.Len())
	for k, v := range m.All() {
		pairs = append(pairs, k+": "+v.String())
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}

// Or returns v, or Null when v is nil.
func Or(v Value) Value {
	if v == nil {
		return Null{}
	}
	return v
}

// IsNull reports whether v is nil or Null.
func IsNull(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(Null)
	return ok
}

// Equal reports whether a and b hold the same value. Maps compare entries in
// order. A nil Value equals Null.
func Equal(a, b Value) bool {
	a, b = Or(a), Or(b)
	switch x := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool, Int, Float, String:
		return a == b
	case List:
		y, ok := b.(List)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case *Map:
		y, ok := b.(*Map)
		if !ok || x.Len() != y.Len() {
			return false
		}
		if x.Len() == 0 {
			return true
		}
		for i, k := range x.keys {
			if y.keys[i] != k || !Equal(x.values[k], y.values[k]) {
				return false
			}
		}
		return true
	}
	return false
}

// Interface converts v to plain Go values: nil, bool, int64, float64,
// string, []any and map[string]any. Map ordering is lost.
func Interface(v Value) any {
	switch x := Or(v).(type) {
	case Bool:
		return bool(x)
	case Int:
		return int64(x)
	case Float:
		return float64(x)
	case String:
		return string(x)
	case List:
		out := make([]any, len(x))
		for i, el := range x {
			out[i] = Interface(el)
		}
		return out
	case *Map:
		out := make(map[string]any, x.Len())
		for k, el := range x.All() {
			out[k] = Interface(el)
		}
		return out
	}
	return nil
}
