package schema

import (
	"fmt"
	"iter"
	"strings"

	"github.com/meigma/recap/hashid"
)

// Enum maps names to 32-bit values in both directions.
//
// Names compare case-insensitively. When several names share a value, the
// first one registered is returned by Lookup.
type Enum struct {
	name    string
	order   []string
	values  map[string]uint32 // lower-cased name -> value
	byValue map[uint32]string
}

// NewEnum returns an empty enum called name.
func NewEnum(name string) *Enum {
	return &Enum{
		name:    name,
		values:  make(map[string]uint32),
		byValue: make(map[uint32]string),
	}
}

// Value adds name = v and returns e for chaining.
func (e *Enum) Value(name string, v uint32) *Enum {
	key := strings.ToLower(name)
	if _, dup := e.values[key]; dup {
		return e
	}
	e.values[key] = v
	e.order = append(e.order, name)
	if _, ok := e.byValue[v]; !ok {
		e.byValue[v] = name
	}
	return e
}

// Hash adds name with the hash of name as its value.
func (e *Enum) Hash(name string) *Enum {
	return e.Value(name, hashid.String(name))
}

// Name returns the enum's registered name.
func (e *Enum) Name() string { return e.name }

// Len returns the number of names.
func (e *Enum) Len() int { return len(e.order) }

// Lookup returns the name registered for v.
func (e *Enum) Lookup(v uint32) (string, bool) {
	name, ok := e.byValue[v]
	return name, ok
}

// ValueOf returns the value registered for name.
func (e *Enum) ValueOf(name string) (uint32, bool) {
	v, ok := e.values[strings.ToLower(name)]
	return v, ok
}

// Format renders v as "name, 0x%08X", or only the hex value when v has no
// name.
func (e *Enum) Format(v uint32) string {
	if name, ok := e.Lookup(v); ok {
		return fmt.Sprintf("%s, 0x%08X", name, v)
	}
	return fmt.Sprintf("0x%08X", v)
}

// Values yields names and values in registration order.
func (e *Enum) Values() iter.Seq2[string, uint32] {
	return func(yield func(string, uint32) bool) {
		for _, name := range e.order {
			if !yield(name, e.values[strings.ToLower(name)]) {
				return
			}
		}
	}
}
