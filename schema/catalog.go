// Package schema describes the binary layouts of compiled assets.
//
// Layouts are registered by [Source] functions and merged into an immutable
// [Catalog]:
//
//	cat := schema.New(func(r *schema.Registry) {
//	    r.Struct("cSPVector3", 16,
//	        schema.Scalar("x", schema.TypeFloat, 0),
//	        schema.Scalar("y", schema.TypeFloat, 4),
//	        schema.Scalar("z", schema.TypeFloat, 8),
//	    )
//	    r.Enum("TriggerShape").Value("sphere", 0).Value("box", 1)
//	})
//
// Fields keep their declaration order, which is also the order in which the
// decoder consumes blob data. Names are case-insensitive.
package schema

import (
	"iter"
	"maps"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Struct is a fixed-size layout with ordered fields.
// Structs returned by a Catalog must not be modified.
type Struct struct {
	Name   string
	Size   int
	Fields []Field
}

// FileType maps a file extension to the struct at the root of the file.
type FileType struct {
	Extension  string
	RootStruct string
	HeaderSize int
}

// Source registers layouts into a Registry.
type Source func(*Registry)

// Registry collects the structs and enums declared by one Source.
type Registry struct {
	structs []*Struct
	enums   []*Enum
}

// Struct declares a struct layout. Fields are kept in the order given.
func (r *Registry) Struct(name string, size int, fields ...Field) {
	r.structs = append(r.structs, &Struct{
		Name:   name,
		Size:   size,
		Fields: slices.Clone(fields),
	})
}

// Enum declares an enum and returns it for adding values.
func (r *Registry) Enum(name string) *Enum {
	e := NewEnum(name)
	r.enums = append(r.enums, e)
	return e
}

// Catalog is the merged, immutable set of layouts. It is safe for
// concurrent use.
type Catalog struct {
	structs map[string]*Struct
	enums   map[string]*Enum
}

// New runs each source in order and merges the results. The first
// registration of a name wins and later ones are ignored. Enum bindings are
// resolved once all sources have run.
func New(sources ...Source) *Catalog {
	c := &Catalog{
		structs: make(map[string]*Struct),
		enums:   make(map[string]*Enum),
	}
	for _, src := range sources {
		var r Registry
		src(&r)
		for _, s := range r.structs {
			key := strings.ToLower(s.Name)
			if _, ok := c.structs[key]; !ok {
				c.structs[key] = s
			}
		}
		for _, e := range r.enums {
			key := strings.ToLower(e.Name())
			if _, ok := c.enums[key]; !ok {
				c.enums[key] = e
			}
		}
	}
	c.resolveEnums()
	return c
}

// resolveEnums binds enum fields that lack an explicit enum name, trying
// "<Struct>.<field>", then "<field>", then the field name in PascalCase.
func (c *Catalog) resolveEnums() {
	for _, s := range c.structs {
		for i := range s.Fields {
			f := &s.Fields[i]
			if f.EnumType != "" || !f.IsEnum() {
				continue
			}
			for _, candidate := range []string{s.Name + "." + f.Name, f.Name, pascalCase(f.Name)} {
				if e, ok := c.enums[strings.ToLower(candidate)]; ok {
					f.EnumType = e.Name()
					break
				}
			}
		}
	}
}

func pascalCase(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}

// Struct returns the struct registered under name.
func (c *Catalog) Struct(name string) (*Struct, bool) {
	s, ok := c.structs[strings.ToLower(name)]
	return s, ok
}

// Enum returns the enum registered under name.
func (c *Catalog) Enum(name string) (*Enum, bool) {
	e, ok := c.enums[strings.ToLower(name)]
	return e, ok
}

// FileType infers the root struct for files with extension ext, which must
// equal a registered struct name. A leading dot is ignored.
func (c *Catalog) FileType(ext string) (FileType, bool) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	s, ok := c.structs[ext]
	if !ok {
		return FileType{}, false
	}
	return FileType{Extension: ext, RootStruct: s.Name, HeaderSize: s.Size}, true
}

// Structs yields all structs sorted by lower-cased name.
func (c *Catalog) Structs() iter.Seq[*Struct] {
	return func(yield func(*Struct) bool) {
		for _, key := range slices.Sorted(maps.Keys(c.structs)) {
			if !yield(c.structs[key]) {
				return
			}
		}
	}
}

// Enums yields all enums sorted by lower-cased name.
func (c *Catalog) Enums() iter.Seq[*Enum] {
	return func(yield func(*Enum) bool) {
		for _, key := range slices.Sorted(maps.Keys(c.enums)) {
			if !yield(c.enums[key]) {
				return
			}
		}
	}
}

// StructNames returns the registered struct names in sorted order.
func (c *Catalog) StructNames() []string {
	names := make([]string, 0, len(c.structs))
	for s := range c.Structs() {
		names = append(names, s.Name)
	}
	return names
}

// EnumNames returns the registered enum names in sorted order.
func (c *Catalog) EnumNames() []string {
	names := make([]string, 0, len(c.enums))
	for e := range c.Enums() {
		names = append(names, e.Name())
	}
	return names
}

// Len returns the number of registered structs and enums.
func (c *Catalog) Len() (structs, enums int) {
	return len(c.structs), len(c.enums)
}
