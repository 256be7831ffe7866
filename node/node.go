// Package node defines the tree produced by decoding an asset.
//
// Every node records the field name it was decoded from and the absolute
// byte offset of its data, so consumers can point back into the raw file.
// Trees are built once by the decoder and owned by the caller afterwards.
package node

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Kind identifies a node variant.
type Kind int

// Node kinds.
const (
	KindStruct Kind = iota
	KindArray
	KindString
	KindAsset
	KindLocalizedString
	KindNumber
	KindBool
	KindEnum
	KindVector
	KindNull
	KindRaw
)

var kindNames = [...]string{
	KindStruct:          "struct",
	KindArray:           "array",
	KindString:          "string",
	KindAsset:           "asset",
	KindLocalizedString: "localized",
	KindNumber:          "number",
	KindBool:            "bool",
	KindEnum:            "enum",
	KindVector:          "vector",
	KindNull:            "null",
	KindRaw:             "raw",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Node is the read-only view shared by all variants.
type Node interface {
	Kind() Kind
	Name() string
	Offset() int
	Children() []Node
	Display() string
}

// Meta holds the fields common to every node.
type Meta struct {
	FieldName    string
	BinaryOffset int
}

// Name returns the field name, or "[i]" for array elements.
func (m Meta) Name() string { return m.FieldName }

// Offset returns the absolute byte offset the node was decoded from.
func (m Meta) Offset() int { return m.BinaryOffset }

// Children returns nil for leaf nodes.
func (Meta) Children() []Node { return nil }

// Struct is a decoded struct and its fields.
type Struct struct {
	Meta
	TypeName string
	Fields   []Node
}

func (*Struct) Kind() Kind { return KindStruct }
func (s *Struct) Children() []Node { return s.Fields }
func (s *Struct) Display() string { return "[" + s.TypeName + "]" }
func (s *Struct) Append(n ...Node) { s.Fields = append(s.Fields, n...) }

// Field returns the direct child called name.
func (s *Struct) Field(name string) (Node, bool) {
	for _, f := range s.Fields {
		if f.Name() == name {
			return f, true
		}
	}
	return nil, false
}

// Array is a decoded array. Elements are named "[0]", "[1]", ...
type Array struct {
	Meta
	ElementType string
	Elements    []Node
}

func (*Array) Kind() Kind { return KindArray }
func (a *Array) Children() []Node { return a.Elements }
func (a *Array) Display() string { return fmt.Sprintf("[%d items]", len(a.Elements)) }

// Len returns the number of elements.
func (a *Array) Len() int { return len(a.Elements) }

// String is a text value. Asset and key references report KindAsset.
type String struct {
	Meta
	Value string
	Asset bool
}

func (s *String) Kind() Kind {
	if s.Asset {
		return KindAsset
	}
	return KindString
}
func (s *String) Display() string { return s.Value }

// LocalizedString holds a primary text and a secondary text.
type LocalizedString struct {
	Meta
	Primary   string
	Secondary string
}

func (*LocalizedString) Kind() Kind { return KindLocalizedString }

func (l *LocalizedString) Display() string {
	if l.Secondary == "" {
		return l.Primary
	}
	return l.Primary + " [" + l.Secondary + "]"
}

// NumericType records the on-disk width and signedness of a Number.
type NumericType int

// Numeric types.
const (
	Int32 NumericType = iota
	UInt32
	Int64
	UInt64
	Float
	UInt16
	UInt8
	HashID
	ObjID
)

// Format controls how a Number is displayed.
type Format int

// Number formats.
const (
	Decimal Format = iota
	Hex
	FloatFormat
)

// Number is an integer or float value. Integers are held in Bits as their
// two's complement pattern; floats are held in F.
type Number struct {
	Meta
	Type   NumericType
	Format Format
	Bits   uint64
	F      float64
}

func (*Number) Kind() Kind { return KindNumber }

// Int returns the value as a signed integer.
func (n *Number) Int() int64 {
	switch n.Type {
	case Int32:
		return int64(int32(n.Bits)) //nolint:gosec // sign extension is intended
	case Float:
		return int64(n.F)
	}
	return int64(n.Bits) //nolint:gosec // two's complement reinterpretation
}

// Uint returns the raw integer bits.
func (n *Number) Uint() uint64 { return n.Bits }

func (n *Number) Display() string {
	if n.Type == Float {
		return formatFloat(n.F)
	}
	if n.Format == Hex {
		switch n.Type {
		case UInt8:
			return fmt.Sprintf("0x%02X", n.Bits)
		case UInt16:
			return fmt.Sprintf("0x%04X", n.Bits)
		case UInt64, Int64:
			return fmt.Sprintf("0x%016X", n.Bits)
		}
		return fmt.Sprintf("0x%08X", n.Bits)
	}
	switch n.Type {
	case Int32, Int64:
		return strconv.FormatInt(n.Int(), 10)
	}
	return strconv.FormatUint(n.Bits, 10)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 9, 32)
}

// Bool is a boolean value.
type Bool struct {
	Meta
	Value bool
}

func (*Bool) Kind() Kind { return KindBool }
func (b *Bool) Display() string {
	return strconv.FormatBool(b.Value)
}

// Enum is a raw enum value and the name it resolved to, if any.
type Enum struct {
	Meta
	EnumType string
	Value    uint32
	Label    string
}

func (*Enum) Kind() Kind { return KindEnum }

func (e *Enum) Display() string {
	if e.Label == "" {
		return fmt.Sprintf("0x%08X", e.Value)
	}
	return fmt.Sprintf("%s (0x%08X)", e.Label, e.Value)
}

// Shape distinguishes vector widths and quaternions.
type Shape int

// Vector shapes.
const (
	Vec2 Shape = 2
	Vec3 Shape = 3
	Vec4 Shape = 4
	Quat Shape = 5
)

// Len returns the number of components.
func (s Shape) Len() int {
	if s == Quat {
		return 4
	}
	return int(s)
}

// Vector is a float vector, or an xyzw quaternion when Shape is Quat.
type Vector struct {
	Meta
	Shape Shape
	C     [4]float32
}

func (*Vector) Kind() Kind { return KindVector }

func (v *Vector) Display() string {
	labels := [4]string{"x", "y", "z", "w"}
	var b strings.Builder
	if v.Shape == Quat {
		b.WriteString("(quat) ")
	}
	for i := range v.Shape.Len() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(labels[i])
		b.WriteString(": ")
		b.WriteString(trimFloat(v.C[i]))
	}
	return b.String()
}

// trimFloat prints up to six decimals with trailing zeros removed.
func trimFloat(f float32) string {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return strconv.FormatFloat(float64(f), 'g', -1, 32)
	}
	s := strconv.FormatFloat(float64(f), 'f', 6, 32)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// Vec2 returns the first two components.
func (v *Vector) Vec2() mgl32.Vec2 { return mgl32.Vec2{v.C[0], v.C[1]} }

// Vec3 returns the first three components.
func (v *Vector) Vec3() mgl32.Vec3 { return mgl32.Vec3{v.C[0], v.C[1], v.C[2]} }

// Vec4 returns all four components.
func (v *Vector) Vec4() mgl32.Vec4 { return mgl32.Vec4(v.C) }

// Quat returns the components as a quaternion. Storage order is xyzw.
func (v *Vector) Quat() mgl32.Quat {
	return mgl32.Quat{W: v.C[3], V: mgl32.Vec3{v.C[0], v.C[1], v.C[2]}}
}

// Null marks an absent optional struct.
type Null struct {
	Meta
}

func (*Null) Kind() Kind { return KindNull }
func (*Null) Display() string { return "(null)" }

// Raw is an uninterpreted byte span.
type Raw struct {
	Meta
	Data []byte
}

func (*Raw) Kind() Kind { return KindRaw }
func (r *Raw) Display() string { return fmt.Sprintf("[%d bytes]", len(r.Data)) }
