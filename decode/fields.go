package decode

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/meigma/recap/internal/cursor"
	"github.com/meigma/recap/internal/errs"
	"github.com/meigma/recap/internal/sizing"
	"github.com/meigma/recap/node"
	"github.com/meigma/recap/schema"
)

const (
	// propertySize is the width of one legacy asset property record.
	propertySize = 188
	// propertyHeader is the typed prefix of a property record.
	propertyHeader = 16
)

// state is the per-call decoding context.
type state struct {
	d    *Decoder
	data []byte
	blob *cursor.Cursor
}

func (s *state) decodeStruct(parent *node.Struct, def *schema.Struct, base int) error {
	for _, f := range def.Fields {
		off := base + f.Offset
		n, err := s.field(f, off)
		if err != nil {
			return &errs.FieldError{Field: f.Name, Struct: def.Name, Offset: off, Err: err}
		}
		if n != nil {
			parent.Append(n)
		}
	}
	return nil
}

// field decodes one field at absolute offset off. A nil node with a nil
// error means the field is absent.
func (s *state) field(f schema.Field, off int) (node.Node, error) {
	meta := node.Meta{FieldName: f.Name, BinaryOffset: off}
	switch {
	case f.Type == schema.TypeBool:
		b, err := s.u8(off)
		if err != nil {
			return nil, err
		}
		return &node.Bool{Meta: meta, Value: b != 0}, nil
	case f.Type.IsPrimitive():
		return s.primitive(meta, f.Type, f.EnumType)
	case f.Type.IsVector():
		return s.vector(meta, f.Type)
	case f.Type == schema.TypeChar && f.BufferSize > 0:
		return s.inlineString(meta, f.BufferSize)
	case f.Type == schema.TypeLocalizedAssetString:
		return s.localized(meta, true)
	case f.Type.IsDynamic():
		return s.dynamic(meta, f.Type, true)
	}

	switch f.Type {
	case schema.TypeStruct:
		return s.inline(meta, f.ElementType)
	case schema.TypeNullable:
		return s.nullable(meta, f.ElementType)
	case schema.TypeArray:
		return s.array(meta, f)
	case schema.TypeAssetPropertyVector:
		return s.properties(meta)
	}
	return nil, errs.MissingType(f.Type.String())
}

func (s *state) primitive(meta node.Meta, t schema.DataType, enum string) (node.Node, error) {
	off := meta.BinaryOffset
	num := &node.Number{Meta: meta}
	switch t {
	case schema.TypeBool:
		v, err := s.u32(off)
		if err != nil {
			return nil, err
		}
		return &node.Bool{Meta: meta, Value: v != 0}, nil
	case schema.TypeEnum:
		return s.enum(meta, enum)
	case schema.TypeUInt8:
		v, err := s.u8(off)
		if err != nil {
			return nil, err
		}
		num.Type, num.Bits = node.UInt8, uint64(v)
	case schema.TypeUInt16:
		v, err := s.u16(off)
		if err != nil {
			return nil, err
		}
		num.Type, num.Bits = node.UInt16, uint64(v)
	case schema.TypeInt64, schema.TypeUInt64:
		v, err := s.u64(off)
		if err != nil {
			return nil, err
		}
		num.Type, num.Bits = node.UInt64, v
		if t == schema.TypeInt64 {
			num.Type = node.Int64
		}
	case schema.TypeFloat:
		v, err := s.u32(off)
		if err != nil {
			return nil, err
		}
		num.Type, num.Format, num.F = node.Float, node.FloatFormat, float64(math.Float32frombits(v))
	default:
		v, err := s.u32(off)
		if err != nil {
			return nil, err
		}
		num.Bits = uint64(v)
		switch t {
		case schema.TypeInt, schema.TypeInt32:
			num.Type = node.Int32
		case schema.TypeHashID:
			num.Type, num.Format = node.HashID, node.Hex
		case schema.TypeObjID:
			num.Type, num.Format = node.ObjID, node.Hex
		default:
			num.Type = node.UInt32
		}
	}
	return num, nil
}

func (s *state) enum(meta node.Meta, enum string) (node.Node, error) {
	v, err := s.u32(meta.BinaryOffset)
	if err != nil {
		return nil, err
	}
	n := &node.Enum{Meta: meta, EnumType: enum, Value: v}
	if enum == "" {
		return n, nil
	}
	def, ok := s.d.catalog.Enum(enum)
	if !ok {
		return nil, errs.MissingEnum(enum)
	}
	n.EnumType = def.Name()
	n.Label, _ = def.Lookup(v)
	return n, nil
}

func (s *state) vector(meta node.Meta, t schema.DataType) (node.Node, error) {
	v := &node.Vector{Meta: meta, Shape: node.Shape(t.Components())}
	if t == schema.TypeOrientation {
		v.Shape = node.Quat
	}
	for i := range t.Components() {
		bits, err := s.u32(meta.BinaryOffset + 4*i)
		if err != nil {
			return nil, err
		}
		v.C[i] = math.Float32frombits(bits)
	}
	return v, nil
}

// inlineString reads a null-padded buffer straight from the header. A
// buffer cut short by the end of the data is read up to the end.
func (s *state) inlineString(meta node.Meta, size int) (node.Node, error) {
	off := meta.BinaryOffset
	if off < 0 || off > len(s.data) {
		return nil, errs.Formatf("char buffer at 0x%X outside %d bytes", off, len(s.data))
	}
	c := cursor.New(s.data[:min(off+size, len(s.data))], off)
	return &node.String{Meta: meta, Value: c.ReadString()}, nil
}

// dynamic reads a string-like value behind a presence indicator at the
// node's offset. When omit is set an absent value yields no node, else an
// empty string.
func (s *state) dynamic(meta node.Meta, t schema.DataType, omit bool) (node.Node, error) {
	indicator, err := s.u32(meta.BinaryOffset)
	if err != nil {
		return nil, err
	}
	if indicator == 0 {
		if omit {
			return nil, nil
		}
		return &node.String{Meta: meta}, nil
	}
	return &node.String{
		Meta:  meta,
		Value: s.blob.ReadString(),
		Asset: t == schema.TypeKey || t == schema.TypeAsset,
	}, nil
}

// localized reads a primary and a secondary indicator. Each set indicator
// consumes one blob string.
func (s *state) localized(meta node.Meta, omit bool) (node.Node, error) {
	primary, err := s.u32(meta.BinaryOffset)
	if err != nil {
		return nil, err
	}
	secondary, err := s.u32(meta.BinaryOffset + 4)
	if err != nil {
		return nil, err
	}
	if omit && primary == 0 && secondary == 0 {
		return nil, nil
	}
	n := &node.LocalizedString{Meta: meta}
	if primary != 0 {
		n.Primary = s.blob.ReadString()
	}
	if secondary != 0 {
		n.Secondary = s.blob.ReadString()
	}
	return n, nil
}

func (s *state) lookupStruct(name string) (*schema.Struct, error) {
	def, ok := s.d.catalog.Struct(name)
	if !ok {
		return nil, errs.MissingStruct(name)
	}
	return def, nil
}

func (s *state) inline(meta node.Meta, elem string) (node.Node, error) {
	def, err := s.lookupStruct(elem)
	if err != nil {
		return nil, err
	}
	n := &node.Struct{Meta: meta, TypeName: def.Name}
	if err := s.decodeStruct(n, def, meta.BinaryOffset); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *state) nullable(meta node.Meta, elem string) (node.Node, error) {
	indicator, err := s.u32(meta.BinaryOffset)
	if err != nil {
		return nil, err
	}
	if indicator == 0 {
		return &node.Null{Meta: meta}, nil
	}
	def, err := s.lookupStruct(elem)
	if err != nil {
		return nil, err
	}
	start, err := s.blob.Reserve(def.Size)
	if err != nil {
		return nil, err
	}
	n := &node.Struct{
		Meta:     node.Meta{FieldName: meta.FieldName, BinaryOffset: start},
		TypeName: def.Name,
	}
	if err := s.decodeStruct(n, def, start); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *state) array(meta node.Meta, f schema.Field) (node.Node, error) {
	off := meta.BinaryOffset
	arr := &node.Array{Meta: meta, ElementType: f.ElementType}
	if arr.ElementType == "" {
		arr.ElementType = "unknown"
	}

	presence, err := s.u32(off)
	if err != nil {
		return nil, err
	}
	rawCount, err := s.u32(off + f.CountAt())
	if err != nil {
		return nil, err
	}
	count := int(int32(rawCount)) //nolint:gosec // the count is a signed word on disk
	if presence == 0 || count <= 0 {
		return arr, nil
	}
	if count > s.d.maxArrayCount {
		return nil, errs.Formatf("array count %d exceeds limit %d", count, s.d.maxArrayCount)
	}

	if def, ok := s.d.catalog.Struct(f.ElementType); ok {
		return s.structElements(arr, def, count)
	}
	elem, ok := schema.ParseDataType(f.ElementType)
	if !ok || elem.IsContainer() {
		return nil, errs.MissingType(f.ElementType)
	}

	stride := elem.Size()
	start, err := s.reserve(stride, count)
	if err != nil {
		return nil, err
	}
	arr.Elements = make([]node.Node, 0, count)
	for i := range count {
		em := node.Meta{FieldName: elementName(i), BinaryOffset: start + i*stride}
		var n node.Node
		switch {
		case elem == schema.TypeLocalizedAssetString:
			n, err = s.localized(em, false)
		case elem.IsDynamic():
			n, err = s.dynamic(em, elem, false)
		case elem.IsVector():
			n, err = s.vector(em, elem)
		default:
			n, err = s.primitive(em, elem, f.EnumType)
		}
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		arr.Elements = append(arr.Elements, n)
	}
	return arr, nil
}

func (s *state) structElements(arr *node.Array, def *schema.Struct, count int) (node.Node, error) {
	start, err := s.reserve(def.Size, count)
	if err != nil {
		return nil, err
	}
	arr.ElementType = def.Name
	arr.Elements = make([]node.Node, 0, count)
	for i := range count {
		off := start + i*def.Size
		n := &node.Struct{
			Meta:     node.Meta{FieldName: elementName(i), BinaryOffset: off},
			TypeName: def.Name,
		}
		if err := s.decodeStruct(n, def, off); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		arr.Elements = append(arr.Elements, n)
	}
	return arr, nil
}

// properties decodes a legacy property bag: a count and a blob pointer in
// the header, then count fixed-size records in the blob.
func (s *state) properties(meta node.Meta) (node.Node, error) {
	off := meta.BinaryOffset
	arr := &node.Array{Meta: meta, ElementType: "AssetProperty"}

	rawCount, err := s.u32(off)
	if err != nil {
		return nil, err
	}
	pointer, err := s.u32(off + 4)
	if err != nil {
		return nil, err
	}
	count := int(int32(rawCount)) //nolint:gosec // the count is a signed word on disk
	if count <= 0 || pointer == 0 {
		return arr, nil
	}
	if count > s.d.maxArrayCount {
		return nil, errs.Formatf("property count %d exceeds limit %d", count, s.d.maxArrayCount)
	}
	start, err := s.reserve(propertySize, count)
	if err != nil {
		return nil, err
	}

	arr.Elements = make([]node.Node, 0, count)
	for i := range count {
		rec := start + i*propertySize
		item := &node.Struct{
			Meta:     node.Meta{FieldName: elementName(i), BinaryOffset: rec},
			TypeName: "AssetProperty",
		}
		headers := []struct {
			name   string
			typ    node.NumericType
			format node.Format
		}{
			{"NameHash", node.HashID, node.Hex},
			{"TypeHash", node.HashID, node.Hex},
			{"ValueOffset", node.UInt32, node.Decimal},
			{"Flags", node.UInt32, node.Hex},
		}
		for j, h := range headers {
			v, err := s.u32(rec + 4*j)
			if err != nil {
				return nil, fmt.Errorf("property %d: %w", i, err)
			}
			item.Append(&node.Number{
				Meta:   node.Meta{FieldName: h.name, BinaryOffset: rec + 4*j},
				Type:   h.typ,
				Format: h.format,
				Bits:   uint64(v),
			})
		}
		payload, err := s.span(rec+propertyHeader, propertySize-propertyHeader)
		if err != nil {
			return nil, fmt.Errorf("property %d: %w", i, err)
		}
		item.Append(&node.Raw{
			Meta: node.Meta{FieldName: "VariantData", BinaryOffset: rec + propertyHeader},
			Data: payload,
		})
		arr.Elements = append(arr.Elements, item)
	}
	return arr, nil
}

func (s *state) reserve(size, count int) (int, error) {
	total, ok := sizing.MulInt(size, count)
	if !ok {
		return 0, errs.Formatf("array of %d x %d bytes overflows", count, size)
	}
	return s.blob.Reserve(total)
}

func elementName(i int) string {
	return fmt.Sprintf("[%d]", i)
}

func (s *state) span(off, n int) ([]byte, error) {
	if !sizing.InRange(off, n, len(s.data)) {
		return nil, errs.Formatf("read %d bytes at 0x%X: data is %d bytes", n, off, len(s.data))
	}
	return s.data[off : off+n : off+n], nil
}

func (s *state) u8(off int) (uint8, error) {
	b, err := s.span(off, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (s *state) u16(off int) (uint16, error) {
	b, err := s.span(off, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (s *state) u32(off int) (uint32, error) {
	b, err := s.span(off, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (s *state) u64(off int) (uint64, error) {
	b, err := s.span(off, 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}
