package schema

// DefaultCountOffset is where an array's count word sits relative to its
// presence word unless a field says otherwise.
const DefaultCountOffset = 4

// Field describes one member of a struct layout.
type Field struct {
	Name   string
	Type   DataType
	Offset int // relative to the owning struct

	// ElementType names the struct or DataType of array elements, and the
	// nested struct of inline and nullable fields.
	ElementType string

	// CountOffset is the position of an array's count relative to Offset.
	// Zero selects DefaultCountOffset.
	CountOffset int

	// BufferSize is the width of an inline, null-padded char buffer.
	BufferSize int

	// EnumType binds Enum fields and enum arrays to a registered enum.
	EnumType string
}

// CountAt returns the effective count offset.
func (f Field) CountAt() int {
	if f.CountOffset == 0 {
		return DefaultCountOffset
	}
	return f.CountOffset
}

// WithCountOffset returns a copy of f with its array count at off.
func (f Field) WithCountOffset(off int) Field {
	f.CountOffset = off
	return f
}

// IsEnum reports whether f holds enum values, either directly or as array
// elements.
func (f Field) IsEnum() bool {
	if f.Type == TypeEnum {
		return true
	}
	if f.Type != TypeArray {
		return false
	}
	et, ok := ParseDataType(f.ElementType)
	return ok && et == TypeEnum
}

// Scalar declares a primitive, vector or dynamic field.
func Scalar(name string, t DataType, offset int) Field {
	return Field{Name: name, Type: t, Offset: offset}
}

// CharBuffer declares an inline, null-padded string of size bytes.
func CharBuffer(name string, offset, size int) Field {
	return Field{Name: name, Type: TypeChar, Offset: offset, BufferSize: size}
}

// LocalizedString declares a two-indicator localized string field.
func LocalizedString(name string, offset int) Field {
	return Field{Name: name, Type: TypeLocalizedAssetString, Offset: offset}
}

// EnumField declares an Enum field bound to a named enum.
func EnumField(name, enum string, offset int) Field {
	return Field{Name: name, Type: TypeEnum, Offset: offset, EnumType: enum}
}

// Array declares an array whose elements are a struct or DataType named elem.
func Array(name, elem string, offset int) Field {
	return Field{Name: name, Type: TypeArray, Offset: offset, ElementType: elem}
}

// ArrayOf declares an array of primitive, vector or dynamic elements.
func ArrayOf(name string, elem DataType, offset int) Field {
	return Array(name, elem.String(), offset)
}

// EnumArray declares an array of enum values bound to a named enum.
func EnumArray(name, enum string, offset int) Field {
	f := ArrayOf(name, TypeEnum, offset)
	f.EnumType = enum
	return f
}

// Inline declares a nested struct embedded at offset.
func Inline(name, elem string, offset int) Field {
	return Field{Name: name, Type: TypeStruct, Offset: offset, ElementType: elem}
}

// Optional declares a nullable nested struct stored in the blob.
func Optional(name, elem string, offset int) Field {
	return Field{Name: name, Type: TypeNullable, Offset: offset, ElementType: elem}
}

// PropertyVector declares a legacy asset property bag.
func PropertyVector(name string, offset int) Field {
	return Field{Name: name, Type: TypeAssetPropertyVector, Offset: offset}
}
