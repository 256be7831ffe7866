package schema

import (
	"fmt"
	"strings"
)

// DataType identifies how a field is laid out. The values are the type
// hashes the game itself uses in its reflection tables.
type DataType uint32

// Primitive types. All are fixed width and read straight from the header.
const (
	TypeBool   DataType = 0x68FE5F59
	TypeInt    DataType = 0x1F886EB0
	TypeInt32  DataType = 0x45D8F3DE
	TypeUInt32 DataType = 0xE48967A3
	TypeHashID DataType = 0x2E10AAAE
	TypeObjID  DataType = 0x1FB04A19
	TypeUInt16 DataType = 0x7EF65E35
	TypeUInt8  DataType = 0xCDBE69CA
	TypeFloat  DataType = 0x4EDCD7A9
	TypeInt64  DataType = 0x4C91FF43
	TypeUInt64 DataType = 0x5DDA2052
	TypeEnum   DataType = 0x096339A2

	// TypeUInt is the older spelling of TypeUInt32.
	TypeUInt DataType = 0x54CC76D5
)

// Vector types, stored as consecutive 32-bit floats.
const (
	TypeVector2     DataType = 0x9EB342FE
	TypeVector3     DataType = 0x9EB342FF
	TypeVector4     DataType = 0x9EB342F8
	TypeOrientation DataType = 0x75EC94F5
)

// Dynamic types. The header holds presence indicators and the text lives
// in the blob.
const (
	TypeKey                  DataType = 0x46842E82
	TypeChar                 DataType = 0xF6C8069D
	TypeCharPtr              DataType = 0x19E2690D
	TypeAsset                DataType = 0x9C617503
	TypeLocalizedAssetString DataType = 0x1D1FF116
)

// Container types.
const (
	TypeArray               DataType = 0x555CCDF4
	TypeNullable            DataType = 0x71AB5182
	TypeStruct              DataType = 0x00000008
	TypeAssetPropertyVector DataType = 0xE8A2A5D7
)

var typeNames = map[DataType]string{
	TypeBool:                 "Bool",
	TypeInt:                  "Int",
	TypeInt32:                "Int32",
	TypeUInt32:               "UInt32",
	TypeUInt:                 "UInt",
	TypeHashID:               "HashId",
	TypeObjID:                "ObjId",
	TypeUInt16:               "UInt16",
	TypeUInt8:                "UInt8",
	TypeFloat:                "Float",
	TypeInt64:                "Int64",
	TypeUInt64:               "UInt64",
	TypeEnum:                 "Enum",
	TypeVector2:              "Vector2",
	TypeVector3:              "Vector3",
	TypeVector4:              "Vector4",
	TypeOrientation:          "Orientation",
	TypeKey:                  "Key",
	TypeChar:                 "Char",
	TypeCharPtr:              "CharPtr",
	TypeAsset:                "Asset",
	TypeLocalizedAssetString: "LocalizedAssetString",
	TypeArray:                "Array",
	TypeNullable:             "Nullable",
	TypeStruct:               "Struct",
	TypeAssetPropertyVector:  "AssetPropertyVector",
}

var typesByName = func() map[string]DataType {
	m := make(map[string]DataType, len(typeNames)+1)
	for t, name := range typeNames {
		m[strings.ToLower(name)] = t
	}
	m["clocalizedassetstring"] = TypeLocalizedAssetString
	return m
}()

// ParseDataType returns the DataType with the given name, ignoring case.
func ParseDataType(name string) (DataType, bool) {
	t, ok := typesByName[strings.ToLower(name)]
	return t, ok
}

// String returns the type's name, or its hex value when unknown.
func (t DataType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("DataType(0x%08X)", uint32(t))
}

// Known reports whether t is one of the declared types.
func (t DataType) Known() bool {
	_, ok := typeNames[t]
	return ok
}

// IsPrimitive reports whether t is a fixed-width scalar.
func (t DataType) IsPrimitive() bool {
	switch t {
	case TypeBool, TypeInt, TypeInt32, TypeUInt32, TypeUInt, TypeHashID, TypeObjID,
		TypeUInt16, TypeUInt8, TypeFloat, TypeInt64, TypeUInt64, TypeEnum:
		return true
	}
	return false
}

// IsVector reports whether t is a float vector or quaternion.
func (t DataType) IsVector() bool {
	switch t {
	case TypeVector2, TypeVector3, TypeVector4, TypeOrientation:
		return true
	}
	return false
}

// IsDynamic reports whether t keeps its payload in the blob behind a
// presence indicator.
func (t DataType) IsDynamic() bool {
	switch t {
	case TypeKey, TypeChar, TypeCharPtr, TypeAsset, TypeLocalizedAssetString:
		return true
	}
	return false
}

// IsContainer reports whether t wraps other fields.
func (t DataType) IsContainer() bool {
	switch t {
	case TypeArray, TypeNullable, TypeStruct, TypeAssetPropertyVector:
		return true
	}
	return false
}

// PreferHex reports whether values of t are conventionally shown in hex.
func (t DataType) PreferHex() bool {
	switch t {
	case TypeHashID, TypeObjID, TypeKey:
		return true
	}
	return false
}

// Size returns the width of one value of t as an array element, or the
// width of its header slot for dynamic and container types. Inline structs
// report 0; their size comes from the struct definition.
func (t DataType) Size() int {
	switch t {
	case TypeUInt16:
		return 2
	case TypeUInt8:
		return 1
	case TypeInt64, TypeUInt64, TypeVector2, TypeArray, TypeAssetPropertyVector,
		TypeLocalizedAssetString:
		return 8
	case TypeVector3:
		return 12
	case TypeVector4, TypeOrientation:
		return 16
	case TypeStruct:
		return 0
	}
	return 4
}

// Components returns the number of floats in a vector type.
func (t DataType) Components() int {
	switch t {
	case TypeVector2:
		return 2
	case TypeVector3:
		return 3
	case TypeVector4, TypeOrientation:
		return 4
	}
	return 0
}
