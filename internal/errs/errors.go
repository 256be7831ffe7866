// Package errs defines the error taxonomy shared by the decoder, the schema
// catalog and the archive reader.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrSchema is returned when a struct, enum or type name cannot be resolved.
	ErrSchema = errors.New("recap: schema error")

	// ErrFormat is returned when binary data is malformed or truncated.
	ErrFormat = errors.New("recap: format error")

	// ErrIO is returned when a file or archive cannot be read.
	ErrIO = errors.New("recap: io error")

	// ErrNotFound is returned when an archive entry does not exist.
	ErrNotFound = errors.New("recap: not found")

	// ErrSizeOverflow is returned when a size value overflows.
	ErrSizeOverflow = errors.New("recap: size overflow")
)

// SchemaError names the schema element that could not be resolved.
type SchemaError struct {
	Kind string // "struct", "enum" or "type"
	Name string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%v: unknown %s %q", ErrSchema, e.Kind, e.Name)
}

// Is reports whether target is ErrSchema.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// MissingStruct returns a SchemaError for an unknown struct name.
func MissingStruct(name string) error {
	return &SchemaError{Kind: "struct", Name: name}
}

// MissingEnum returns a SchemaError for an unknown enum name.
func MissingEnum(name string) error {
	return &SchemaError{Kind: "enum", Name: name}
}

// MissingType returns a SchemaError for an unknown element type name.
func MissingType(name string) error {
	return &SchemaError{Kind: "type", Name: name}
}

// FieldError locates a decode failure within a struct.
type FieldError struct {
	Field  string
	Struct string
	Offset int
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("decode %q in %q at 0x%X: %v", e.Field, e.Struct, e.Offset, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Formatf returns an error wrapping ErrFormat.
func Formatf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrFormat, fmt.Sprintf(format, args...))
}

// IO wraps err with ErrIO, keeping err matchable.
func IO(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrIO, op, err)
}
