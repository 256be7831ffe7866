package recap

import "github.com/meigma/recap/internal/errs"

// Errors re-exported from the internal error taxonomy.
var (
	// ErrSchema is returned when a struct, enum or type name cannot be resolved.
	ErrSchema = errs.ErrSchema

	// ErrFormat is returned when binary data is malformed or truncated.
	ErrFormat = errs.ErrFormat

	// ErrIO is returned when a file or archive cannot be read.
	ErrIO = errs.ErrIO

	// ErrNotFound is returned when an archive entry does not exist.
	ErrNotFound = errs.ErrNotFound

	// ErrSizeOverflow is returned when a size value overflows.
	ErrSizeOverflow = errs.ErrSizeOverflow
)

// SchemaError names the schema element that could not be resolved.
type SchemaError = errs.SchemaError

// FieldError locates a decode failure within a struct.
type FieldError = errs.FieldError
