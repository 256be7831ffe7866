package schema

import (
	"errors"
	"fmt"

	"github.com/meigma/recap/internal/errs"
)

// Validate checks that every reference in the catalog resolves and that
// every field's header slot lies inside its struct. It returns all problems
// joined, or nil.
func (c *Catalog) Validate() error {
	var problems []error
	for s := range c.Structs() {
		for _, f := range s.Fields {
			if err := c.validateField(s, f); err != nil {
				problems = append(problems, fmt.Errorf("%s.%s: %w", s.Name, f.Name, err))
			}
		}
	}
	return errors.Join(problems...)
}

func (c *Catalog) validateField(s *Struct, f Field) error {
	if !f.Type.Known() {
		return errs.MissingType(f.Type.String())
	}
	if f.EnumType != "" {
		if _, ok := c.Enum(f.EnumType); !ok {
			return errs.MissingEnum(f.EnumType)
		}
	}

	width := HeaderWidth(f)
	switch f.Type {
	case TypeStruct:
		nested, ok := c.Struct(f.ElementType)
		if !ok {
			return errs.MissingStruct(f.ElementType)
		}
		width = nested.Size
	case TypeNullable:
		if _, ok := c.Struct(f.ElementType); !ok {
			return errs.MissingStruct(f.ElementType)
		}
	case TypeArray:
		if err := c.validateElement(f.ElementType); err != nil {
			return err
		}
	}

	if f.Offset < 0 || f.Offset+width > s.Size {
		return fmt.Errorf("%w: header slot 0x%X+%d exceeds struct size 0x%X",
			errs.ErrSchema, f.Offset, width, s.Size)
	}
	return nil
}

func (c *Catalog) validateElement(elem string) error {
	if _, ok := c.Struct(elem); ok {
		return nil
	}
	t, ok := ParseDataType(elem)
	if !ok || t.IsContainer() {
		return errs.MissingType(elem)
	}
	return nil
}

// HeaderWidth returns the number of header bytes f occupies. Inline
// structs report 0 because their width depends on the catalog.
func HeaderWidth(f Field) int {
	switch {
	case f.Type == TypeBool:
		return 1
	case f.Type == TypeChar && f.BufferSize > 0:
		return f.BufferSize
	case f.Type == TypeArray:
		return max(4, f.CountAt()+4)
	case f.Type == TypeNullable:
		return 4
	}
	return f.Type.Size()
}
