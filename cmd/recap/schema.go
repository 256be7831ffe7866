package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/meigma/recap"
	"github.com/meigma/recap/schema"
)

func schemaCommand() *cli.Command {
	return &cli.Command{
		Name:      "schema",
		Usage:     "list registered layouts or describe one",
		ArgsUsage: "[NAME]",
		Action:    showSchema,
	}
}

func showSchema(c *cli.Context) error {
	cat := recap.DefaultCatalog()
	w := c.App.Writer
	if c.NArg() == 0 {
		return listSchema(w, cat)
	}

	name := c.Args().First()
	if s, ok := cat.Struct(name); ok {
		return describeStruct(w, s)
	}
	if e, ok := cat.Enum(name); ok {
		return describeEnum(w, e)
	}
	return &recap.SchemaError{Kind: "layout", Name: name}
}

func listSchema(w io.Writer, cat *schema.Catalog) error {
	structs, enums := cat.Len()
	p := printer()
	p.Fprintf(w, "structs (%d):\n", structs)
	for s := range cat.Structs() {
		p.Fprintf(w, "  %-40s 0x%X\n", s.Name, s.Size)
	}
	p.Fprintf(w, "enums (%d):\n", enums)
	for _, name := range cat.EnumNames() {
		fmt.Fprintf(w, "  %s\n", name)
	}
	return nil
}

func describeStruct(w io.Writer, s *schema.Struct) error {
	fmt.Fprintf(w, "%s (0x%X bytes)\n", s.Name, s.Size)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, f := range s.Fields {
		fmt.Fprintf(tw, "  0x%04X\t%s\t%s\t%s\n", f.Offset, f.Name, f.Type, fieldDetail(f))
	}
	return tw.Flush()
}

func fieldDetail(f schema.Field) string {
	switch {
	case f.EnumType != "" && f.Type == schema.TypeArray:
		return "[]" + f.EnumType
	case f.EnumType != "":
		return f.EnumType
	case f.BufferSize > 0:
		return fmt.Sprintf("char[%d]", f.BufferSize)
	case f.Type == schema.TypeArray && f.CountOffset != 0:
		return fmt.Sprintf("[]%s count@+%d", f.ElementType, f.CountOffset)
	case f.Type == schema.TypeArray:
		return "[]" + f.ElementType
	default:
		return f.ElementType
	}
}

func describeEnum(w io.Writer, e *schema.Enum) error {
	fmt.Fprintf(w, "%s (%d values)\n", e.Name(), e.Len())
	for name, v := range e.Values() {
		fmt.Fprintf(w, "  0x%08X\t%s\n", v, name)
	}
	return nil
}
