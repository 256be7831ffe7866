package main

import (
	"bytes"
	"errors"
	"iter"
	"text/tabwriter"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/meigma/recap/dbpf"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "list the entries of one or more packages",
		ArgsUsage: "PACKAGE...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "only list entries of type `EXT`",
			},
		},
		Action: listPackages,
	}
}

func listPackages(c *cli.Context) error {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		return errors.New("list: at least one package is required")
	}
	opts, err := readerOptions(c)
	if err != nil {
		return err
	}

	// Each package gets its own reader; output keeps argument order.
	out := make([]bytes.Buffer, len(paths))
	g, _ := errgroup.WithContext(c.Context)
	for i, path := range paths {
		g.Go(func() error {
			return listPackage(&out[i], path, c.String("type"), len(paths) > 1, opts)
		})
	}
	err = g.Wait()
	for i := range out {
		if _, werr := out[i].WriteTo(c.App.Writer); werr != nil {
			return werr
		}
	}
	return err
}

func listPackage(buf *bytes.Buffer, path, typ string, heading bool, opts []dbpf.Option) error {
	r, err := dbpf.Open(path, opts...)
	if err != nil {
		return err
	}
	defer r.Close()

	var entries iter.Seq2[string, dbpf.Entry]
	if typ != "" {
		entries = r.ListByType(typ)
	} else {
		entries = r.List()
	}

	p := printer()
	if heading {
		p.Fprintf(buf, "%s (%d entries)\n", path, r.Len())
	}
	tw := tabwriter.NewWriter(buf, 0, 4, 2, ' ', 0)
	var count int
	for name, e := range entries {
		count++
		p.Fprintf(tw, "%s\t%d\t%d\t\n", name, e.DecompressedSize, e.CompressedSize)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if typ != "" {
		p.Fprintf(buf, "%s: %d entries of type %s\n", path, count, typ)
	}
	return nil
}
