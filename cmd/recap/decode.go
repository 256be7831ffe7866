package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/meigma/recap"
	"github.com/meigma/recap/dbpf"
	"github.com/meigma/recap/decode"
	"github.com/meigma/recap/node"
)

func decodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "decode",
		Usage: "decode an asset file or a package entry and print its tree",
		Flags: []cli.Flag{
			&cli.PathFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "loose asset `FILE`, typed by its extension",
			},
			&cli.PathFlag{
				Name:    "package",
				Aliases: []string{"d"},
				Usage:   "package `FILE` holding the asset",
			},
			&cli.StringFlag{
				Name:    "asset",
				Aliases: []string{"a"},
				Usage:   "asset `NAME`, such as default.AffixTuning or catalog_131.bin",
			},
		},
		Action: decodeAsset,
	}
}

func decodeAsset(c *cli.Context) error {
	decOpts := []decode.Option{decode.WithLogger(logger(c))}

	var (
		tree *node.Struct
		err  error
	)
	switch {
	case c.Path("file") != "":
		tree, err = recap.DecodeFile(c.Path("file"), decOpts...)
	case c.Path("package") != "" && c.String("asset") != "":
		tree, err = decodeEntry(c, decOpts)
	default:
		return errors.New("decode: either --file or --package with --asset is required")
	}
	if err != nil {
		return err
	}
	return printTree(c.App.Writer, tree)
}

func decodeEntry(c *cli.Context, decOpts []decode.Option) (*node.Struct, error) {
	opts, err := readerOptions(c)
	if err != nil {
		return nil, err
	}
	r, err := dbpf.Open(c.Path("package"), opts...)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return recap.LoadAsset(r, c.String("asset"), decOpts...)
}

// printTree writes n as an indented "name: display" outline.
func printTree(w io.Writer, n node.Node) error {
	var err error
	node.Walk(n, func(n node.Node, depth int) bool {
		if err != nil {
			return false
		}
		_, err = fmt.Fprintf(w, "%s%s: %s\n", strings.Repeat("  ", depth), n.Name(), n.Display())
		return true
	})
	return err
}
