package main

import (
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/meigma/recap/dbpf"
)

func extractCommand() *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "write package entries to a directory",
		ArgsUsage: "PACKAGE",
		Flags: []cli.Flag{
			&cli.PathFlag{
				Name:     "out",
				Aliases:  []string{"o"},
				Usage:    "destination `DIR`",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "only extract entries of type `EXT`",
			},
			&cli.BoolFlag{
				Name:  "overwrite",
				Usage: "replace files that already exist",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "concurrent file writes (0 uses GOMAXPROCS)",
			},
			&cli.BoolFlag{
				Name:  "zstd",
				Usage: "write zstd-compressed .zst files",
			},
		},
		Action: extractPackage,
	}
}

func extractPackage(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("extract: exactly one package is required")
	}
	opts, err := readerOptions(c)
	if err != nil {
		return err
	}
	r, err := dbpf.Open(c.Args().First(), opts...)
	if err != nil {
		return err
	}
	defer r.Close()

	stats, err := r.Extract(c.Context, c.Path("out"),
		dbpf.ExtractType(c.String("type")),
		dbpf.ExtractOverwrite(c.Bool("overwrite")),
		dbpf.ExtractWorkers(c.Int("workers")),
		dbpf.ExtractZstd(c.Bool("zstd")))
	if err != nil {
		return err
	}
	printer().Fprintf(c.App.Writer, "wrote %d files (%d bytes), skipped %d\n",
		stats.Written, stats.TotalBytes, stats.Skipped)
	return nil
}
