// Command recap lists, extracts and decodes the contents of Darkspore
// package archives.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/meigma/recap/cache/disk"
	"github.com/meigma/recap/dbpf"
)

const (
	flagVerbose    = "verbose"
	flagRegistries = "registries"
	flagCacheDir   = "cache-dir"
	flagCacheMax   = "cache-max-bytes"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "recap:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "recap",
		Usage: "inspect Darkspore package archives and compiled assets",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    flagVerbose,
				Aliases: []string{"v"},
				Usage:   "log debug output to stderr",
			},
			&cli.PathFlag{
				Name:    flagRegistries,
				Aliases: []string{"r"},
				Usage:   "directory holding reg_type.txt and reg_file.txt",
				EnvVars: []string{"RECAP_REGISTRIES"},
			},
			&cli.PathFlag{
				Name:    flagCacheDir,
				Usage:   "cache decompressed payloads in `DIR`",
				EnvVars: []string{"RECAP_CACHE_DIR"},
			},
			&cli.Int64Flag{
				Name:  flagCacheMax,
				Usage: "prune the payload cache above `N` bytes (0 is unlimited)",
			},
		},
		Commands: []*cli.Command{
			listCommand(),
			extractCommand(),
			decodeCommand(),
			schemaCommand(),
		},
	}
}

func logger(c *cli.Context) *slog.Logger {
	level := slog.LevelInfo
	if c.Bool(flagVerbose) {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level}))
}

func printer() *message.Printer {
	return message.NewPrinter(language.English)
}

// readerOptions maps the global flags to archive reader options.
func readerOptions(c *cli.Context) ([]dbpf.Option, error) {
	log := logger(c)
	opts := []dbpf.Option{dbpf.WithLogger(log)}

	if dir := c.Path(flagRegistries); dir != "" {
		types, files, err := dbpf.LoadRegistries(dir)
		if err != nil {
			return nil, err
		}
		log.Debug("loaded registries",
			slog.String("dir", dir),
			slog.Int("types", types.Len()),
			slog.Int("files", files.Len()))
		opts = append(opts, dbpf.WithRegistries(types, files))
	}

	if dir := c.Path(flagCacheDir); dir != "" {
		dc, err := disk.New(dir,
			disk.WithLogger(log),
			disk.WithMaxBytes(c.Int64(flagCacheMax)))
		if err != nil {
			return nil, err
		}
		opts = append(opts, dbpf.WithCache(dc))
	}
	return opts, nil
}
