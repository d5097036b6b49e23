package main

import (
	"log/slog"
	"os"

	"github.com/nvila/wikidex/index"
	"github.com/nvila/wikidex/telemetry"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

var cli struct {
	In  string `help:"JSONL shard file or directory of shards to index." required:"" type:"path"`
	Out string `help:"Path of the index blob to write." default:"wiki.idx"`

	Multifield bool `help:"Build one index per record field."`
	Stem       bool `help:"Build the stem index."`
	Permuterm  bool `help:"Build the permuterm index."`
	Stats      bool `help:"Print index statistics after building." short:"s"`
	Verbose    bool `help:"Enable debug logging." short:"v"`
}

func main() {
	_ = godotenv.Load()

	kctx := kong.Parse(&cli,
		kong.Name("wikidex-index"),
		kong.Description("Build an inverted index over crawled JSONL shards."),
		kong.DefaultEnvars("WIKIDEX"),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	slogger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))
	telemetry.SetDefaultLogger(telemetry.NewSlogLogger(slogger))

	var options []index.Option
	if cli.Multifield {
		options = append(options, index.WithMultifield())
	}
	if cli.Stem {
		options = append(options, index.WithStemming())
	}
	if cli.Permuterm {
		options = append(options, index.WithPermuterm())
	}

	ix := index.New(options...)
	err := ix.IndexDir(cli.In)
	kctx.FatalIfErrorf(err)

	err = ix.Save(cli.Out)
	kctx.FatalIfErrorf(err)
	telemetry.Info("main", "index saved", "path", cli.Out)

	if cli.Stats {
		ix.Stats(os.Stdout)
	}
}
