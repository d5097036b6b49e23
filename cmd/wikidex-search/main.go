package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/nvila/wikidex/index"
	"github.com/nvila/wikidex/telemetry"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

var cli struct {
	Index string `help:"Path of the index blob to load." default:"wiki.idx" type:"existingfile"`

	Query string `help:"Solve a single query and show its results." xor:"mode"`
	Count string `help:"Solve every query in this file and print counts." xor:"mode" type:"existingfile"`
	Test  string `help:"Check every 'query<TAB>expected' line in this file." xor:"mode" type:"existingfile"`

	All     bool `help:"Show every result instead of the first 10."`
	Stem    bool `help:"Resolve query terms through the stem index."`
	Verbose bool `help:"Enable debug logging." short:"v"`
}

func main() {
	_ = godotenv.Load()

	kctx := kong.Parse(&cli,
		kong.Name("wikidex-search"),
		kong.Description("Query a previously built index. Without --query, --count or --test, reads queries from stdin."),
		kong.DefaultEnvars("WIKIDEX"),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	slogger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))
	telemetry.SetDefaultLogger(telemetry.NewSlogLogger(slogger))

	ix, err := index.Load(cli.Index)
	kctx.FatalIfErrorf(err)
	ix.SetShowAll(cli.All)
	ix.SetStemming(cli.Stem)

	switch {
	case cli.Query != "":
		ix.SolveAndShow(cli.Query, os.Stdout)
	case cli.Count != "":
		ix.SolveAndCount(readLines(kctx, cli.Count), os.Stdout)
	case cli.Test != "":
		ok := ix.SolveAndTest(readLines(kctx, cli.Test), os.Stdout)
		if !ok {
			os.Exit(1)
		}
	default:
		repl(ix)
	}
}

func repl(ix *index.Indexer) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("query> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" || query == "exit" {
			return
		}
		ix.SolveAndShow(query, os.Stdout)
	}
}

func readLines(kctx *kong.Context, path string) []string {
	contents, err := os.ReadFile(path)
	kctx.FatalIfErrorf(err)
	lines := strings.Split(string(contents), "\n")
	// a trailing newline is not an extra query
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
