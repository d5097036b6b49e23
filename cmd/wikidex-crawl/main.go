package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nvila/wikidex/crawler"
	"github.com/nvila/wikidex/downloader"
	"github.com/nvila/wikidex/downloader/middleware"
	"github.com/nvila/wikidex/telemetry"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

var cli struct {
	Url      string `help:"Seed article url (absolute or /wiki/-relative)." xor:"seed" required:""`
	UrlsFile string `help:"File with one absolute seed url per line (crawled at depth 0)." xor:"seed" required:"" type:"existingfile"`

	Out   string `help:"Base output filename, must end in .json." default:"wiki.json"`
	Limit int    `help:"Maximum number of articles to capture." default:"100"`
	Batch int    `help:"Articles per shard; 0 writes a single file at the end." default:"0"`
	Depth int    `help:"Maximum crawl depth; 0 crawls only the seeds." default:"1"`

	Rate      float64 `help:"Maximum requests per second." default:"2"`
	UserAgent string  `help:"User agent sent with every request." default:"wikidex/1.0 (https://github.com/nvila/wikidex)"`
	CacheDir  string  `help:"Cache responses on the filesystem under this directory."`
	Verbose   bool    `help:"Enable debug logging." short:"v"`
}

func main() {
	// .env values act as WIKIDEX_* defaults for the flags below
	_ = godotenv.Load()

	kctx := kong.Parse(&cli,
		kong.Name("wikidex-crawl"),
		kong.Description("Crawl Spanish-Wikipedia articles into JSONL shards."),
		kong.DefaultEnvars("WIKIDEX"),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	slogger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))
	telemetry.SetDefaultLogger(telemetry.NewSlogLogger(slogger))

	client := downloader.NewPooledHttpClient()
	mids := []downloader.Middleware{
		middleware.NewAllowedDomains([]string{"es.wikipedia.org"}, nil),
		middleware.NewUserAgent(cli.UserAgent),
		middleware.NewRobots(client, cli.UserAgent),
		middleware.NewThrottle(cli.Rate, 1),
	}
	if cli.CacheDir != "" {
		mids = append(mids, middleware.NewCache(middleware.NewFSCacheStore(cli.CacheDir)))
	}
	dl := downloader.NewDownloader(client, mids...)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c := crawler.New(dl)
	var err error
	if cli.Url != "" {
		err = c.CrawlFromURL(ctx, cli.Url, cli.Limit, cli.Out, cli.Batch, cli.Depth)
	} else {
		err = c.CrawlFromFile(ctx, cli.UrlsFile, cli.Limit, cli.Out, cli.Batch)
	}
	kctx.FatalIfErrorf(err)
}
