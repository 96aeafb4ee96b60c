// main.go
//
// wordmaster entry point.
//
//	wordmaster [play] [flags]     play in the terminal (default)
//	wordmaster serve [flags]      single-player JSON API over HTTP
//	wordmaster import -db path    copy a word list into a SQLite database
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ahnaf-chowdhury/wordmaster/internal/config"
	"github.com/ahnaf-chowdhury/wordmaster/internal/console"
	"github.com/ahnaf-chowdhury/wordmaster/internal/httpserver"
	"github.com/ahnaf-chowdhury/wordmaster/internal/input"
	"github.com/ahnaf-chowdhury/wordmaster/internal/render"
	"github.com/ahnaf-chowdhury/wordmaster/internal/store"
	"github.com/ahnaf-chowdhury/wordmaster/internal/words"
)

func main() {
	cmd, args := "play", os.Args[1:]
	if len(args) > 0 {
		switch args[0] {
		case "play", "serve", "import":
			cmd, args = args[0], args[1:]
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch cmd {
	case "serve":
		err = serve(ctx, args)
	case "import":
		err = importWords(ctx, args)
	default:
		err = play(ctx, args)
	}
	if err != nil && !errors.Is(err, flag.ErrHelp) && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Str("command", cmd).Msg("wordmaster exited")
	}
}

func play(ctx context.Context, args []string) error {
	cfg, err := config.Load(flag.NewFlagSet("play", flag.ContinueOnError), args, nil)
	if err != nil {
		return err
	}
	setupLogging(cfg.LogLevel, zerolog.WarnLevel)

	dict, closeDict, err := openWords(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeDict()

	g := console.New(dict, input.NewPrompter(os.Stdin, os.Stdout, dict), render.NewStdout(cfg.Color), console.Options{
		Length:      cfg.Length,
		MaxAttempts: cfg.MaxAttempts,
		Daily:       cfg.Daily,
		DailySalt:   cfg.DailySalt,
	})
	return g.Run(ctx)
}

func serve(ctx context.Context, args []string) error {
	cfg, err := config.Load(flag.NewFlagSet("serve", flag.ContinueOnError), args, nil)
	if err != nil {
		return err
	}
	setupLogging(cfg.LogLevel, zerolog.InfoLevel)

	dict, closeDict, err := openWords(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeDict()

	srv := httpserver.New(store.NewMemoryStore(cfg.StoreCapacity), dict, httpserver.Options{
		MaxAttempts:   cfg.MaxAttempts,
		DefaultLength: cfg.Length,
		DailySalt:     cfg.DailySalt,
		AllowedOrigin: cfg.AllowedOrigin,
	})
	log.Info().Str("port", cfg.Port).Msg("starting wordmaster server")
	return srv.Start(ctx, ":"+cfg.Port)
}

func importWords(ctx context.Context, args []string) error {
	var dbPath string
	cfg, err := config.Load(flag.NewFlagSet("import", flag.ContinueOnError), args, func(fs *flag.FlagSet) {
		fs.StringVar(&dbPath, "db", "words.db", "SQLite database to write")
	})
	if err != nil {
		return err
	}
	setupLogging(cfg.LogLevel, zerolog.InfoLevel)

	src, closeSrc, err := openWords(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSrc()

	var list []string
	for n := words.MinLength; n <= words.MaxLength; n++ {
		ws, err := src.WordsOfLength(n)
		if errors.Is(err, words.ErrWordListUnavailable) {
			continue
		}
		if err != nil {
			return err
		}
		list = append(list, ws...)
	}

	db, err := words.OpenSQLite(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	added, err := db.Import(ctx, list)
	if err != nil {
		return err
	}
	total, err := db.Count(ctx)
	if err != nil {
		return err
	}
	log.Info().Str("db", dbPath).Int("added", added).Int("total", total).Msg("import complete")
	fmt.Printf("imported %d new words into %s (%d total)\n", added, dbPath, total)
	return nil
}

func openWords(ctx context.Context, cfg config.Config) (words.Dictionary, func() error, error) {
	dict, closeFn, err := words.Open(ctx, cfg.Words, cfg.DownloadTimeout)
	if errors.Is(err, words.ErrWordListUnavailable) {
		return nil, nil, fmt.Errorf("no word list at %q: %w", cfg.Words, err)
	}
	if err != nil {
		return nil, nil, err
	}
	return dict, closeFn, nil
}

// setupLogging sends zerolog output to stderr so it never mixes with the game screen.
func setupLogging(level string, def zerolog.Level) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	lvl := def
	if level != "" {
		if parsed, err := zerolog.ParseLevel(level); err == nil {
			lvl = parsed
		}
	}
	zerolog.SetGlobalLevel(lvl)
}
