package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zerologlog "github.com/rs/zerolog/log"

	"guesschar/internal/admin"
	"guesschar/internal/bot"
	"guesschar/internal/config"
	"guesschar/internal/game"
	"guesschar/internal/ops"
)

const version = "v1.0.0"

func main() {
	var (
		showHelp    = flag.Bool("help", false, "Show help message")
		showVersion = flag.Bool("version", false, "Show version information")
		opsPortFlag = flag.String("ops-port", "", "Port for the ops HTTP endpoint (overrides OPS_PORT env var)")
	)
	flag.BoolVar(showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	flag.Parse()

	if *showHelp {
		fmt.Printf(`guesschar - "Guess the Character" Telegram group game

Usage: %s [options]

Options:
  -h, --help       Show this help message
  -v, --version    Show version information
  --ops-port PORT  Port for the ops HTTP endpoint (default: 8080 or OPS_PORT env var)

Environment Variables:
  BOT_TOKEN   Telegram bot token (required)
  DEBUG       Verbose logging and Telegram API debug output (default: false)
  OPS_PORT    Port for the ops HTTP endpoint (default: 8080)
`, os.Args[0])
		return
	}

	if *showVersion {
		fmt.Printf("guesschar %s\n", version)
		return
	}

	// Local development convenience; a missing .env is fine.
	_ = godotenv.Load()

	cfg := config.FromEnv()
	if *opsPortFlag != "" {
		cfg.OpsPort = *opsPortFlag
	}

	// zerolog setup (human-friendly console)
	zerolog.TimeFieldFormat = time.RFC3339
	cw := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	zerologlog.Logger = zerologlog.Output(cw)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := cfg.Validate(); err != nil {
		zerologlog.Fatal().Err(err).Msg("invalid configuration")
	}

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		zerologlog.Fatal().Err(err).Msg("telegram auth failed")
	}
	api.Debug = cfg.Debug

	games := game.NewManager()
	resolver := admin.NewResolver(bot.NewLookup(api))
	handler := bot.New(api, games, resolver, zerologlog.Logger)

	go func() {
		if err := ops.New(games, version).Run(":" + cfg.OpsPort); err != nil {
			zerologlog.Error().Err(err).Msg("ops endpoint stopped")
		}
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := api.GetUpdatesChan(u)

	zerologlog.Info().Str("bot", api.Self.UserName).Str("version", version).Msg("starting update loop")
	ctx := context.Background()
	for update := range updates {
		dispatch(ctx, handler, update)
	}
}

// dispatch keeps the update loop alive when a single event misbehaves.
func dispatch(ctx context.Context, h *bot.Handler, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			zerologlog.Error().Interface("panic", r).Int("update", update.UpdateID).Msg("handler panic")
		}
	}()
	h.HandleUpdate(ctx, update)
}
