package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rbhz/word-lookup/app/clients/dictionaryapi"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	log "github.com/rs/zerolog/log"
)

type Opts struct {
	APIURL    string        `long:"api-url" env:"DICTIONARY_API_URL" default:"https://api.dictionaryapi.dev/api/v2/entries/en" description:"Dictionary API entries URL"`
	Timeout   time.Duration `long:"timeout" env:"LOOKUP_TIMEOUT" default:"10s" description:"Dictionary API request timeout"`
	LogLevel  string        `long:"log-level" env:"LOG_LEVEL" default:"info" choice:"debug" choice:"info" choice:"warn" choice:"error" description:"Log level"`
	LogFile   string        `long:"log-file" env:"LOG_FILE" description:"Write logs to the file instead of stderr"`
	AuthorURL string        `long:"author-url" env:"AUTHOR_URL" default:"http://github.com/Xeven777" description:"Author profile link shown in the UI"`

	Web     WebCommand     `command:"web" description:"Serve the web page and JSON API"`
	TUI     TUICommand     `command:"tui" description:"Run the terminal UI"`
	Bot     BotCommand     `command:"bot" description:"Run the Telegram bot"`
	Serve   ServeCommand   `command:"serve" description:"Serve the web page and run the Telegram bot"`
	Define  DefineCommand  `command:"define" description:"Print definitions of a word"`
	Version VersionCommand `command:"version" description:"Print version information"`
}

// client creates the dictionary client from global options
func (o *Opts) client() *dictionaryapi.Client {
	return dictionaryapi.NewClient(o.APIURL, o.Timeout)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(code)
}

// run parses args, executes the chosen command and returns the exit code
func run(ctx context.Context, args []string, stdout io.Writer) int {
	var opts Opts
	env := &commandEnv{ctx: ctx, opts: &opts, stdout: stdout}
	opts.Web.env = env
	opts.TUI.env = env
	opts.Bot.env = env
	opts.Serve.env = env
	opts.Define.env = env
	opts.Version.env = env

	parser := flags.NewParser(&opts, flags.Default)
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		if cmd == nil {
			return nil
		}
		_, fullscreen := cmd.(*TUICommand)
		closeLog, err := setupLog(opts, fullscreen)
		if err != nil {
			return errors.Wrap(err, "failed to setup logging")
		}
		defer closeLog()
		return cmd.Execute(args)
	}

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return 0
		}
		return 1
	}
	return 0
}

// setupLog configures the global logger. Fullscreen commands only log to
// a file so the screen stays intact.
func setupLog(opts Opts, fullscreen bool) (func(), error) {
	level, err := zerolog.ParseLevel(opts.LogLevel)
	if err != nil {
		return nil, err
	}
	zerolog.SetGlobalLevel(level)

	switch {
	case opts.LogFile != "":
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
		return func() {
			if err := f.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
			}
		}, nil
	case fullscreen:
		log.Logger = zerolog.Nop()
	default:
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	return func() {}, nil
}
