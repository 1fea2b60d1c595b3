package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime/debug"

	"github.com/rbhz/word-lookup/app/api"
	"github.com/rbhz/word-lookup/app/bot"
	"github.com/rbhz/word-lookup/app/lookup"
	"github.com/rbhz/word-lookup/app/prefs"
	"github.com/rbhz/word-lookup/app/render"
	"github.com/rbhz/word-lookup/app/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	log "github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// commandEnv is shared by all commands
type commandEnv struct {
	ctx    context.Context
	opts   *Opts
	stdout io.Writer
}

// WebCommand serves the web front end
type WebCommand struct {
	Port int `long:"port" env:"PORT" default:"8080" description:"Port to listen on"`

	env *commandEnv
}

func (c *WebCommand) Execute(args []string) error {
	server := api.NewServer(c.env.opts.client(), c.env.opts.AuthorURL)
	if err := server.Run(c.env.ctx, c.Port); err != nil {
		return errors.Wrap(err, "failed to run web server")
	}
	return nil
}

// TUICommand runs the terminal UI
type TUICommand struct {
	Prefs string `long:"prefs" env:"PREFS" description:"Preferences file (default: ~/.config/word-lookup/prefs.toml)"`

	env *commandEnv
}

func (c *TUICommand) Execute(args []string) error {
	p := prefs.Load(c.Prefs)
	err := tui.Run(tui.Options{
		Context:    c.env.ctx,
		Controller: lookup.NewController(c.env.opts.client()),
		Player:     tui.NewCommandPlayer(p.PlayerArgs()),
		Accent:     p.Accent,
		AuthorURL:  c.env.opts.AuthorURL,
	})
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errors.Wrap(err, "failed to run terminal UI")
	}
	return nil
}

// BotCommand runs the Telegram bot
type BotCommand struct {
	BotToken string `long:"bot-token" env:"BOT_TOKEN" required:"true" description:"Telegram bot token"`

	env *commandEnv
}

func (c *BotCommand) Execute(args []string) error {
	b, err := newBot(c.BotToken, c.env.opts.client())
	if err != nil {
		return err
	}
	b.Start(c.env.ctx)
	return nil
}

func newBot(token string, fetcher lookup.Fetcher) (*bot.TelegramBot, error) {
	return bot.NewTelegramBot(token, []bot.Handler{
		bot.StartHandler{},
		bot.NewWordHandler(fetcher),
	})
}

// ServeCommand runs the web front end and the Telegram bot together
type ServeCommand struct {
	Port     int    `long:"port" env:"PORT" default:"8080" description:"Port to listen on"`
	BotToken string `long:"bot-token" env:"BOT_TOKEN" required:"true" description:"Telegram bot token"`

	env *commandEnv
}

func (c *ServeCommand) Execute(args []string) error {
	client := c.env.opts.client()
	b, err := newBot(c.BotToken, client)
	if err != nil {
		return err
	}
	server := api.NewServer(client, c.env.opts.AuthorURL)

	g, ctx := errgroup.WithContext(c.env.ctx)
	g.Go(func() error {
		if err := server.Run(ctx, c.Port); err != nil {
			return errors.Wrap(err, "failed to run web server")
		}
		return nil
	})
	g.Go(func() error {
		b.Start(ctx)
		return nil
	})
	return g.Wait()
}

// output formats of the define command
const (
	formatText     = "text"
	formatJSON     = "json"
	formatMarkdown = "markdown"
)

// DefineCommand looks a single word up and prints it
type DefineCommand struct {
	Format string `short:"f" long:"format" default:"text" choice:"text" choice:"json" choice:"markdown" description:"Output format"`
	Args   struct {
		Word string `positional-arg-name:"word" description:"Word to look up"`
	} `positional-args:"yes" required:"yes"`

	env *commandEnv
}

func (c *DefineCommand) Execute(args []string) error {
	controller := lookup.NewController(c.env.opts.client())
	state, err := controller.Submit(c.env.ctx, c.Args.Word)
	view := render.Derive(state)
	switch {
	case errors.Is(err, lookup.ErrEmptyWord):
		return err
	case view.NotFound():
		if view.Detail != "" {
			return fmt.Errorf("%q: %s", c.Args.Word, view.Detail)
		}
		return fmt.Errorf("no definitions found for %q", c.Args.Word)
	case err != nil:
		return errors.Wrap(err, "lookup failed")
	}

	if err := c.write(view); err != nil {
		return errors.Wrap(err, "failed to write definitions")
	}
	log.Debug().Str("word", view.Word).Str("lookup", state.LookupID).Msg("word defined")
	return nil
}

func (c *DefineCommand) write(view render.View) error {
	switch c.Format {
	case formatJSON:
		enc := json.NewEncoder(c.env.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	case formatMarkdown:
		return render.Markdown(c.env.stdout, view)
	}
	if _, err := fmt.Fprintln(c.env.stdout, render.Terminal(view, render.TerminalStyle{})); err != nil {
		return err
	}
	if view.Audio != "" {
		if _, err := fmt.Fprintf(c.env.stdout, "Audio: %s\n", view.Audio); err != nil {
			return err
		}
	}
	return nil
}

// Version information set at build time via ldflags
var (
	version = ""
	commit  = ""
)

// VersionCommand prints build information
type VersionCommand struct {
	env *commandEnv
}

func (c *VersionCommand) Execute(args []string) error {
	_, err := fmt.Fprintf(c.env.stdout, "word-lookup version %s\n  commit: %s\n", getVersion(), getCommit())
	return err
}

// getVersion returns version string.
// Priority: ldflags > debug.ReadBuildInfo > "(devel)"
func getVersion() string {
	if version != "" {
		return version
	}
	if buildInfo, ok := debug.ReadBuildInfo(); ok && buildInfo.Main.Version != "" {
		return buildInfo.Main.Version
	}
	return "(devel)"
}

// getCommit returns commit hash.
// Priority: ldflags > debug.ReadBuildInfo > "unknown"
func getCommit() string {
	if commit != "" {
		return commit
	}
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range buildInfo.Settings {
			if setting.Key == "vcs.revision" {
				if len(setting.Value) > 7 {
					return setting.Value[:7]
				}
				return setting.Value
			}
		}
	}
	return "unknown"
}
