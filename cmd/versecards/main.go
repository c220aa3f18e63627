// Command versecards builds, stores and reviews Bible verse flashcard sets.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/FocuswithJustin/VerseCards/core/catalog"
	"github.com/FocuswithJustin/VerseCards/core/span"
	"github.com/FocuswithJustin/VerseCards/core/sqlite"
	"github.com/FocuswithJustin/VerseCards/core/verse"
	"github.com/FocuswithJustin/VerseCards/internal/config"
	"github.com/FocuswithJustin/VerseCards/internal/logging"
	"github.com/FocuswithJustin/VerseCards/internal/store"
)

const version = "0.1.0"

// CLI defines the command-line interface for versecards.
type CLI struct {
	// Global flags
	ConfigFile string `name:"config" short:"c" help:"YAML config file" type:"path" default:"versecards.yaml"`
	DB         string `name:"db" help:"SQLite database path (overrides config)" type:"path"`
	LogLevel   string `name:"log-level" help:"Log level: debug, info, warn, error"`
	LogFormat  string `name:"log-format" help:"Log format: text, json"`

	Books    BooksCmd    `cmd:"" help:"List the books of the configured catalog"`
	Describe DescribeCmd `cmd:"" help:"Compress verse numbers into a label"`
	Parse    ParseCmd    `cmd:"" help:"Parse and validate references"`
	Select   SelectCmd   `cmd:"" help:"Build a set interactively, chapter by chapter"`
	Set      SetGroup    `cmd:"" help:"Flashcard set operations"`
	Review   ReviewCmd   `cmd:"" help:"Review a set one card at a time"`
	Settings SettingsCmd `cmd:"" help:"Print the effective configuration"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// app carries what every command needs once flags and config are resolved.
type app struct {
	ctx context.Context
	cfg *config.Config
	cat *catalog.Versification
	in  io.Reader
	out io.Writer
}

func newApp(cli *CLI, in io.Reader, out io.Writer) (*app, error) {
	cfg, err := config.Load(cli.ConfigFile)
	if err != nil {
		return nil, err
	}
	if cli.DB != "" {
		cfg.Database = cli.DB
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	if cli.LogFormat != "" {
		cfg.LogFormat = cli.LogFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.InitLogging(); err != nil {
		return nil, err
	}
	cat, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}

	ctx := logging.WithSessionID(context.Background(), uuid.NewString())
	logging.DebugContext(ctx, "configuration loaded",
		"config", cli.ConfigFile,
		"database", cfg.Database,
		"versification", cat.ID)

	return &app{
		ctx: ctx,
		cfg: cfg,
		cat: cat,
		in:  in,
		out: out,
	}, nil
}

func (a *app) openStore() (*store.Store, error) {
	return store.Open(a.ctx, a.cfg.Database)
}

// openStoreReadOnly is openStore for commands that never write.
func (a *app) openStoreReadOnly() (*store.Store, error) {
	return store.OpenReadOnly(a.ctx, a.cfg.Database)
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// BooksCmd lists catalog books.
type BooksCmd struct{}

func (c *BooksCmd) Run(a *app) error {
	for _, b := range a.cat.Books() {
		a.printf("%-16s %-6s %3d chapters\n", b.Name, b.OSIS, len(b.Chapters))
	}
	return nil
}

// DescribeCmd prints the compressed label for a list of verse numbers.
type DescribeCmd struct {
	Numbers []string `arg:"" optional:"" help:"Verse numbers (space or comma separated)"`
}

func (c *DescribeCmd) Run(a *app) error {
	var nums []int
	for _, arg := range c.Numbers {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			n, err := strconv.Atoi(field)
			if err != nil {
				return fmt.Errorf("not a verse number: %q", field)
			}
			nums = append(nums, n)
		}
	}
	a.printf("%s\n", span.Describe(nums))
	return nil
}

// ParseCmd parses references such as "John 3:16-18; Ps 23".
type ParseCmd struct {
	Refs []string `arg:"" help:"References; separate passages with semicolons"`
}

func (c *ParseCmd) Run(a *app) error {
	passages, err := verse.ParseList(strings.Join(c.Refs, " "), a.cat)
	if err != nil {
		return err
	}
	for _, p := range passages {
		a.printf("%s (%d verses)\n", p, len(p.Verses))
	}
	return nil
}

// SettingsCmd prints the resolved configuration as YAML.
type SettingsCmd struct{}

func (c *SettingsCmd) Run(a *app) error {
	data, err := a.cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = a.out.Write(data)
	return err
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(a *app) error {
	a.printf("versecards %s\n", version)
	a.printf("sqlite driver: %s\n", sqlite.GetInfo())
	a.printf("versification: %s (%d books)\n", a.cat.ID, len(a.cat.Books()))
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("versecards"),
		kong.Description("VerseCards - Bible verse flashcard sets"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	a, err := newApp(&cli, os.Stdin, os.Stdout)
	ctx.FatalIfErrorf(err)
	if err := ctx.Run(a); err != nil {
		logging.ErrorContext(a.ctx, "command failed", "command", ctx.Command(), "error", err)
		ctx.FatalIfErrorf(err)
	}
}
