// Package commands implements the CLI commands for reach.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/reach/internal/adapters/telemetry"
	"go.trai.ch/reach/internal/app"
	"go.trai.ch/reach/internal/build"
)

// CLI represents the command line interface for reach.
type CLI struct {
	app      Application
	rootCmd  *cobra.Command
	jsonLog  func(enable bool)
	shutdown telemetry.ShutdownFunc
}

// Application represents the application logic interface.
type Application interface {
	Types(ctx context.Context, opts app.Options, w io.Writer) error
	Unused(ctx context.Context, opts app.UnusedOptions, w io.Writer) error
	Prune(ctx context.Context, opts app.Options, w io.Writer) error
	Watch(ctx context.Context, opts app.Options, w io.Writer) error
	Clean(ctx context.Context, opts app.CleanOptions) error
}

// Option configures a CLI.
type Option func(*CLI)

// WithJSONLog registers the hook called with the value of --json-log.
func WithJSONLog(fn func(enable bool)) Option {
	return func(c *CLI) {
		c.jsonLog = fn
	}
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "reach",
		Short:         "Find the GraphQL types reachable from your schema roots",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Path to reach.yaml or reach.toml (default: discovered in --dir)")
	flags.StringP("dir", "C", "", "Working directory")
	flags.StringP("format", "f", "", "Output format: text or json (default: from config)")
	flags.BoolP("no-cache", "n", false, "Ignore stored reports and recompute")
	flags.StringSlice("retain", nil, "Type names to treat as reachable")
	flags.Bool("trace", false, "Print OpenTelemetry spans to stderr")
	flags.Bool("json-log", false, "Write logs as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentPreRunE = c.setup

	rootCmd.AddCommand(c.newTypesCmd())
	rootCmd.AddCommand(c.newUnusedCmd())
	rootCmd.AddCommand(c.newPruneCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	err := c.rootCmd.Execute()
	if c.shutdown != nil {
		_ = c.shutdown(context.WithoutCancel(ctx))
		c.shutdown = nil
	}
	return err
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	if jsonLog, _ := cmd.Flags().GetBool("json-log"); jsonLog && c.jsonLog != nil {
		c.jsonLog(true)
	}

	if trace, _ := cmd.Flags().GetBool("trace"); trace {
		shutdown, err := telemetry.Setup(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		c.shutdown = shutdown
	}
	return nil
}

// options collects the analysis flags shared by every schema command.
func options(cmd *cobra.Command, args []string) app.Options {
	flags := cmd.Flags()
	dir, _ := flags.GetString("dir")
	configPath, _ := flags.GetString("config")
	format, _ := flags.GetString("format")
	noCache, _ := flags.GetBool("no-cache")
	retain, _ := flags.GetStringSlice("retain")

	return app.Options{
		Dir:        dir,
		ConfigPath: configPath,
		Inputs:     args,
		Retain:     retain,
		Format:     format,
		NoCache:    noCache,
	}
}
