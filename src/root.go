package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iafilius/MooresLaw/src/dataset"
	"github.com/iafilius/MooresLaw/src/figure"
)

var Version = "develop"

// app is the state shared by the commands of one invocation.
type app struct {
	v      *viper.Viper
	log    zerolog.Logger
	stdout io.Writer
	stderr io.Writer
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: newViper(), log: zerolog.Nop(), stdout: stdout, stderr: stderr}

	cmd := &cobra.Command{
		Use:   "mooreslaw",
		Short: "Render transistor counts and storage capacity over time as a log-scale PNG",
		Long: "Renders two stacked log-scale charts (CPU transistor counts and storage capacity)\n" +
			"and writes them to a transparent PNG. Without flags the built-in data is drawn and\n" +
			"the file is written next to the program source as " + outputFileName + ".",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetCount("verbose")
			a.log = newLogger(a.stderr, a.v.GetBool("json-logs"), verbose)
			if err := readConfigFile(a.v, a.v.GetString("config"), a.log); err != nil {
				return err
			}
			traceConfig(a.v, a.log)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("config", "c", "", "Path to a config file (default ./mooreslaw.{toml,yaml,json})")
	pf.CountP("verbose", "v", "-v for debug logs (-vv for trace)")
	pf.Bool("json-logs", false, "Emit JSON log lines instead of console output")
	pf.StringP("data", "d", "", "Dataset file with transistors/storage lists (yaml, toml or json)")

	f := cmd.Flags()
	f.StringP("output", "o", "", "Output PNG path (default next to the program source)")
	f.StringP("locale", "l", "en", "Axis label locale (en, de)")
	f.Float64("dpi", 300, "Output resolution in dots per inch")
	f.Bool("annotate", false, "Label every point with its device name")
	f.String("caption", "", "Optional caption under the lower panel")

	for _, name := range []string{"config", "json-logs", "data"} {
		_ = a.v.BindPFlag(name, pf.Lookup(name))
	}
	// viper defaults win over unchanged flag defaults, so an unset --output
	// still resolves to the source-relative path
	for _, name := range []string{"output", "locale", "dpi", "annotate", "caption"} {
		_ = a.v.BindPFlag(name, f.Lookup(name))
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.AddCommand(newTableCommand(a))
	return cmd
}

// loadData returns the built-in tables, or the tables from the configured dataset file.
func (a *app) loadData() (dataset.Set, error) {
	path := a.v.GetString("data")
	if path == "" {
		return dataset.Builtin(), nil
	}
	a.log.Debug().Str("file", path).Msg("loading dataset file")
	return dataset.LoadFile(path)
}

func (a *app) render() error {
	cfg, err := resolveConfig(a.v)
	if err != nil {
		return err
	}
	data, err := a.loadData()
	if err != nil {
		return err
	}
	g := figure.NewGenerator()
	g.Style.DPI = cfg.DPI
	g.Labels = figure.LabelsFor(cfg.Locale)
	g.Data = data
	g.Annotate = cfg.Annotate
	g.Caption = cfg.Caption
	g.Logger = a.log
	_, err = g.Run(cfg.Output)
	return err
}

// run executes the command line with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		log := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).With().Timestamp().Logger()
		log.Error().Err(err).Msg("mooreslaw failed")
		return 1
	}
	return 0
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
