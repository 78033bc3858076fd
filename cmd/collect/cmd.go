package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hasbyte1/go-typed-collections/collections"
	"github.com/hasbyte1/go-typed-collections/internal/config"
	"github.com/hasbyte1/go-typed-collections/internal/logging"
)

// cli carries the state shared by the subcommands of one NewCLI tree.
type cli struct {
	conf       config.Config
	configFile string
}

// NewCLI builds the collect command tree.
func NewCLI() *cobra.Command {
	app := &cli{conf: config.NewConfig()}

	rootCmd := &cobra.Command{
		Use:   "collect",
		Short: "Apply collection operations to JSON documents",
		Long: `Load a JSON array or object into an ordered text collection, apply one
operation and print the result as JSON. Arrays become sequential keys,
object keys are kept in document order.`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceErrors:     true,
		PersistentPreRunE: app.setup,
	}

	config.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().StringVarP(&app.configFile, "conf", "f", "", "Config file (yaml, json or toml)")

	cobra.EnableCommandSorting = false
	for _, op := range operations() {
		rootCmd.AddCommand(app.command(op))
	}
	return rootCmd
}

func (app *cli) setup(cmd *cobra.Command, _ []string) error {
	// Usage is only useful for flag and argument errors.
	cmd.SilenceUsage = true

	conf, err := config.Load(viper.New(), cmd.Flags(), app.configFile)
	if err != nil {
		return err
	}
	app.conf = conf

	logging.LogLevel = conf.LogLevel
	logging.LogJSON = conf.LogJSON
	logging.ConfigureLogger()
	return nil
}

// operation is one subcommand. run receives the loaded collection and
// returns what to print: a collection, or any value jsoniter can encode.
type operation struct {
	use   string
	short string
	args  cobra.PositionalArgs
	run   func(app *cli, c *collections.Collection[string], args []string) (any, error)
}

func (app *cli) command(op operation) *cobra.Command {
	return &cobra.Command{
		Use:   op.use,
		Short: op.short,
		Args:  op.args,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readDocument(cmd.InOrStdin(), app.conf.Input)
			if err != nil {
				return err
			}
			if data, err = descend(data, app.conf.Path); err != nil {
				return err
			}
			c, err := loadStrings(data, app.options()...)
			if err != nil {
				return err
			}
			slog.Debug("Loaded collection",
				slog.String("operation", cmd.Name()),
				slog.Int("entries", c.Count()),
			)

			result, err := op.run(app, c, args)
			if err != nil {
				return err
			}
			out, err := app.encode(result)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func (app *cli) encode(result any) (string, error) {
	if c, ok := result.(*collections.Collection[string]); ok {
		return c.ToJSON(app.conf.JSONOptions())
	}
	api := jsoniter.Config{EscapeHTML: app.conf.EscapeHTML}.Froze()
	if app.conf.Pretty {
		return marshalIndent(api, result, app.conf.Indent)
	}
	return api.MarshalToString(result)
}

func marshalIndent(api jsoniter.API, v any, indent int) (string, error) {
	if indent <= 0 {
		indent = 4
	}
	b, err := api.MarshalIndent(v, "", strings.Repeat(" ", indent))
	return string(b), err
}

// loadOther reads a second document for merge and combine.
func (app *cli) loadOther(name string) (*collections.Collection[any], error) {
	data, err := readDocument(strings.NewReader(""), name)
	if err != nil {
		return nil, err
	}
	return collections.FromJSON[any](data)
}

// options returns the collection options selected by the configuration.
func (app *cli) options() []collections.Option[string] {
	opts := []collections.Option[string]{collections.WithLogger[string](slog.Default())}
	if app.conf.Seed != 0 {
		r := rand.New(rand.NewPCG(app.conf.Seed, app.conf.Seed))
		opts = append(opts, collections.WithRand[string](r))
	}
	return opts
}
