// Copyright (c) 2024 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package cli implements the partial command, which resolves configuration
// against a schema described in YAML and explains where every value comes from.
package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nil-go/partial"
	"github.com/nil-go/partial/provider/env"
	"github.com/nil-go/partial/provider/file"
)

type rootFlags struct {
	schema       string
	files        []string
	envPrefix    string
	envDelimiter string
	sets         []string
	verbose      bool
}

// NewRootCommand creates the partial command with all its sub-commands.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}
	rootCmd := &cobra.Command{
		Use:   "partial",
		Short: "Resolve layered configuration against a schema",
		Long: `partial resolves configuration from files, environment variables and
--set overrides against a schema described in YAML.

Environment variable names are split into nested keys by --env-delimiter.
Fields whose names contain underscores need a different delimiter,
e.g. --env-delimiter __ loads APP_HTTP__DISPLAY_NAME as http.display_name.

Later sources take precedence over earlier ones: files in the given order,
then environment variables, then --set overrides. Schema defaults fill the rest.`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	rootCmd.PersistentFlags().StringVarP(&flags.schema, "schema", "s", "", "path of the schema file (YAML)")
	rootCmd.PersistentFlags().StringArrayVarP(&flags.files, "file", "f", nil, "configuration file (JSON or YAML), repeatable")
	rootCmd.PersistentFlags().StringVar(&flags.envPrefix, "env-prefix", "", "only load environment variables with this prefix")
	rootCmd.PersistentFlags().StringVar(&flags.envDelimiter, "env-delimiter", "_",
		"delimiter between nested keys in environment variable names, e.g. __ for fields with underscores")
	rootCmd.PersistentFlags().StringArrayVar(&flags.sets, "set", nil, "override a value with path=value, repeatable")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log loading details")
	_ = rootCmd.MarkPersistentFlagRequired("schema")

	rootCmd.AddCommand(
		newResolveCommand(flags),
		newExplainCommand(flags),
		newWatchCommand(flags),
	)

	return rootCmd
}

// config loads the schema and every source into a new Config.
func (f *rootFlags) config(cmd *cobra.Command) (*partial.Config, error) {
	schema, err := loadSchema(f.schema)
	if err != nil {
		return nil, err
	}

	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	config := partial.New(schema, partial.WithLogHandler(handler))

	loaders := make([]partial.Loader, 0, len(f.files)+2)
	for _, path := range f.files {
		loaders = append(loaders, file.New(path, file.WithLogger(slog.New(handler))))
	}
	if f.envPrefix != "" {
		opts := []env.Option{env.WithPrefix(f.envPrefix)}
		if f.envDelimiter != "" {
			opts = append(opts, env.WithDelimiter(f.envDelimiter))
		}
		loaders = append(loaders, env.New(opts...))
	}
	if len(f.sets) > 0 {
		loaders = append(loaders, setLoader(f.sets))
	}
	if err := config.Load(loaders...); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return config, nil
}

func newResolveCommand(flags *rootFlags) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := flags.config(cmd)
			if err != nil {
				return err
			}
			value, err := config.Resolve()
			if err != nil {
				var missing *partial.MissingValueError
				if errors.As(err, &missing) {
					return fmt.Errorf("%s: %w", missing.Path, errNoValue)
				}

				return err //nolint:wrapcheck
			}

			return write(cmd.OutOrStdout(), value, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format (yaml or json)")

	return cmd
}

func newExplainCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "explain [path]",
		Short: "Explain which source provides each value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := flags.config(cmd)
			if err != nil {
				return err
			}

			var path string
			if len(args) > 0 {
				path = args[0]
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), config.Explain(path))

			return err //nolint:wrapcheck
		},
	}
}

func newWatchCommand(flags *rootFlags) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the resolved configuration whenever a file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := flags.config(cmd)
			if err != nil {
				return err
			}
			value, err := config.Resolve()
			if err != nil {
				return err //nolint:wrapcheck
			}
			if err := write(cmd.OutOrStdout(), value, output); err != nil {
				return err
			}

			config.OnChange(func(value partial.Value) {
				if err := write(cmd.OutOrStdout(), value, output); err != nil {
					cmd.PrintErrln(err)
				}
			})

			return config.Watch(cmd.Context()) //nolint:wrapcheck
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format (yaml or json)")

	return cmd
}

var (
	errNoValue       = errors.New("no source provides a value and there is no default")
	errUnknownType   = errors.New("unknown field type")
	errUnknownFormat = errors.New("unknown output format")
	errInvalidSet    = errors.New("override must be path=value")
)
