package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"usersapp/config"
	"usersapp/pkg/logger"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X usersapp/cmd.version=..."
var version = "dev"

// NewRootCommand builds the usersapp command reading answers from in and
// writing to out.
func NewRootCommand(in io.Reader, out io.Writer) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "usersapp",
		Short:         "👥 Manage an in-memory list of users",
		Long:          "usersapp is an interactive shell for keeping a list of users (name, age) for the length of a session.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}

			if err := logger.Init(&cfg.Log, cfg.IsDevelopment()); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer logger.Sync()

			app, err := NewBuilder(cfg).WithInput(in).WithOutput(out).Build()
			if err != nil {
				return err
			}
			return app.Run(cmd.Context())
		},
	}
	root.SetIn(in)
	root.SetOut(out)

	flags := root.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "config file (default: ./config.yaml or ./config/config.yaml)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-format", "", "log format: console, json")
	flags.String("log-output", "", "log output: stderr, stdout, file")
	flags.String("log-file", "", "log file path when --log-output=file")
	flags.Bool("no-color", false, "disable colored output")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})

	return root
}

// Execute runs the root command against the process's stdin and stdout.
func Execute() error {
	exitOnSignal()
	return NewRootCommand(os.Stdin, os.Stdout).ExecuteContext(context.Background())
}
