package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/cli/configcmd"
	"github.com/thenoetrevino/lista/internal/cli/todo"
)

var rootCmd = &cobra.Command{
	Use:   "lista",
	Short: "Lista - a persistent todo list",
	Long: `Lista keeps a todo list in a local SQLite store.

The store lives in $LISTA_DATA_DIR (default: $XDG_DATA_HOME/lista) and is
created on first use.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cli.ConfigPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/lista/config.yaml)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return cli.WithExitCode(err, cli.ExitUsage)
	})

	rootCmd.AddCommand(todo.TodoCmd())
	rootCmd.AddCommand(configcmd.ConfigCmd())
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
