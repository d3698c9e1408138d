package configcmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/cli/styles"
	"github.com/thenoetrevino/lista/internal/config"
)

// ConfigCmd returns the config parent command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	cmd.AddCommand(InitCmd())
	cmd.AddCommand(PathCmd())

	return cmd
}

// InitCmd returns the config init subcommand
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Long: `Write a config file holding the default settings so they can be edited.

Examples:
  # Write to $XDG_CONFIG_HOME/lista/config.yaml
  lista config init

  # Replace an existing file
  lista config init --force

  # Write somewhere else
  lista --config=./lista.yaml config init
`,
		RunE: runInit,
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (path only)")

	return cmd
}

// PathCmd returns the config path subcommand
func PathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolvePath()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
}

func resolvePath() (string, error) {
	if cli.ConfigPath != "" {
		return cli.ConfigPath, nil
	}
	return config.Path()
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	report := func(code string, err error, exit int) error {
		if fmtErr := formatter.Error(code, err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return cli.WithExitCode(err, exit)
	}

	path, err := resolvePath()
	if err != nil {
		return report("CONFIG_PATH_ERROR", err, cli.ExitError)
	}

	if _, err := os.Stat(path); err == nil && !force {
		return report("CONFIG_EXISTS",
			fmt.Errorf("config file %s already exists (use --force to overwrite)", path), cli.ExitUsage)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return report("CONFIG_PATH_ERROR", err, cli.ExitError)
	}

	if err := config.Default().SaveFile(path); err != nil {
		return report("CONFIG_WRITE_ERROR", err, cli.ExitError)
	}

	if quietMode {
		fmt.Println(path)
		return nil
	}
	if jsonOutput {
		return formatter.Success(map[string]any{"path": path})
	}

	fmt.Printf("%s Wrote config to %s\n", styles.SuccessStyle.Render("✓"), path)
	return nil
}
