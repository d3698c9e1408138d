package todo

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/models"
)

// TodoCmd returns the todo parent command
func TodoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage todos",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

func formatterFor(cmd *cobra.Command) *cli.OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// openCLI resolves the CLI for cmd, reporting initialization failures
func openCLI(cmd *cobra.Command, formatter *cli.OutputFormatter) (*cli.CLI, error) {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		if fmtErr := formatter.Error(cli.CodeInitialization, err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return nil, cli.WithExitCode(err, cli.ExitError)
	}
	return cliInstance, nil
}

func closeCLI(cliInstance *cli.CLI) {
	if err := cliInstance.Close(); err != nil {
		slog.Error("Error closing CLI", "error", err)
	}
}

// reportFailure prints a command failure and tags it with its exit code
func reportFailure(formatter *cli.OutputFormatter, err error) error {
	code, exit := cli.Classify(err)
	if fmtErr := formatter.CommandError(code, err); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return cli.WithExitCode(err, exit)
}

// parseStatus accepts status text in any letter case
func parseStatus(s string) (models.Status, error) {
	for _, status := range models.Statuses {
		if strings.EqualFold(string(status), strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return models.ParseStatus(s)
}
