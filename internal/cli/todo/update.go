package todo

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/cli/styles"
	"github.com/thenoetrevino/lista/internal/models"
)

// UpdateCmd returns the todo update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a todo",
		Long: `Update a todo's title, description and status.

A blank --title or --description keeps the stored value. --status always
replaces the stored status.

Examples:
  # Mark a todo complete
  lista todo update --id=3 --status=complete

  # Rename it and reopen it
  lista todo update --id=3 --title="Buy oat milk" --status=incomplete --json
`,
		RunE: runUpdate,
	}

	// Required flags
	cmd.Flags().Uint("id", 0, "Todo ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().String("status", "", "Status: incomplete or complete (required)")
	if err := cmd.MarkFlagRequired("status"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("title", "", "New title (blank keeps current)")
	cmd.Flags().String("description", "", "New description (blank keeps current)")

	addOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, _ := cmd.Flags().GetUint("id")
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	statusText, _ := cmd.Flags().GetString("status")
	formatter := formatterFor(cmd)

	status, err := parseStatus(statusText)
	if err != nil {
		if fmtErr := formatter.ErrorWithSuggestion(cli.CodeInvalidStatus, err.Error(),
			fmt.Sprintf("Use one of: %s, %s", models.StatusIncomplete, models.StatusComplete)); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return cli.WithExitCode(err, cli.ExitValidation)
	}

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	updated, err := cliInstance.App.TodoService.UpdateTodo(ctx, models.Todo{
		ID:          id,
		Title:       title,
		Description: description,
		Status:      status,
	})
	if err != nil {
		return reportFailure(formatter, err)
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(updated)
	}

	fmt.Printf("%s Todo %d updated\n", styles.SuccessStyle.Render("✓"), updated.ID)
	fmt.Println("  " + styles.RenderTodoLine(updated))
	return nil
}
