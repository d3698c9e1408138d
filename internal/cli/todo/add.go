package todo

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/cli/styles"
)

// AddCmd returns the todo add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new todo",
		Long: `Add a new todo. New todos start out Incomplete.

Examples:
  # Simple todo (human-readable output)
  lista todo add --title="Buy milk"

  # JSON output for agents
  lista todo add --title="Buy milk" --description="2L" --json

  # Quiet mode for bash capture
  TODO_ID=$(lista todo add --title="Buy milk" --quiet)

  # Description from stdin
  echo "long notes" | lista todo add --title="Write report" --description=-
`,
		RunE: runAdd,
	}

	// Required flags
	cmd.Flags().String("title", "", "Todo title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("description", "", "Todo description (use - for stdin)")

	addOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	formatter := formatterFor(cmd)

	// Handle description from stdin
	if description == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			if fmtErr := formatter.Error("STDIN_READ_ERROR", err.Error()); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			return cli.WithExitCode(err, cli.ExitDataErr)
		}
		description = string(data)
	}

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	todo, err := cliInstance.App.TodoService.CreateTodo(ctx, title, description)
	if err != nil {
		return reportFailure(formatter, err)
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(todo)
	}

	// Human-readable output
	fmt.Printf("%s Todo '%s' created (ID: %d)\n", styles.SuccessStyle.Render("✓"), todo.Title, todo.ID)
	return nil
}
