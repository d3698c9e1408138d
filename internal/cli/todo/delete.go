package todo

import (
	"bufio"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lista/internal/cli/styles"
)

// DeleteCmd returns the todo delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a todo",
		Long: `Delete a todo by ID (requires confirmation unless --force, --quiet or --json).

If the delete fails after the todo was read, the todo as it was is printed
so it can be recreated.

Examples:
  # Delete with confirmation
  lista todo delete --id=1

  # Skip confirmation
  lista todo delete --id=1 --force
`,
		RunE: runDelete,
	}

	// Required flags
	cmd.Flags().Uint("id", 0, "Todo ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().Bool("force", false, "Skip confirmation")

	addOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, _ := cmd.Flags().GetUint("id")
	force, _ := cmd.Flags().GetBool("force")
	formatter := formatterFor(cmd)

	// Ask for confirmation unless force or machine output
	if !force && !formatter.Quiet && !formatter.JSON {
		fmt.Printf("Delete todo #%d? (y/N): ", id)
		response, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && response == "" {
			log.Printf("Error reading user input: %v", err)
		}
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	if err := cliInstance.App.TodoService.DeleteTodo(ctx, id); err != nil {
		return reportFailure(formatter, err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.Success(map[string]any{"id": id})
	}

	fmt.Printf("%s Todo %d deleted\n", styles.SuccessStyle.Render("✓"), id)
	return nil
}
