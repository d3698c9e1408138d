package todo

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListCmd returns the todo list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List todos",
		Long:  "List every stored todo.",
		RunE:  runList,
	}

	addOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := formatterFor(cmd)

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	todos, err := cliInstance.App.TodoService.GetTodos(ctx)
	if err != nil {
		return reportFailure(formatter, err)
	}

	if formatter.Quiet {
		// Just print IDs
		for _, t := range todos {
			fmt.Printf("%d\n", t.ID)
		}
		return nil
	}

	return formatter.Success(todos)
}
