package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/thenoetrevino/lista/internal/cli/styles"
	"github.com/thenoetrevino/lista/internal/models"
	todoservice "github.com/thenoetrevino/lista/internal/services/todo"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			fmt.Printf("%d\n", idGetter.GetID())
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	return f.writeError(code, message, suggestion, nil)
}

// CommandError outputs a todo command failure. Failed updates and deletes
// carry the record as it was before the attempt; it is printed so the caller
// can recover it.
func (f *OutputFormatter) CommandError(code string, err error) error {
	prev, _ := todoservice.PreviousState(err)
	return f.writeError(code, err.Error(), "", prev)
}

func (f *OutputFormatter) writeError(code, message, suggestion string, previous *models.Todo) error {
	if f.JSON {
		errData := map[string]any{
			"code":     code,
			"message":  message,
			"previous": previous,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "%s %s\n", styles.ErrorStyle.Render("Error:"), message)
	if previous != nil {
		fmt.Fprintf(os.Stderr, "Previous state: %s\n", styles.RenderTodoLine(previous))
	}
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "Suggestion: %s\n", suggestion)
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	switch v := data.(type) {
	case *models.Todo:
		fmt.Println(styles.RenderTodoLine(v))
	case []*models.Todo:
		fmt.Println(styles.RenderTodoList(v))
	default:
		fmt.Printf("%+v\n", data)
	}
	return nil
}
