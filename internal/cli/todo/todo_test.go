package todo

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/models"
	"github.com/thenoetrevino/lista/internal/testutil"
	clitest "github.com/thenoetrevino/lista/internal/testutil/cli"
)

func TestAddTodo_Integration(t *testing.T) {
	app := clitest.SetupCLITest(t)

	tests := []struct {
		name         string
		flags        []string
		verifyOutput func(t *testing.T, output string)
	}{
		{
			name:  "Add todo with human output",
			flags: []string{"--title", "Buy milk", "--description", "2L"},
			verifyOutput: func(t *testing.T, output string) {
				assert.Contains(t, output, "Todo 'Buy milk' created")
			},
		},
		{
			name:  "Add todo with JSON output",
			flags: []string{"--title", "JSON todo", "--json"},
			verifyOutput: func(t *testing.T, output string) {
				result := testutil.ParseJSON(t, output)
				assert.Equal(t, true, result["success"])
				data := result["data"].(map[string]any)
				assert.Equal(t, "JSON todo", data["title"])
				assert.Equal(t, "", data["description"])
				assert.Equal(t, string(models.StatusIncomplete), data["status"])
				assert.NotZero(t, data["id"])
			},
		},
		{
			name:  "Add todo with quiet mode",
			flags: []string{"--title", "Quiet todo", "--quiet"},
			verifyOutput: func(t *testing.T, output string) {
				assert.Regexp(t, regexp.MustCompile(`^\d+$`), strings.TrimSpace(output))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := clitest.ExecuteCLICommand(t, app, AddCmd(), tt.flags)
			require.NoError(t, err)
			tt.verifyOutput(t, output)
		})
	}

	todos, err := app.TodoService.GetTodos(context.Background())
	require.NoError(t, err)
	assert.Len(t, todos, 3)
}

func TestAddTodo_DescriptionFromStdin(t *testing.T) {
	app := clitest.SetupCLITest(t)

	cmd := AddCmd()
	cmd.SetIn(strings.NewReader("from stdin"))
	output, err := clitest.ExecuteCLICommand(t, app, cmd, []string{"--title", "piped", "--description", "-", "--json"})
	require.NoError(t, err)

	data := testutil.ParseJSON(t, output)["data"].(map[string]any)
	assert.Equal(t, "from stdin", data["description"])
}

func TestAddTodo_RequiresTitle(t *testing.T) {
	app := clitest.SetupCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{"--description", "no title"})
	assert.Error(t, err)
}

func TestListTodos_Integration(t *testing.T) {
	app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
	require.NoError(t, err)
	result := testutil.ParseJSON(t, output)
	assert.Equal(t, []any{}, result["data"], "empty store lists as an empty array")

	first := clitest.CreateTestTodo(t, app, "first", "a")
	second := clitest.CreateTestTodo(t, app, "second", "")

	output, err = clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%d\n%d\n", first.ID, second.ID), output)

	output, err = clitest.ExecuteCLICommand(t, app, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "first")
	assert.Contains(t, output, "second")
}

func TestUpdateTodo_Integration(t *testing.T) {
	app := clitest.SetupCLITest(t)
	todo := clitest.CreateTestTodo(t, app, "Buy milk", "2L")

	output, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{
		"--id", fmt.Sprint(todo.ID),
		"--status", "complete",
		"--json",
	})
	require.NoError(t, err)

	data := testutil.ParseJSON(t, output)["data"].(map[string]any)
	assert.Equal(t, "Buy milk", data["title"], "blank title keeps stored value")
	assert.Equal(t, "2L", data["description"], "blank description keeps stored value")
	assert.Equal(t, string(models.StatusComplete), data["status"])

	output, err = clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{
		"--id", fmt.Sprint(todo.ID),
		"--title", "Buy oat milk",
		"--status", "Incomplete",
	})
	require.NoError(t, err)
	assert.Contains(t, output, "Buy oat milk")

	todos, err := app.TodoService.GetTodos(context.Background())
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, models.Todo{ID: todo.ID, Title: "Buy oat milk", Description: "2L", Status: models.StatusIncomplete}, *todos[0])
}

func TestUpdateTodo_InvalidStatus(t *testing.T) {
	app := clitest.SetupCLITest(t)
	todo := clitest.CreateTestTodo(t, app, "x", "")

	output, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{
		"--id", fmt.Sprint(todo.ID),
		"--status", "Archived",
		"--json",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidStatus)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))

	errData := testutil.ParseJSON(t, output)["error"].(map[string]any)
	assert.Equal(t, cli.CodeInvalidStatus, errData["code"])
}

func TestUpdateTodo_NotFound(t *testing.T) {
	app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{
		"--id", "999",
		"--status", "complete",
		"--json",
	})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))

	result := testutil.ParseJSON(t, output)
	assert.Equal(t, false, result["success"])
	errData := result["error"].(map[string]any)
	assert.Equal(t, cli.CodeNotFound, errData["code"])
	assert.Nil(t, errData["previous"], "no snapshot when the read failed")
}

func TestDeleteTodo_Integration(t *testing.T) {
	app := clitest.SetupCLITest(t)
	todo := clitest.CreateTestTodo(t, app, "doomed", "")

	output, err := clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", fmt.Sprint(todo.ID), "--force"})
	require.NoError(t, err)
	assert.Contains(t, output, fmt.Sprintf("Todo %d deleted", todo.ID))

	todos, err := app.TodoService.GetTodos(context.Background())
	require.NoError(t, err)
	assert.Empty(t, todos)

	// Deleting again is a not-found
	_, err = clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", fmt.Sprint(todo.ID), "--quiet"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestDeleteTodo_Cancelled(t *testing.T) {
	app := clitest.SetupCLITest(t)
	todo := clitest.CreateTestTodo(t, app, "kept", "")

	cmd := DeleteCmd()
	cmd.SetIn(strings.NewReader("n\n"))
	output, err := clitest.ExecuteCLICommand(t, app, cmd, []string{"--id", fmt.Sprint(todo.ID)})
	require.NoError(t, err)
	assert.Contains(t, output, "Cancelled")

	todos, err := app.TodoService.GetTodos(context.Background())
	require.NoError(t, err)
	assert.Len(t, todos, 1)
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    models.Status
		wantErr bool
	}{
		{"complete", models.StatusComplete, false},
		{"Complete", models.StatusComplete, false},
		{" INCOMPLETE ", models.StatusIncomplete, false},
		{"done", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseStatus(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
