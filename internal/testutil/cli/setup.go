package cli

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/lista/internal/app"
	"github.com/thenoetrevino/lista/internal/models"
)

// SetupCLITest boots an App against a fresh store in a temporary directory.
// This lives apart from testutil so the CLI package, which reads
// testutil.TestAppKey, does not link the test helpers.
func SetupCLITest(t *testing.T) *app.App {
	t.Helper()

	a := app.New(app.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	status, err := a.Boot(ctx, t.TempDir())
	require.NoError(t, err)
	require.True(t, status.Ready(), "store failed to initialize: %s", status.Status)

	t.Cleanup(func() {
		_ = a.Close()
	})

	return a
}

// CreateTestTodo inserts a todo through the service layer
func CreateTestTodo(t *testing.T, a *app.App, title, description string) *models.Todo {
	t.Helper()
	todo, err := a.TodoService.CreateTodo(context.Background(), title, description)
	require.NoError(t, err)
	return todo
}
