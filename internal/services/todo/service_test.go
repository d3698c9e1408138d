package todo

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/lista/internal/database"
	"github.com/thenoetrevino/lista/internal/models"
)

// setupService returns a service backed by a real SQLite file in a temp dir
func setupService(t *testing.T) (Service, *database.TodoRepo) {
	t.Helper()
	db, err := database.Open(context.Background(), t.TempDir(), database.DefaultOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := database.NewTodoRepo(db)
	return NewService(staticProvider{repo: repo}, nil), repo
}

// ============================================================================
// Unavailable state
// ============================================================================

func TestService_NoManagedState(t *testing.T) {
	ctx := context.Background()
	svc := NewService(staticProvider{}, nil)

	_, err := svc.CreateTodo(ctx, "A", "B")
	assert.ErrorIs(t, err, ErrNoManagedState)

	_, err = svc.GetTodos(ctx)
	assert.ErrorIs(t, err, ErrNoManagedState)

	_, err = svc.UpdateTodo(ctx, models.Todo{ID: 1, Status: models.StatusComplete})
	assert.ErrorIs(t, err, ErrNoManagedState)

	err = svc.DeleteTodo(ctx, 1)
	assert.ErrorIs(t, err, ErrNoManagedState)

	var cmdErr *CommandError
	assert.False(t, errors.As(err, &cmdErr), "unavailable state must not look like a store error")
}

// ============================================================================
// Create / List
// ============================================================================

func TestService_CreateRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	created, err := svc.CreateTodo(ctx, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, "A", created.Title)
	assert.Equal(t, "B", created.Description)
	assert.Equal(t, models.StatusIncomplete, created.Status)

	todos, err := svc.GetTodos(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, created, todos[0])

	again, err := svc.CreateTodo(ctx, "A", "B")
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, again.ID)
}

func TestService_GetTodosEmpty(t *testing.T) {
	svc, _ := setupService(t)

	todos, err := svc.GetTodos(context.Background())
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestService_CreateStoreFailure(t *testing.T) {
	repo := new(mockRepo)
	repo.On("Create", mock.Anything, "A", "B").Return(nil, errors.New("disk full"))
	svc := NewService(staticProvider{repo: repo}, nil)

	_, err := svc.CreateTodo(context.Background(), "A", "B")
	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "Error saving todo: disk full", cmdErr.Message)
	assert.Nil(t, cmdErr.Previous)
	repo.AssertExpectations(t)
}

func TestService_GetTodosStoreFailure(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetAll", mock.Anything).Return(nil, models.ErrInvalidStatus)
	svc := NewService(staticProvider{repo: repo}, nil)

	_, err := svc.GetTodos(context.Background())
	assert.ErrorIs(t, err, models.ErrInvalidStatus)
	assert.Contains(t, err.Error(), "Failed to get todos")
}

// ============================================================================
// Update
// ============================================================================

func TestService_UpdateMergePolicy(t *testing.T) {
	ctx := context.Background()
	svc, repo := setupService(t)
	stored, err := repo.Create(ctx, "X", "Y")
	require.NoError(t, err)

	tests := []struct {
		name string
		req  models.Todo
		want models.Todo
	}{
		{
			name: "blank title kept, description replaced, status overwritten",
			req:  models.Todo{Title: "", Description: "Z", Status: models.StatusComplete},
			want: models.Todo{Title: "X", Description: "Z", Status: models.StatusComplete},
		},
		{
			name: "whitespace-only fields keep stored values",
			req:  models.Todo{Title: "   ", Description: "\t\n", Status: models.StatusIncomplete},
			want: models.Todo{Title: "X", Description: "Z", Status: models.StatusIncomplete},
		},
		{
			name: "non-blank fields replace stored values",
			req:  models.Todo{Title: "X2", Description: "Y2", Status: models.StatusComplete},
			want: models.Todo{Title: "X2", Description: "Y2", Status: models.StatusComplete},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.ID = stored.ID
			tt.want.ID = stored.ID

			got, err := svc.UpdateTodo(ctx, tt.req)
			require.NoError(t, err)
			assert.Equal(t, &tt.want, got)

			persisted, err := repo.GetByID(ctx, stored.ID)
			require.NoError(t, err)
			assert.Equal(t, &tt.want, persisted)
		})
	}
}

func TestService_UpdateNotFoundHasNoSnapshot(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.UpdateTodo(context.Background(), models.Todo{ID: 42, Title: "x", Status: models.StatusComplete})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTodoNotFound)

	_, ok := PreviousState(err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "Failed to fetch previous todo state (possible data loss)")
}

func TestService_UpdateWriteFailureCarriesSnapshot(t *testing.T) {
	prev := &models.Todo{ID: 3, Title: "old", Description: "desc", Status: models.StatusIncomplete}
	repo := new(mockRepo)
	repo.On("GetByID", mock.Anything, uint(3)).Return(prev, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(td *models.Todo) bool {
		return td.ID == 3 && td.Title == "new" && td.Description == "desc" && td.Status == models.StatusComplete
	})).Return(errors.New("database is locked"))
	svc := NewService(staticProvider{repo: repo}, nil)

	_, err := svc.UpdateTodo(context.Background(), models.Todo{ID: 3, Title: "new", Status: models.StatusComplete})
	require.Error(t, err)
	assert.Equal(t, "Failed to update todo: database is locked", err.Error())

	snapshot, ok := PreviousState(err)
	require.True(t, ok)
	assert.Equal(t, prev, snapshot)
	repo.AssertExpectations(t)
}

func TestService_UpdateReadFailureHasNoSnapshot(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetByID", mock.Anything, uint(5)).Return(nil, errors.New("malformed row"))
	svc := NewService(staticProvider{repo: repo}, nil)

	_, err := svc.UpdateTodo(context.Background(), models.Todo{ID: 5, Status: models.StatusComplete})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTodoNotFound)

	_, ok := PreviousState(err)
	assert.False(t, ok)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

// ============================================================================
// Delete
// ============================================================================

func TestService_DeleteIsTerminal(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	keep, err := svc.CreateTodo(ctx, "keep", "")
	require.NoError(t, err)
	drop, err := svc.CreateTodo(ctx, "drop", "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTodo(ctx, drop.ID))

	todos, err := svc.GetTodos(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, keep.ID, todos[0].ID)

	err = svc.DeleteTodo(ctx, drop.ID)
	assert.ErrorIs(t, err, ErrTodoNotFound)
	_, ok := PreviousState(err)
	assert.False(t, ok)

	_, err = svc.UpdateTodo(ctx, models.Todo{ID: drop.ID, Title: "back", Status: models.StatusComplete})
	assert.ErrorIs(t, err, ErrTodoNotFound)
}

func TestService_DeleteWriteFailureCarriesSnapshot(t *testing.T) {
	prev := &models.Todo{ID: 9, Title: "t", Description: "d", Status: models.StatusComplete}
	repo := new(mockRepo)
	repo.On("GetByID", mock.Anything, uint(9)).Return(prev, nil)
	repo.On("Delete", mock.Anything, uint(9)).Return(errors.New("readonly database"))
	svc := NewService(staticProvider{repo: repo}, nil)

	err := svc.DeleteTodo(context.Background(), 9)
	require.Error(t, err)
	assert.Equal(t, "Failed to delete todo: readonly database", err.Error())

	snapshot, ok := PreviousState(err)
	require.True(t, ok)
	assert.Equal(t, prev, snapshot)
}

// ============================================================================
// Concurrency
// ============================================================================

func TestService_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	const n = 20
	var wg sync.WaitGroup
	ids := make(chan uint, n)
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			todo, err := svc.CreateTodo(ctx, "concurrent", "")
			if err != nil {
				errs <- err
				return
			}
			ids <- todo.ID
		}()
	}
	wg.Wait()
	close(ids)
	close(errs)

	for err := range errs {
		t.Errorf("concurrent create failed: %v", err)
	}

	seen := make(map[uint]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}

	todos, err := svc.GetTodos(ctx)
	require.NoError(t, err)
	assert.Len(t, todos, n)
}
