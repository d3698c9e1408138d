package todo

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thenoetrevino/lista/internal/database"
	"github.com/thenoetrevino/lista/internal/models"
)

// mockRepo is a testify mock of database.TodoRepository
type mockRepo struct {
	mock.Mock
}

var _ database.TodoRepository = (*mockRepo)(nil)

func (m *mockRepo) Create(ctx context.Context, title, description string) (*models.Todo, error) {
	args := m.Called(ctx, title, description)
	todo, _ := args.Get(0).(*models.Todo)
	return todo, args.Error(1)
}

func (m *mockRepo) GetAll(ctx context.Context) ([]*models.Todo, error) {
	args := m.Called(ctx)
	todos, _ := args.Get(0).([]*models.Todo)
	return todos, args.Error(1)
}

func (m *mockRepo) GetByID(ctx context.Context, id uint) (*models.Todo, error) {
	args := m.Called(ctx, id)
	todo, _ := args.Get(0).(*models.Todo)
	return todo, args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, todo *models.Todo) error {
	return m.Called(ctx, todo).Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

// staticProvider always returns the same repository (or none)
type staticProvider struct {
	repo database.TodoRepository
}

func (p staticProvider) Repo() (database.TodoRepository, bool) {
	return p.repo, p.repo != nil
}
