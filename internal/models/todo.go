package models

// Todo represents a single entry in the todo list
type Todo struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      Status `json:"status"`
}

// GetID returns the todo ID (used by quiet CLI output)
func (t *Todo) GetID() int {
	return int(t.ID)
}
