package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Status Tests
// ============================================================================

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    Status
		wantErr bool
	}{
		{"Incomplete", StatusIncomplete, false},
		{"Complete", StatusComplete, false},
		{"complete", "", true},
		{"Done", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatus_Scan(t *testing.T) {
	var s Status

	require.NoError(t, s.Scan("Complete"))
	assert.Equal(t, StatusComplete, s)

	require.NoError(t, s.Scan([]byte("Incomplete")))
	assert.Equal(t, StatusIncomplete, s)

	assert.ErrorIs(t, s.Scan("garbage"), ErrInvalidStatus)
	assert.ErrorIs(t, s.Scan(nil), ErrInvalidStatus)
	assert.ErrorIs(t, s.Scan(int64(1)), ErrInvalidStatus)
}

func TestStatus_Value(t *testing.T) {
	v, err := StatusComplete.Value()
	require.NoError(t, err)
	assert.Equal(t, "Complete", v)

	_, err = Status("Pending").Value()
	assert.True(t, errors.Is(err, ErrInvalidStatus))
}

// ============================================================================
// Todo JSON Tests
// ============================================================================

func TestTodo_JSONShape(t *testing.T) {
	todo := Todo{ID: 7, Title: "A", Description: "B", Status: StatusIncomplete}

	data, err := json.Marshal(todo)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"title":"A","description":"B","status":"Incomplete"}`, string(data))
}

func TestTodo_UnmarshalRejectsUnknownStatus(t *testing.T) {
	var todo Todo
	err := json.Unmarshal([]byte(`{"id":1,"title":"","description":"","status":"Archived"}`), &todo)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
