package database

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNullStringToString(t *testing.T) {
	assert.Equal(t, "hello", NullStringToString(sql.NullString{String: "hello", Valid: true}))
	assert.Equal(t, "", NullStringToString(sql.NullString{String: "ignored", Valid: false}))
	assert.Equal(t, "", NullStringToString(sql.NullString{}))
}
