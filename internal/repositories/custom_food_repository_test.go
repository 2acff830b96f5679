package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "milk", escapeLike("milk"))
	assert.Equal(t, `50\%\_milk`, escapeLike("50%_milk"))
	assert.Equal(t, `a\\b`, escapeLike(`a\b`))
}

func TestCustomFoodRepository_SearchByDescription(t *testing.T) {
	db, stmts := newDryRunDB(t)

	_, err := NewCustomFoodRepository(db).SearchByDescription(context.Background(), "ann@example.com", "50%_milk")

	require.NoError(t, err)
	sql := stmts.last(t)
	assert.Contains(t, sql, `FROM "custom_foods"`)
	assert.Contains(t, sql, `owner_email = 'ann@example.com' AND description ILIKE '%50\%\_milk%'`)
	assert.Contains(t, sql, "ORDER BY created_at, id")
}
