package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// statements collects the SQL a dry-run session would have sent, with the
// bind values inlined.
type statements struct {
	sql []string
}

func (s *statements) capture(tx *gorm.DB) {
	s.sql = append(s.sql, tx.Dialector.Explain(tx.Statement.SQL.String(), tx.Statement.Vars...))
}

func (s *statements) last(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, s.sql, "no statement was built")
	return s.sql[len(s.sql)-1]
}

func registerCapture(t *testing.T, db *gorm.DB, s *statements) {
	t.Helper()
	cb := db.Callback()
	require.NoError(t, cb.Create().After("gorm:create").Register("test:capture_create", s.capture))
	require.NoError(t, cb.Query().After("gorm:query").Register("test:capture_query", s.capture))
	require.NoError(t, cb.Update().After("gorm:update").Register("test:capture_update", s.capture))
	require.NoError(t, cb.Delete().After("gorm:delete").Register("test:capture_delete", s.capture))
}

// newDryRunDB builds statements for the postgres dialect without a server.
func newDryRunDB(t *testing.T) (*gorm.DB, *statements) {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=fooding dbname=fooding sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	s := &statements{}
	registerCapture(t, db, s)
	return db, s
}
