package companies

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esgtracker/internal/adapters/sqlite"
	"esgtracker/internal/domain"
)

func TestListNewestFirst(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "esg.db"), 0)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, db.Migrate(ctx, "up"))

	s := New(db)
	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	for _, email := range []string{"first@acme.com", "second@acme.com"} {
		_, err := db.CreateCompany(ctx, domain.NewCompany{Name: "Acme", Email: email, PasswordHash: "x"})
		require.NoError(t, err)
	}

	list, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second@acme.com", list[0].Email)
}
