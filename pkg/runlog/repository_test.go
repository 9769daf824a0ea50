package runlog

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmanchev/payroll-advanced/internal/test_utils"
)

func TestRepositoryImpl_StoreAndGetRecent(t *testing.T) {
	// given
	db := test_utils.SetupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	first := Run{ID: uuid.New(), Year: 2023, Rows: 12, GeneratedAt: base}
	second := Run{ID: uuid.New(), Year: 2024, Rows: 12, GeneratedAt: base.Add(time.Minute)}
	third := Run{ID: uuid.New(), Year: 2025, Rows: 11, GeneratedAt: base.Add(2 * time.Minute)}

	// when
	require.NoError(t, repo.Store(ctx, first))
	require.NoError(t, repo.Store(ctx, second))
	require.NoError(t, repo.Store(ctx, third))

	// then
	runs, err := repo.GetRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// every column lands in the right field of the newest run
	assert.Equal(t, third.ID, runs[0].ID)
	assert.Equal(t, 2025, runs[0].Year)
	assert.Equal(t, 11, runs[0].Rows)
	assert.Equal(t, third.GeneratedAt.UnixMilli(), runs[0].GeneratedAt.UnixMilli())

	assert.Equal(t, second.ID, runs[1].ID)
	assert.Equal(t, 2024, runs[1].Year)
}

func TestRepositoryImpl_GetRecentOnEmptyLog(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewRepository(db)

	runs, err := repo.GetRecent(context.Background(), 10)

	require.NoError(t, err)
	assert.Empty(t, runs)
}
