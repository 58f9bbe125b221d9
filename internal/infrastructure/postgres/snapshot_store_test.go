package postgres

import (
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wellcomputer-pos/internal/application/dto"
	"github.com/jhoicas/wellcomputer-pos/internal/infrastructure/memory"
	"github.com/jhoicas/wellcomputer-pos/pkg/config"
)

var fixedNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func seedSnapshot() *dto.Snapshot {
	return &dto.Snapshot{
		Version:    dto.SnapshotVersion,
		Timestamp:  fixedNow,
		ExportedBy: "Super Admin",
		Data:       memory.SeedDataset(fixedNow),
	}
}

func TestNewSnapshotRow(t *testing.T) {
	snap := seedSnapshot()

	row, err := newSnapshotRow("id-1", snap)
	require.NoError(t, err)
	assert.Equal(t, "id-1", row.ID)
	assert.Equal(t, "1.2", row.Version)
	assert.Equal(t, len(snap.Data.Products), row.Products)
	assert.Equal(t, 2, row.Transactions)
	assert.Equal(t, "42500000", row.TotalRevenue.String())

	var back dto.Snapshot
	require.NoError(t, json.Unmarshal(row.Payload, &back))
	assert.Equal(t, snap.Data, back.Data)

	info := row.info()
	assert.Equal(t, dto.NewSnapshotInfo("id-1", snap), info)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("timeout")))
}

// Integración: solo corre con TEST_DATABASE_URL apuntando a una base descartable.
func TestSnapshotStore_Integracion(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := t.Context()

	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	defer pool.Close()

	store := NewSnapshotStore(pool, zerolog.Nop())
	require.NoError(t, store.EnsureSchema(ctx))
	_, err = pool.Exec(ctx, `TRUNCATE pos_snapshots`)
	require.NoError(t, err)

	latest, err := store.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest)

	info, err := store.Save(ctx, seedSnapshot())
	require.NoError(t, err)
	assert.Equal(t, "42500000", info.TotalRevenue.String())

	latest, err = store.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, seedSnapshot().Data, latest.Data)

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, info.ID, list[0].ID)
}
