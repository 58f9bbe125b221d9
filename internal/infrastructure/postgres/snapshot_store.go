package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/wellcomputer-pos/internal/application/dto"
	"github.com/jhoicas/wellcomputer-pos/internal/application/ports"
	"github.com/jhoicas/wellcomputer-pos/internal/domain"
)

var _ ports.SnapshotStore = (*SnapshotStore)(nil)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS pos_snapshots (
    id            TEXT PRIMARY KEY,
    version       TEXT           NOT NULL,
    exported_by   TEXT           NOT NULL,
    taken_at      TIMESTAMPTZ    NOT NULL,
    products      INTEGER        NOT NULL,
    transactions  INTEGER        NOT NULL,
    total_revenue NUMERIC(20, 0) NOT NULL,
    payload       JSONB          NOT NULL,
    created_at    TIMESTAMPTZ    NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_pos_snapshots_taken_at ON pos_snapshots (taken_at DESC);`

// SnapshotStore archivo de backups en PostgreSQL: el documento completo en jsonb
// más columnas de resumen para listar sin deserializar.
type SnapshotStore struct {
	pool *pgxpool.Pool
	tx   *TxRunner
	log  zerolog.Logger
}

// NewSnapshotStore construye el adaptador. Llamar EnsureSchema antes del primer uso.
func NewSnapshotStore(pool *pgxpool.Pool, log zerolog.Logger) *SnapshotStore {
	return &SnapshotStore{pool: pool, tx: NewTxRunner(pool), log: log}
}

// EnsureSchema crea la tabla si no existe.
func (s *SnapshotStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("snapshots.EnsureSchema: %w", err)
	}
	return nil
}

// snapshotRow fila tal como se inserta.
type snapshotRow struct {
	ID           string
	Version      string
	ExportedBy   string
	TakenAt      time.Time
	Products     int
	Transactions int
	TotalRevenue decimal.Decimal
	Payload      []byte
}

func newSnapshotRow(id string, snapshot *dto.Snapshot) (snapshotRow, error) {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return snapshotRow{}, fmt.Errorf("serializar backup: %w", err)
	}
	info := dto.NewSnapshotInfo(id, snapshot)
	return snapshotRow{
		ID:           id,
		Version:      info.Version,
		ExportedBy:   info.ExportedBy,
		TakenAt:      info.Timestamp.UTC(),
		Products:     info.Products,
		Transactions: info.Transactions,
		TotalRevenue: info.TotalRevenue,
		Payload:      payload,
	}, nil
}

func (r snapshotRow) info() dto.SnapshotInfo {
	return dto.SnapshotInfo{
		ID:           r.ID,
		Version:      r.Version,
		ExportedBy:   r.ExportedBy,
		Timestamp:    r.TakenAt,
		Products:     r.Products,
		Transactions: r.Transactions,
		TotalRevenue: r.TotalRevenue,
	}
}

// Save inserta el backup; el archivo es append-only.
func (s *SnapshotStore) Save(ctx context.Context, snapshot *dto.Snapshot) (*dto.SnapshotInfo, error) {
	row, err := newSnapshotRow(uuid.NewString(), snapshot)
	if err != nil {
		return nil, fmt.Errorf("snapshots.Save: %w", err)
	}

	const q = `
	INSERT INTO pos_snapshots (id, version, exported_by, taken_at, products, transactions, total_revenue, payload)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	err = s.tx.Run(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, q,
			row.ID, row.Version, row.ExportedBy, row.TakenAt,
			row.Products, row.Transactions, row.TotalRevenue, row.Payload,
		)
		return err
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("snapshots.Save: %w", domain.ErrStateConflict)
		}
		s.log.Error().Err(err).Msg("no se pudo archivar el backup")
		return nil, fmt.Errorf("snapshots.Save: %w", err)
	}

	info := row.info()
	s.log.Info().Str("snapshot_id", row.ID).Int("transactions", row.Transactions).Msg("backup archivado")
	return &info, nil
}

// Latest devuelve (nil, nil) si la tabla está vacía.
func (s *SnapshotStore) Latest(ctx context.Context) (*dto.Snapshot, error) {
	const q = `SELECT payload FROM pos_snapshots ORDER BY taken_at DESC, created_at DESC LIMIT 1`

	var payload []byte
	if err := s.pool.QueryRow(ctx, q).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("snapshots.Latest: %w", err)
	}
	var snap dto.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("snapshots.Latest: payload corrupto: %w", err)
	}
	return &snap, nil
}

// List del más reciente al más antiguo, sin leer el payload.
func (s *SnapshotStore) List(ctx context.Context) ([]dto.SnapshotInfo, error) {
	const q = `
	SELECT id, version, exported_by, taken_at, products, transactions, total_revenue
	FROM pos_snapshots
	ORDER BY taken_at DESC, created_at DESC`

	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("snapshots.List: %w", err)
	}
	defer rows.Close()

	out := []dto.SnapshotInfo{}
	for rows.Next() {
		var r snapshotRow
		if err := rows.Scan(&r.ID, &r.Version, &r.ExportedBy, &r.TakenAt, &r.Products, &r.Transactions, &r.TotalRevenue); err != nil {
			return nil, fmt.Errorf("snapshots.List scan: %w", err)
		}
		out = append(out, r.info())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("snapshots.List: %w", err)
	}
	return out, nil
}

// pgUniqueViolation SQLSTATE de clave duplicada.
const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
