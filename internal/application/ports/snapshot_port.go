package ports

import (
	"context"

	"github.com/jhoicas/wellcomputer-pos/internal/application/dto"
)

// SnapshotStore archivo de backups (disco o PostgreSQL).
type SnapshotStore interface {
	Save(ctx context.Context, snapshot *dto.Snapshot) (*dto.SnapshotInfo, error)
	// Latest devuelve (nil, nil) si el archivo está vacío.
	Latest(ctx context.Context) (*dto.Snapshot, error)
	// List devuelve los backups del más reciente al más antiguo.
	List(ctx context.Context) ([]dto.SnapshotInfo, error)
}
