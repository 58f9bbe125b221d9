package usecase

import (
	"context"

	"github.com/jhoicas/wellcomputer-pos/internal/domain/entity"
)

// DatasetStore acceso al estado completo para exportar y restaurar backups.
type DatasetStore interface {
	Dump(ctx context.Context) (entity.Dataset, error)
	Replace(ctx context.Context, ds entity.Dataset) error
}
