package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/wellcomputer-pos/internal/application/dto"
	"github.com/jhoicas/wellcomputer-pos/internal/application/ports"
	"github.com/jhoicas/wellcomputer-pos/internal/domain"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/access"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/entity"
)

// BackupUseCase exporta, importa y archiva el estado completo.
// archive puede ser nil cuando no hay archivo configurado.
type BackupUseCase struct {
	state    DatasetStore
	archive  ports.SnapshotStore
	log      zerolog.Logger
	now      func() time.Time
	hashCost int
}

// NewBackupUseCase construye el caso de uso.
func NewBackupUseCase(state DatasetStore, archive ports.SnapshotStore, log zerolog.Logger) *BackupUseCase {
	return &BackupUseCase{
		state:    state,
		archive:  archive,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
		hashCost: bcrypt.DefaultCost,
	}
}

// WithHashCost costo de bcrypt para passwords en texto plano de backups antiguos.
func (uc *BackupUseCase) WithHashCost(cost int) *BackupUseCase {
	uc.hashCost = cost
	return uc
}

// Export genera el documento de backup con las cuatro colecciones.
func (uc *BackupUseCase) Export(ctx context.Context, actor *entity.User) (*dto.Snapshot, error) {
	ds, err := uc.state.Dump(ctx)
	if err != nil {
		return nil, fmt.Errorf("dump state: %w", err)
	}
	exportedBy := ""
	if actor != nil {
		exportedBy = actor.Name
	}
	return &dto.Snapshot{
		Version:    dto.SnapshotVersion,
		Timestamp:  uc.now(),
		ExportedBy: exportedBy,
		Data:       nonNil(ds),
	}, nil
}

// rawSnapshot distingue colecciones ausentes de colecciones vacías.
type rawSnapshot struct {
	Version    string    `json:"version"`
	Timestamp  time.Time `json:"timestamp"`
	ExportedBy string    `json:"exportedBy"`
	Data       *struct {
		Products     *[]entity.Product     `json:"products"`
		Transactions *[]entity.Transaction `json:"transactions"`
		Users        *[]entity.User        `json:"users"`
		Stores       *[]entity.Store       `json:"stores"`
	} `json:"data"`
}

// ParseSnapshot decodifica un backup. products, transactions y users son obligatorios;
// stores ausente se toma como lista vacía.
func ParseSnapshot(raw []byte) (*dto.Snapshot, error) {
	var in rawSnapshot
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
	}
	if in.Data == nil || in.Data.Products == nil || in.Data.Transactions == nil || in.Data.Users == nil {
		return nil, domain.ErrInvalidSnapshot
	}
	ds := entity.Dataset{
		Products:     *in.Data.Products,
		Transactions: *in.Data.Transactions,
		Users:        *in.Data.Users,
		Stores:       []entity.Store{},
	}
	if in.Data.Stores != nil {
		ds.Stores = *in.Data.Stores
	}
	return &dto.Snapshot{
		Version:    in.Version,
		Timestamp:  in.Timestamp,
		ExportedBy: in.ExportedBy,
		Data:       ds,
	}, nil
}

// Import reemplaza todo el estado con el backup. Solo SUPERADMIN. No reconcilia IDs.
func (uc *BackupUseCase) Import(ctx context.Context, actor entity.Role, raw []byte) (*dto.SnapshotInfo, error) {
	if !access.CanRestore(actor) {
		return nil, domain.ErrActionForbidden
	}
	snap, err := ParseSnapshot(raw)
	if err != nil {
		uc.log.Warn().Err(err).Msg("backup rechazado")
		return nil, err
	}
	if err := uc.apply(ctx, snap); err != nil {
		return nil, err
	}
	info := dto.NewSnapshotInfo("", snap)
	return &info, nil
}

// Archive guarda el estado actual en el archivo de backups.
func (uc *BackupUseCase) Archive(ctx context.Context, actor *entity.User) (*dto.SnapshotInfo, error) {
	if uc.archive == nil {
		return nil, domain.ErrArchiveUnavailable
	}
	snap, err := uc.Export(ctx, actor)
	if err != nil {
		return nil, err
	}
	info, err := uc.archive.Save(ctx, snap)
	if err != nil {
		return nil, fmt.Errorf("archive snapshot: %w", err)
	}
	uc.log.Info().Str("snapshot_id", info.ID).Int("transactions", info.Transactions).Msg("backup archivado")
	return info, nil
}

// ListArchive backups archivados, del más reciente al más antiguo.
func (uc *BackupUseCase) ListArchive(ctx context.Context) ([]dto.SnapshotInfo, error) {
	if uc.archive == nil {
		return nil, domain.ErrArchiveUnavailable
	}
	return uc.archive.List(ctx)
}

// RestoreLatest carga el último backup archivado. Devuelve false si el archivo está vacío.
func (uc *BackupUseCase) RestoreLatest(ctx context.Context) (bool, error) {
	if uc.archive == nil {
		return false, domain.ErrArchiveUnavailable
	}
	snap, err := uc.archive.Latest(ctx)
	if err != nil {
		return false, fmt.Errorf("latest snapshot: %w", err)
	}
	if snap == nil {
		return false, nil
	}
	if err := uc.apply(ctx, snap); err != nil {
		return false, err
	}
	return true, nil
}

func (uc *BackupUseCase) apply(ctx context.Context, snap *dto.Snapshot) error {
	ds := nonNil(snap.Data)
	if err := HashPasswords(ds.Users, uc.hashCost); err != nil {
		return err
	}
	if err := uc.state.Replace(ctx, ds); err != nil {
		return fmt.Errorf("replace state: %w", err)
	}
	uc.log.Info().
		Str("version", snap.Version).
		Str("exported_by", snap.ExportedBy).
		Int("products", len(ds.Products)).
		Int("transactions", len(ds.Transactions)).
		Int("users", len(ds.Users)).
		Int("stores", len(ds.Stores)).
		Msg("estado restaurado desde backup")
	return nil
}

// nonNil evita que colecciones vacías se serialicen como null.
func nonNil(ds entity.Dataset) entity.Dataset {
	if ds.Products == nil {
		ds.Products = []entity.Product{}
	}
	if ds.Transactions == nil {
		ds.Transactions = []entity.Transaction{}
	}
	if ds.Users == nil {
		ds.Users = []entity.User{}
	}
	if ds.Stores == nil {
		ds.Stores = []entity.Store{}
	}
	return ds
}
