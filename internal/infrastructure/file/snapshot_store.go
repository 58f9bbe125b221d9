package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/wellcomputer-pos/internal/application/dto"
	"github.com/jhoicas/wellcomputer-pos/internal/application/ports"
)

var _ ports.SnapshotStore = (*SnapshotStore)(nil)

const (
	filePrefix = "snapshot-"
	fileExt    = ".json"
	// stampLayout ordena lexicográficamente igual que cronológicamente.
	stampLayout = "20060102T150405.000000000Z"
)

// SnapshotStore archivo de backups en un directorio local, un JSON por backup.
type SnapshotStore struct {
	mu  sync.Mutex
	dir string
	log zerolog.Logger
}

// NewSnapshotStore crea el directorio si no existe.
func NewSnapshotStore(dir string, log zerolog.Logger) (*SnapshotStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file: crear directorio %s: %w", dir, err)
	}
	return &SnapshotStore{dir: dir, log: log}, nil
}

// Save escribe el backup en un temporal y lo renombra, así nunca queda un archivo a medias.
func (s *SnapshotStore) Save(ctx context.Context, snapshot *dto.Snapshot) (*dto.SnapshotInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("file: serializar backup: %w", err)
	}

	id := snapshot.Timestamp.UTC().Format(stampLayout) + "-" + uuid.NewString()[:8]
	name := filepath.Join(s.dir, filePrefix+id+fileExt)

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, ".tmp-"+filePrefix)
	if err != nil {
		return nil, fmt.Errorf("file: crear temporal: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("file: escribir backup: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("file: cerrar backup: %w", err)
	}
	if err := os.Rename(tmp.Name(), name); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("file: renombrar backup: %w", err)
	}

	info := dto.NewSnapshotInfo(id, snapshot)
	s.log.Info().Str("snapshot_id", id).Str("path", name).Msg("backup archivado")
	return &info, nil
}

// Latest devuelve el backup legible más reciente, o (nil, nil) si no hay ninguno.
func (s *SnapshotStore) Latest(ctx context.Context) (*dto.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.ids()
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		snap, err := s.read(id)
		if err != nil {
			s.log.Warn().Err(err).Str("snapshot_id", id).Msg("backup ilegible, se omite")
			continue
		}
		return snap, nil
	}
	return nil, nil
}

// List del más reciente al más antiguo. Un archivo ilegible se omite con warning.
func (s *SnapshotStore) List(ctx context.Context) ([]dto.SnapshotInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.ids()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SnapshotInfo, 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		snap, err := s.read(id)
		if err != nil {
			s.log.Warn().Err(err).Str("snapshot_id", id).Msg("backup ilegible, se omite")
			continue
		}
		out = append(out, dto.NewSnapshotInfo(id, snap))
	}
	return out, nil
}

// ids nombres de backup ordenados del más reciente al más antiguo.
func (s *SnapshotStore) ids() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("file: leer directorio: %w", err)
	}
	var ids []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileExt) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileExt))
	}
	sort.Sort(sort.Reverse(sort.StringSlice(ids)))
	return ids, nil
}

func (s *SnapshotStore) read(id string) (*dto.Snapshot, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, filePrefix+id+fileExt))
	if err != nil {
		return nil, fmt.Errorf("file: leer backup %s: %w", id, err)
	}
	var snap dto.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("file: backup %s corrupto: %w", id, err)
	}
	return &snap, nil
}
