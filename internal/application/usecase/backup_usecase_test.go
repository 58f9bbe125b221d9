package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/wellcomputer-pos/internal/application/dto"
	"github.com/jhoicas/wellcomputer-pos/internal/application/usecase"
	"github.com/jhoicas/wellcomputer-pos/internal/domain"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/entity"
)

// fakeArchive archivo de backups en memoria.
type fakeArchive struct {
	saved []*dto.Snapshot
	err   error
}

func (a *fakeArchive) Save(_ context.Context, s *dto.Snapshot) (*dto.SnapshotInfo, error) {
	if a.err != nil {
		return nil, a.err
	}
	a.saved = append(a.saved, s)
	info := dto.NewSnapshotInfo("snap-1", s)
	return &info, nil
}

func (a *fakeArchive) Latest(context.Context) (*dto.Snapshot, error) {
	if a.err != nil {
		return nil, a.err
	}
	if len(a.saved) == 0 {
		return nil, nil
	}
	return a.saved[len(a.saved)-1], nil
}

func (a *fakeArchive) List(context.Context) ([]dto.SnapshotInfo, error) {
	out := make([]dto.SnapshotInfo, 0, len(a.saved))
	for i := len(a.saved) - 1; i >= 0; i-- {
		out = append(out, dto.NewSnapshotInfo("snap", a.saved[i]))
	}
	return out, nil
}

func (f *fixture) backupUC(archive *fakeArchive) *usecase.BackupUseCase {
	var uc *usecase.BackupUseCase
	if archive == nil {
		uc = usecase.NewBackupUseCase(f.state, nil, zerolog.Nop())
	} else {
		uc = usecase.NewBackupUseCase(f.state, archive, zerolog.Nop())
	}
	return uc.WithHashCost(bcrypt.MinCost)
}

func TestBackup_ExportImportReproduceColecciones(t *testing.T) {
	f := newFixture(t)
	uc := f.backupUC(nil)

	before, err := f.state.Dump(t.Context())
	require.NoError(t, err)

	snap, err := uc.Export(t.Context(), owner)
	require.NoError(t, err)
	assert.Equal(t, "1.2", snap.Version)
	assert.Equal(t, "Budi Owner", snap.ExportedBy)

	raw, err := json.Marshal(snap)
	require.NoError(t, err)

	// Mutar el estado y restaurar.
	_, err = f.productUC().SetStock("p1", 0)
	require.NoError(t, err)
	require.NoError(t, f.stores.Delete("s2"))

	info, err := uc.Import(t.Context(), entity.RoleSuperAdmin, raw)
	require.NoError(t, err)
	assert.Equal(t, 2, info.Transactions)

	after, err := f.state.Dump(t.Context())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestBackup_ImportSoloSuperAdmin(t *testing.T) {
	f := newFixture(t)
	uc := f.backupUC(nil)
	raw := []byte(`{"version":"1.2","data":{"products":[],"transactions":[],"users":[]}}`)

	for _, role := range []entity.Role{entity.RoleOwner, entity.RoleAdmin, entity.RoleSales} {
		_, err := uc.Import(t.Context(), role, raw)
		assert.ErrorIs(t, err, domain.ErrForbidden, role)
	}
	list, err := f.products.List()
	require.NoError(t, err)
	assert.Len(t, list, 4)
}

func TestBackup_ImportSinTiendasYPasswordsPlanos(t *testing.T) {
	f := newFixture(t)
	raw := []byte(`{
		"version":"1.1","timestamp":"2024-12-01T10:00:00Z","exportedBy":"Zaki",
		"data":{
			"products":[{"id":"p9","code":"X","brand":"ACER","name":"Acer","storeId":"s1","buyPrice":1,"sellPrice":2,"stock":1,"active":true}],
			"transactions":[],
			"users":[{"id":"u9","name":"Legacy","role":"SUPERADMIN","email":"legacy@wc.com","password":"password123","active":true}]
		}}`)

	_, err := f.backupUC(nil).Import(t.Context(), entity.RoleSuperAdmin, raw)
	require.NoError(t, err)

	stores, err := f.stores.List()
	require.NoError(t, err)
	assert.Empty(t, stores)

	u, err := f.userUC().FindByCredential("legacy@wc.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "u9", u.ID)
}

func TestBackup_ImportInvalidoNoMuta(t *testing.T) {
	cases := map[string]string{
		"json roto":        `{"version":`,
		"sin data":         `{"version":"1.2"}`,
		"sin products":     `{"data":{"transactions":[],"users":[]}}`,
		"sin transactions": `{"data":{"products":[],"users":[]}}`,
		"sin users":        `{"data":{"products":[],"transactions":[]}}`,
		"products null":    `{"data":{"products":null,"transactions":[],"users":[]}}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			before, err := f.state.Dump(t.Context())
			require.NoError(t, err)

			_, err = f.backupUC(nil).Import(t.Context(), entity.RoleSuperAdmin, []byte(raw))
			assert.ErrorIs(t, err, domain.ErrInvalidSnapshot)

			after, err := f.state.Dump(t.Context())
			require.NoError(t, err)
			assert.Equal(t, before, after)
		})
	}
}

func TestBackup_ArchivoYRestauracion(t *testing.T) {
	f := newFixture(t)
	archive := &fakeArchive{}
	uc := f.backupUC(archive)

	ok, err := uc.RestoreLatest(t.Context())
	require.NoError(t, err)
	assert.False(t, ok)

	info, err := uc.Archive(t.Context(), superAdmin)
	require.NoError(t, err)
	assert.Equal(t, 4, info.Products)
	assert.Equal(t, "42500000", info.TotalRevenue.String())

	_, err = f.productUC().SetStock("p2", 1)
	require.NoError(t, err)

	ok, err = uc.RestoreLatest(t.Context())
	require.NoError(t, err)
	assert.True(t, ok)
	p2, err := f.products.GetByID("p2")
	require.NoError(t, err)
	assert.Equal(t, 12, p2.Stock)

	list, err := uc.ListArchive(t.Context())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestBackup_SinArchivoConfigurado(t *testing.T) {
	f := newFixture(t)
	uc := f.backupUC(nil)

	_, err := uc.Archive(t.Context(), superAdmin)
	assert.ErrorIs(t, err, domain.ErrArchiveUnavailable)
	_, err = uc.RestoreLatest(t.Context())
	assert.ErrorIs(t, err, domain.ErrArchiveUnavailable)
}

func TestBackup_FalloDelArchivo(t *testing.T) {
	f := newFixture(t)
	_, err := f.backupUC(&fakeArchive{err: errors.New("disco lleno")}).Archive(t.Context(), superAdmin)
	assert.Error(t, err)
}
