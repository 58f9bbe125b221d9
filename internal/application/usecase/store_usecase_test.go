package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wellcomputer-pos/internal/application/dto"
	"github.com/jhoicas/wellcomputer-pos/internal/domain"
)

func TestStoreCRUD(t *testing.T) {
	f := newFixture(t)
	uc := f.storeUC()

	created, err := uc.Create(owner.Role, dto.CreateStoreRequest{Name: "Well Computer - Surabaya", Address: "Jl. Pemuda 7"})
	require.NoError(t, err)
	assert.True(t, created.Active)

	inactive := false
	updated, err := uc.Update(admin.Role, created.ID, dto.UpdateStoreRequest{Name: "WC Surabaya", Active: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "WC Surabaya", updated.Name)
	assert.Equal(t, "", updated.Address)
	assert.False(t, updated.Active)

	_, err = uc.Update(admin.Role, "s-x", dto.UpdateStoreRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)

	require.NoError(t, uc.Delete(superAdmin.Role, created.ID))
	list, err := uc.List()
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestStore_SalesNoGestiona(t *testing.T) {
	f := newFixture(t)
	uc := f.storeUC()

	_, err := uc.Create(salesUser.Role, dto.CreateStoreRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.ErrorIs(t, uc.Delete(salesUser.Role, "s1"), domain.ErrForbidden)

	got, err := uc.GetByID("s1")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestStoreDelete_ProductosQuedanHuerfanos(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.storeUC().Delete(owner.Role, "s1"))

	p, err := f.products.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, "s1", p.StoreID)
}
