package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wellcomputer-pos/internal/domain"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/entity"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/repository"
	"github.com/jhoicas/wellcomputer-pos/internal/infrastructure/memory"
)

var seedTime = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

func TestTxRunner_RestauraElEstadoSiFalla(t *testing.T) {
	state := memory.NewState(memory.SeedDataset(seedTime))
	runner := memory.NewTxRunner(state)
	boom := errors.New("boom")

	err := runner.Run(context.Background(), func(
		productRepo repository.ProductRepository,
		_ repository.StoreRepository,
		ledgerRepo repository.TransactionRepository,
	) error {
		require.NoError(t, ledgerRepo.Append(&entity.Transaction{ID: "tx-temp"}))
		p, err := productRepo.GetByID("p1")
		require.NoError(t, err)
		p.Stock = 0
		require.NoError(t, productRepo.Update(p))
		return boom
	})
	require.ErrorIs(t, err, boom)

	ds, err := state.Dump(context.Background())
	require.NoError(t, err)
	assert.Len(t, ds.Transactions, 2)
	assert.Equal(t, 5, ds.Products[0].Stock)
}

func TestTxRunner_ConfirmaSiNoFalla(t *testing.T) {
	state := memory.NewState(memory.SeedDataset(seedTime))
	runner := memory.NewTxRunner(state)

	err := runner.Run(context.Background(), func(
		_ repository.ProductRepository,
		_ repository.StoreRepository,
		ledgerRepo repository.TransactionRepository,
	) error {
		return ledgerRepo.Append(&entity.Transaction{ID: "t-new"})
	})
	require.NoError(t, err)

	got, err := memory.NewTransactionRepository(state).GetByID("t-new")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestRepos_DevuelvenCopias(t *testing.T) {
	state := memory.NewState(memory.SeedDataset(seedTime))
	repo := memory.NewProductRepository(state)

	p, err := repo.GetByID("p1")
	require.NoError(t, err)
	p.Stock = 99

	again, err := repo.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, 5, again.Stock)
}

func TestProductRepo_CodigoSinDistinguirMayusculas(t *testing.T) {
	state := memory.NewState(memory.SeedDataset(seedTime))
	repo := memory.NewProductRepository(state)

	p, err := repo.GetByCode("as-rog-g14-01")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "p1", p.ID)

	missing, err := repo.GetByCode("XX")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProductRepo_UpdateInexistente(t *testing.T) {
	state := memory.NewState(entity.Dataset{})
	err := memory.NewProductRepository(state).Update(&entity.Product{ID: "x"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestUserRepo_EmailSinDistinguirMayusculas(t *testing.T) {
	state := memory.NewState(memory.SeedDataset(seedTime))
	u, err := memory.NewUserRepository(state).GetByEmail(" SALES@WellComputer.com ")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "u4", u.ID)
}

func TestTransactionRepo_MasRecientePrimero(t *testing.T) {
	state := memory.NewState(memory.SeedDataset(seedTime))
	repo := memory.NewTransactionRepository(state)
	require.NoError(t, repo.Append(&entity.Transaction{ID: "t3"}))

	list, err := repo.List()
	require.NoError(t, err)
	ids := []string{list[0].ID, list[1].ID, list[2].ID}
	assert.Equal(t, []string{"t3", "t1", "t2"}, ids)
}

func TestState_ReplaceYDump(t *testing.T) {
	state := memory.NewState(memory.SeedDataset(seedTime))
	next := entity.Dataset{
		Products: []entity.Product{{ID: "px", Code: "X", Stock: 1, Active: true}},
		Users:    []entity.User{{ID: "ux", Email: "x@x.com"}},
	}
	require.NoError(t, state.Replace(context.Background(), next))

	ds, err := state.Dump(context.Background())
	require.NoError(t, err)
	assert.Len(t, ds.Products, 1)
	assert.Empty(t, ds.Transactions)
	assert.Empty(t, ds.Stores)
	assert.NotNil(t, ds.Stores)
}

func TestSessionStore_ExpiraYEsIdempotente(t *testing.T) {
	store := memory.NewSessionStore()
	now := seedTime
	store.SetClock(func() time.Time { return now })
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "s1", "u1", time.Minute))
	require.NoError(t, store.Save(ctx, "s1", "u1", time.Minute))

	userID, found, err := store.Lookup(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "u1", userID)

	now = now.Add(2 * time.Minute)
	_, found, err = store.Lookup(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Delete(ctx, "s1"))
	require.NoError(t, store.Delete(ctx, "s1"))
}
