package usecase_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/wellcomputer-pos/internal/application/usecase"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/entity"
	"github.com/jhoicas/wellcomputer-pos/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var fixedNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

type fixture struct {
	state    *memory.State
	products *memory.ProductRepo
	stores   *memory.StoreRepo
	users    *memory.UserRepo
	ledger   *memory.TransactionRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ds := memory.SeedDataset(fixedNow)
	require.NoError(t, usecase.HashPasswords(ds.Users, bcrypt.MinCost))
	state := memory.NewState(ds)
	return &fixture{
		state:    state,
		products: memory.NewProductRepository(state),
		stores:   memory.NewStoreRepository(state),
		users:    memory.NewUserRepository(state),
		ledger:   memory.NewTransactionRepository(state),
	}
}

func (f *fixture) productUC() *usecase.ProductUseCase {
	return usecase.NewProductUseCase(f.products, f.stores, zerolog.Nop())
}

func (f *fixture) storeUC() *usecase.StoreUseCase {
	return usecase.NewStoreUseCase(f.stores, zerolog.Nop())
}

func (f *fixture) userUC() *usecase.UserUseCase {
	return usecase.NewUserUseCase(f.users, zerolog.Nop()).WithHashCost(bcrypt.MinCost)
}

var (
	superAdmin = &entity.User{ID: "u1", Name: "Zaki Superadmin", Role: entity.RoleSuperAdmin}
	owner      = &entity.User{ID: "u2", Name: "Budi Owner", Role: entity.RoleOwner}
	admin      = &entity.User{ID: "u3", Name: "Siti Admin", Role: entity.RoleAdmin}
	salesUser  = &entity.User{ID: "u4", Name: "Andi Sales", Role: entity.RoleSales}
)
