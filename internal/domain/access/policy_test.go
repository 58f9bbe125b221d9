package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/wellcomputer-pos/internal/domain/access"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de áreas por rol
// ──────────────────────────────────────────────────────────────────────────────

func TestPermittedAreas_TablaPorRol(t *testing.T) {
	cases := []struct {
		role  entity.Role
		areas []access.Area
	}{
		{entity.RoleSuperAdmin, []access.Area{"dashboard", "stores", "products", "transactions", "users", "whatsapp", "reports", "backup"}},
		{entity.RoleOwner, []access.Area{"dashboard", "stores", "products", "transactions", "reports", "backup"}},
		{entity.RoleAdmin, []access.Area{"dashboard", "stores", "products", "transactions", "reports", "users", "backup"}},
		{entity.RoleSales, []access.Area{"dashboard", "transactions", "whatsapp"}},
	}
	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			assert.ElementsMatch(t, tc.areas, access.PermittedAreas(tc.role))
		})
	}
}

func TestAllowed_SalesNoAccedeABackupNiUsuarios(t *testing.T) {
	assert.False(t, access.Allowed(entity.RoleSales, access.AreaBackup))
	assert.False(t, access.Allowed(entity.RoleSales, access.AreaUsers))
	assert.False(t, access.Allowed(entity.RoleSales, access.AreaProducts))
	assert.True(t, access.Allowed(entity.RoleSales, access.AreaWhatsApp))
}

func TestAllowed_OwnerSinWhatsAppNiUsuarios(t *testing.T) {
	assert.False(t, access.Allowed(entity.RoleOwner, access.AreaWhatsApp))
	assert.False(t, access.Allowed(entity.RoleOwner, access.AreaUsers))
	assert.True(t, access.Allowed(entity.RoleOwner, access.AreaBackup))
}

func TestAllowed_RolDesconocidoSinAreas(t *testing.T) {
	assert.Empty(t, access.PermittedAreas(entity.Role("GUEST")))
	assert.False(t, access.Allowed(entity.Role("GUEST"), access.AreaDashboard))
}

func TestPermittedAreas_DevuelveCopia(t *testing.T) {
	areas := access.PermittedAreas(entity.RoleSales)
	areas[0] = access.AreaBackup
	assert.False(t, access.Allowed(entity.RoleSales, access.AreaBackup))
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtro del libro de ventas
// ──────────────────────────────────────────────────────────────────────────────

func ledger() []*entity.Transaction {
	return []*entity.Transaction{
		{ID: "t4", SalesID: "u4"},
		{ID: "t3", SalesID: "u5"},
		{ID: "t2", SalesID: "u4"},
		{ID: "t1", SalesID: "u3"},
	}
}

func TestVisibleLedger_SalesSoloVeLasPropias(t *testing.T) {
	visible := access.VisibleLedger(entity.RoleSales, "u4", ledger())

	ids := make([]string, 0, len(visible))
	for _, tx := range visible {
		assert.Equal(t, "u4", tx.SalesID)
		ids = append(ids, tx.ID)
	}
	// conserva el orden relativo
	assert.Equal(t, []string{"t4", "t2"}, ids)
}

func TestVisibleLedger_OtrosRolesVenTodo(t *testing.T) {
	for _, role := range []entity.Role{entity.RoleSuperAdmin, entity.RoleOwner, entity.RoleAdmin} {
		assert.Len(t, access.VisibleLedger(role, "u4", ledger()), 4, string(role))
	}
}

func TestVisibleLedger_SalesSinVentas(t *testing.T) {
	assert.Empty(t, access.VisibleLedger(entity.RoleSales, "u9", ledger()))
}

// ──────────────────────────────────────────────────────────────────────────────
// Gestión de usuarios y tiendas
// ──────────────────────────────────────────────────────────────────────────────

func TestCanDeleteUser(t *testing.T) {
	cases := []struct {
		actor, target entity.Role
		want          bool
	}{
		{entity.RoleSuperAdmin, entity.RoleSuperAdmin, true},
		{entity.RoleSuperAdmin, entity.RoleOwner, true},
		{entity.RoleAdmin, entity.RoleSales, true},
		{entity.RoleAdmin, entity.RoleSuperAdmin, false},
		{entity.RoleAdmin, entity.RoleAdmin, false},
		{entity.RoleOwner, entity.RoleSales, false},
		{entity.RoleSales, entity.RoleSales, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, access.CanDeleteUser(tc.actor, tc.target), "%s -> %s", tc.actor, tc.target)
	}
}

func TestAssignableRoles(t *testing.T) {
	assert.ElementsMatch(t, entity.Roles, access.AssignableRoles(entity.RoleSuperAdmin))
	assert.ElementsMatch(t, []entity.Role{entity.RoleSales, entity.RoleAdmin}, access.AssignableRoles(entity.RoleAdmin))
	assert.False(t, access.CanAssignRole(entity.RoleAdmin, entity.RoleOwner))
	assert.True(t, access.CanAssignRole(entity.RoleSuperAdmin, entity.RoleOwner))
}

func TestReglasPuntuales(t *testing.T) {
	assert.True(t, access.CanManageStores(entity.RoleOwner))
	assert.False(t, access.CanManageStores(entity.RoleSales))

	assert.True(t, access.CanRestore(entity.RoleSuperAdmin))
	assert.False(t, access.CanRestore(entity.RoleOwner))

	assert.True(t, access.CanSeeLeaderboard(entity.RoleAdmin))
	assert.False(t, access.CanSeeLeaderboard(entity.RoleSales))

	assert.True(t, access.CanRecordManualSale(entity.RoleSales))
	assert.False(t, access.CanRecordManualSale(entity.RoleSuperAdmin))
}
