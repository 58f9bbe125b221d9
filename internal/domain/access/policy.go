// Package access contiene la política de permisos por rol: áreas visibles,
// filtrado del libro de ventas y reglas de gestión de usuarios y tiendas.
// Todas las funciones son puras; no dependen de estado ni de infraestructura.
package access

import (
	"slices"

	"github.com/jhoicas/wellcomputer-pos/internal/domain/entity"
)

// Area identifica una sección funcional de la aplicación.
type Area string

const (
	AreaDashboard    Area = "dashboard"
	AreaStores       Area = "stores"
	AreaProducts     Area = "products"
	AreaTransactions Area = "transactions"
	AreaUsers        Area = "users"
	AreaWhatsApp     Area = "whatsapp"
	AreaReports      Area = "reports"
	AreaBackup       Area = "backup"
)

var rolePermissions = map[entity.Role][]Area{
	entity.RoleSuperAdmin: {AreaDashboard, AreaStores, AreaProducts, AreaTransactions, AreaUsers, AreaWhatsApp, AreaReports, AreaBackup},
	entity.RoleOwner:      {AreaDashboard, AreaStores, AreaProducts, AreaTransactions, AreaReports, AreaBackup},
	entity.RoleAdmin:      {AreaDashboard, AreaStores, AreaProducts, AreaTransactions, AreaReports, AreaUsers, AreaBackup},
	entity.RoleSales:      {AreaDashboard, AreaTransactions, AreaWhatsApp},
}

// PermittedAreas devuelve las áreas del rol. Un rol desconocido no tiene áreas.
func PermittedAreas(role entity.Role) []Area {
	return slices.Clone(rolePermissions[role])
}

// Allowed indica si el rol puede acceder al área.
func Allowed(role entity.Role, area Area) bool {
	return slices.Contains(rolePermissions[role], area)
}

// VisibleLedger filtra el libro de ventas según el rol: SALES solo ve sus propias
// ventas, el resto ve todo. Conserva el orden relativo de las entradas.
func VisibleLedger(role entity.Role, actorID string, entries []*entity.Transaction) []*entity.Transaction {
	if role != entity.RoleSales {
		return entries
	}
	out := make([]*entity.Transaction, 0, len(entries))
	for _, t := range entries {
		if t.SalesID == actorID {
			out = append(out, t)
		}
	}
	return out
}

// CanDeleteUser: SUPERADMIN elimina a cualquiera; ADMIN solo a SALES.
func CanDeleteUser(actor, target entity.Role) bool {
	switch actor {
	case entity.RoleSuperAdmin:
		return true
	case entity.RoleAdmin:
		return target == entity.RoleSales
	}
	return false
}

// AssignableRoles roles que el actor puede asignar al crear usuarios.
func AssignableRoles(actor entity.Role) []entity.Role {
	if actor == entity.RoleSuperAdmin {
		return slices.Clone(entity.Roles)
	}
	return []entity.Role{entity.RoleSales, entity.RoleAdmin}
}

// CanAssignRole indica si target está entre los roles asignables por actor.
func CanAssignRole(actor, target entity.Role) bool {
	return slices.Contains(AssignableRoles(actor), target)
}

// CanManageStores alta, edición y baja de sucursales.
func CanManageStores(role entity.Role) bool {
	return role == entity.RoleSuperAdmin || role == entity.RoleOwner || role == entity.RoleAdmin
}

// CanRestore solo SUPERADMIN reemplaza el estado desde un backup.
func CanRestore(role entity.Role) bool {
	return role == entity.RoleSuperAdmin
}

// CanSeeLeaderboard ranking de vendedores en el dashboard.
func CanSeeLeaderboard(role entity.Role) bool {
	return role == entity.RoleOwner || role == entity.RoleSuperAdmin || role == entity.RoleAdmin
}

// CanRecordManualSale el formulario manual de venta es exclusivo de SALES.
func CanRecordManualSale(role entity.Role) bool {
	return role == entity.RoleSales
}
