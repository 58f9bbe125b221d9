package dto

// CreateStoreRequest entrada para registrar una sucursal.
type CreateStoreRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Address string `json:"address" validate:"max=300"`
	Phone   string `json:"phone" validate:"max=40"`
}

// UpdateStoreRequest reemplazo completo de una sucursal.
type UpdateStoreRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Address string `json:"address" validate:"max=300"`
	Phone   string `json:"phone" validate:"max=40"`
	Active  *bool  `json:"active"`
}

// StoreResponse salida de una sucursal.
type StoreResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Active  bool   `json:"active"`
}

// MissingStoreName se muestra cuando la tienda referenciada ya no existe.
const MissingStoreName = "-"

// DisplayStoreName devuelve el nombre o el marcador de tienda eliminada.
func DisplayStoreName(name string) string {
	if name == "" {
		return MissingStoreName
	}
	return name
}
