package entity

// Store representa una sucursal (outlet) de la cadena. Los productos y las ventas
// la referencian por ID o por nombre desnormalizado.
type Store struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Active  bool   `json:"active"`
}
