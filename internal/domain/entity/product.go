package entity

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Product representa un artículo vendible del catálogo (una unidad física por venta).
// Los precios se guardan en rupias enteras; Stock nunca es negativo.
type Product struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Brand     string `json:"brand"`
	Name      string `json:"name"`
	Specs     string `json:"specs"`
	Color     string `json:"color"`
	StoreID   string `json:"storeId"`
	BuyPrice  int64  `json:"buyPrice"`
	SellPrice int64  `json:"sellPrice"`
	Stock     int    `json:"stock"`
	Active    bool   `json:"active"`
}

// Sellable indica si el producto puede aparecer en el selector de venta.
func (p *Product) Sellable() bool {
	return p.Active && p.Stock > 0
}

// NormalizeBrand devuelve la marca en mayúsculas, tal como se agrupa el catálogo.
// Un Caser no se comparte entre goroutines.
func NormalizeBrand(brand string) string {
	return cases.Upper(language.Und).String(brand)
}
