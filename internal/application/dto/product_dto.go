package dto

// CreateProductRequest entrada para agregar un artículo al catálogo.
// StoreID vacío asigna la primera tienda registrada.
type CreateProductRequest struct {
	Code      string `json:"code" validate:"required,max=60"`
	Brand     string `json:"brand" validate:"required,max=60"`
	Name      string `json:"name" validate:"required,max=200"`
	Specs     string `json:"specs" validate:"max=500"`
	Color     string `json:"color" validate:"max=60"`
	StoreID   string `json:"storeId"`
	BuyPrice  int64  `json:"buyPrice" validate:"min=0"`
	SellPrice int64  `json:"sellPrice" validate:"min=0"`
	Stock     int    `json:"stock" validate:"min=0"`
}

// AdjustStockRequest variación relativa (+/-) del stock.
type AdjustStockRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// SetStockRequest valor absoluto de stock.
type SetStockRequest struct {
	Stock *int `json:"stock" validate:"required"`
}

// ProductResponse salida de un artículo, con el nombre de su tienda resuelto.
type ProductResponse struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Brand     string `json:"brand"`
	Name      string `json:"name"`
	Specs     string `json:"specs"`
	Color     string `json:"color"`
	StoreID   string `json:"storeId"`
	StoreName string `json:"storeName"`
	BuyPrice  int64  `json:"buyPrice"`
	SellPrice int64  `json:"sellPrice"`
	Stock     int    `json:"stock"`
	Active    bool   `json:"active"`
}

// BrandGroupResponse artículos de una marca.
type BrandGroupResponse struct {
	Brand string            `json:"brand"`
	Items []ProductResponse `json:"items"`
}

// BrandCountResponse entrada del menú de marcas.
type BrandCountResponse struct {
	Brand string `json:"brand"`
	Count int    `json:"count"`
}

// SaleOptionResponse artículo seleccionable en el formulario de venta manual.
type SaleOptionResponse struct {
	ProductID string `json:"productId"`
	Code      string `json:"code"`
	Brand     string `json:"brand"`
	Name      string `json:"name"`
	StoreName string `json:"storeName"`
	SellPrice int64  `json:"sellPrice"`
	Stock     int    `json:"stock"`
}

// SaleFormOptionsResponse datos para el formulario de venta manual.
type SaleFormOptionsResponse struct {
	Items          []SaleOptionResponse `json:"items"`
	PaymentMethods []string             `json:"paymentMethods"`
}
