package dto

import "time"

// CreateTransactionRequest entrada del formulario de venta manual.
type CreateTransactionRequest struct {
	CustomerName  string  `json:"customerName" validate:"required,max=200"`
	ProductID     string  `json:"productId" validate:"required"`
	Price         *int64  `json:"price" validate:"required,min=0"`
	PaymentMethod string  `json:"paymentMethod" validate:"required,oneof=CASH TRANSFER CREDIT"`
	Note          *string `json:"note" validate:"omitempty,max=500"`
}

// TransactionResponse entrada del libro de ventas.
type TransactionResponse struct {
	ID             string    `json:"id"`
	Date           time.Time `json:"date"`
	CustomerID     string    `json:"customerId"`
	CustomerName   string    `json:"customerName"`
	ProductID      string    `json:"productId"`
	ProductName    string    `json:"productName"`
	ProductCode    string    `json:"productCode"`
	StoreName      string    `json:"storeName"`
	SalesID        string    `json:"salesId"`
	SalesName      string    `json:"salesName"`
	Price          int64     `json:"price"`
	PriceFormatted string    `json:"priceFormatted"`
	PaymentMethod  string    `json:"paymentMethod"`
	Note           *string   `json:"note,omitempty"`
}
