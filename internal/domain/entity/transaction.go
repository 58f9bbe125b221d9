package entity

import (
	"strings"
	"time"
)

// PaymentMethod medio de pago de una venta.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentTransfer PaymentMethod = "TRANSFER"
	PaymentCredit   PaymentMethod = "CREDIT"
)

// PaymentMethods lista los medios aceptados.
var PaymentMethods = []PaymentMethod{PaymentCash, PaymentTransfer, PaymentCredit}

// ParsePaymentMethod interpreta el texto sin distinguir mayúsculas.
// ok es false cuando el valor no es reconocido.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	pm := PaymentMethod(strings.ToUpper(strings.TrimSpace(s)))
	switch pm {
	case PaymentCash, PaymentTransfer, PaymentCredit:
		return pm, true
	}
	return "", false
}

// Transaction es una entrada inmutable del libro de ventas. Los nombres de producto,
// tienda y vendedor se copian en el momento de la venta y no se actualizan después.
type Transaction struct {
	ID            string        `json:"id"`
	Date          time.Time     `json:"date"`
	CustomerID    string        `json:"customerId"`
	CustomerName  string        `json:"customerName"`
	ProductID     string        `json:"productId"`
	ProductName   string        `json:"productName"`
	ProductCode   string        `json:"productCode"`
	StoreName     string        `json:"storeName"`
	SalesID       string        `json:"salesId"`
	SalesName     string        `json:"salesName"`
	Price         int64         `json:"price"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Note          *string       `json:"note,omitempty"`
}

// Dataset agrupa las cuatro colecciones del estado de la aplicación.
// Es la unidad que se exporta, importa y archiva.
type Dataset struct {
	Products     []Product     `json:"products"`
	Transactions []Transaction `json:"transactions"`
	Users        []User        `json:"users"`
	Stores       []Store       `json:"stores"`
}
