package dto

import "time"

// ProcessMessageRequest mensaje de texto libre recibido en el canal de WhatsApp.
type ProcessMessageRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

// ExtractionResult interpretación estructurada que devuelve el adaptador de texto.
// Es una suposición: el núcleo valida todo antes de registrar la venta.
type ExtractionResult struct {
	Success       bool   `json:"success"`
	CustomerName  string `json:"customerName,omitempty"`
	ProductName   string `json:"productName,omitempty"`
	Price         *int64 `json:"price,omitempty"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Estados de un mensaje procesado.
const (
	MessageStatusPending = "pending"
	MessageStatusSuccess = "success"
	MessageStatusError   = "error"
)

// MessageLogResponse registro de un mensaje procesado y la respuesta enviada.
type MessageLogResponse struct {
	ID            string    `json:"id"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	Reply         string    `json:"reply"`
	TransactionID string    `json:"transactionId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// MessageResultResponse resultado de procesar un mensaje.
type MessageResultResponse struct {
	Log         MessageLogResponse   `json:"log"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
}
