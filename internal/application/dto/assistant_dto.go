package dto

import "time"

// AskRequest pregunta libre al asistente.
type AskRequest struct {
	Question string `json:"question" validate:"required,max=1000"`
}

// AskResponse respuesta del asistente.
type AskResponse struct {
	Answer string `json:"answer"`
}

// AssistantContext datos de la tienda que acompañan la pregunta.
type AssistantContext struct {
	Products     []AssistantProduct     `json:"products"`
	Transactions []AssistantTransaction `json:"transactions"`
}

// AssistantProduct resumen de un artículo para el asistente.
type AssistantProduct struct {
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
	SellPrice int64  `json:"price"`
}

// AssistantTransaction resumen de una venta para el asistente.
type AssistantTransaction struct {
	Date         time.Time `json:"date"`
	CustomerName string    `json:"customer"`
	ProductName  string    `json:"product"`
	Price        int64     `json:"price"`
	SalesName    string    `json:"salesName"`
}
