package ports

import (
	"context"

	"github.com/jhoicas/wellcomputer-pos/internal/application/dto"
)

//go:generate mockgen -source=llm_port.go -destination=mocks/mock_llm_port.go -package=mocks

// LLMService define el puerto de salida para los servicios de inteligencia artificial.
// Cualquier adaptador (Gemini, Anthropic, mock) debe implementar esta interfaz.
// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
type LLMService interface {
	// ExtractSale interpreta un mensaje de venta en texto libre. productNames son los
	// nombres del catálogo que el modelo puede usar como referencia.
	ExtractSale(ctx context.Context, message string, productNames []string) (*dto.ExtractionResult, error)

	// Answer responde una pregunta libre usando los datos de la tienda.
	Answer(ctx context.Context, question string, storeContext dto.AssistantContext) (string, error)
}
