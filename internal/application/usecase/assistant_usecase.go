package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/wellcomputer-pos/internal/application/dto"
	"github.com/jhoicas/wellcomputer-pos/internal/application/ports"
	"github.com/jhoicas/wellcomputer-pos/internal/domain"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/access"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/entity"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/repository"
)

const (
	assistantRecentSales = 10
	assistantFallback    = "Maaf, saya sedang mengalami kendala teknis."
)

// AssistantUseCase responde preguntas libres sobre el catálogo y las ventas visibles del actor.
// Cada llamada al LLM lleva su propio timeout para no bloquear los goroutines del servidor.
type AssistantUseCase struct {
	llm      ports.LLMService
	products repository.ProductRepository
	ledger   repository.TransactionRepository
	timeout  time.Duration
	log      zerolog.Logger
}

// NewAssistantUseCase construye el caso de uso. timeout <= 0 usa 10 s.
func NewAssistantUseCase(
	llm ports.LLMService,
	products repository.ProductRepository,
	ledger repository.TransactionRepository,
	timeout time.Duration,
	log zerolog.Logger,
) *AssistantUseCase {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &AssistantUseCase{llm: llm, products: products, ledger: ledger, timeout: timeout, log: log}
}

// Ask arma el contexto (productos + últimas 10 ventas visibles) y delega al LLM.
func (uc *AssistantUseCase) Ask(ctx context.Context, actor *entity.User, question string) (*dto.AskResponse, error) {
	question = strings.TrimSpace(question)
	if question == "" || actor == nil {
		return nil, domain.ErrInvalidRequest
	}
	storeCtx, err := uc.buildContext(actor)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	answer, err := uc.llm.Answer(ctx, question, storeCtx)
	if err != nil {
		uc.log.Error().Err(err).Str("user_id", actor.ID).Msg("asistente sin respuesta")
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionUnavailable, err)
	}
	if strings.TrimSpace(answer) == "" {
		answer = assistantFallback
	}
	return &dto.AskResponse{Answer: answer}, nil
}

func (uc *AssistantUseCase) buildContext(actor *entity.User) (dto.AssistantContext, error) {
	products, err := uc.products.List()
	if err != nil {
		return dto.AssistantContext{}, err
	}
	entries, err := uc.ledger.List()
	if err != nil {
		return dto.AssistantContext{}, err
	}
	visible := access.VisibleLedger(actor.Role, actor.ID, entries)
	if len(visible) > assistantRecentSales {
		visible = visible[:assistantRecentSales]
	}

	out := dto.AssistantContext{
		Products:     make([]dto.AssistantProduct, 0, len(products)),
		Transactions: make([]dto.AssistantTransaction, 0, len(visible)),
	}
	for _, p := range products {
		out.Products = append(out.Products, dto.AssistantProduct{Name: p.Name, Stock: p.Stock, SellPrice: p.SellPrice})
	}
	for _, t := range visible {
		out.Transactions = append(out.Transactions, dto.AssistantTransaction{
			Date:         t.Date,
			CustomerName: t.CustomerName,
			ProductName:  t.ProductName,
			Price:        t.Price,
			SalesName:    t.SalesName,
		})
	}
	return out, nil
}
