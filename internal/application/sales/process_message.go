package sales

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/jhoicas/wellcomputer-pos/internal/application/dto"
	"github.com/jhoicas/wellcomputer-pos/internal/application/ports"
	"github.com/jhoicas/wellcomputer-pos/internal/domain"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/entity"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/repository"
	"github.com/jhoicas/wellcomputer-pos/pkg/metrics"
)

// MessageConfig límites del canal de mensajes.
type MessageConfig struct {
	Timeout          time.Duration // por llamada al adaptador
	FailureThreshold int           // fallos consecutivos antes de suspender el adaptador; 0 desactiva
	Cooldown         time.Duration
	RatePerSecond    float64 // 0 desactiva el límite
	LogLimit         int
}

// ProcessMessageUseCase registra ventas a partir de mensajes de texto libre.
type ProcessMessageUseCase struct {
	llm      ports.LLMService
	products repository.ProductRepository
	recorder *RecordSaleUseCase
	timeout  time.Duration
	limiter  *rate.Limiter
	breaker  *breaker
	logs     *messageLog
	metrics  *metrics.SalesMetrics
	log      zerolog.Logger
	now      func() time.Time
}

// NewProcessMessageUseCase construye el caso de uso.
func NewProcessMessageUseCase(
	llm ports.LLMService,
	products repository.ProductRepository,
	recorder *RecordSaleUseCase,
	cfg MessageConfig,
	m *metrics.SalesMetrics,
	log zerolog.Logger,
) *ProcessMessageUseCase {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	return &ProcessMessageUseCase{
		llm:      llm,
		products: products,
		recorder: recorder,
		timeout:  cfg.Timeout,
		limiter:  rate.NewLimiter(limit, 1),
		breaker:  &breaker{threshold: cfg.FailureThreshold, cooldown: cfg.Cooldown},
		logs:     newMessageLog(cfg.LogLimit),
		metrics:  m,
		log:      log,
		now:      recorder.now,
	}
}

// ProcessMessage interpreta el mensaje, resuelve el artículo por coincidencia parcial
// de nombre y delega en el motor de ventas. Todo mensaje no vacío queda en el historial
// con la respuesta enviada, también cuando falla.
func (uc *ProcessMessageUseCase) ProcessMessage(ctx context.Context, text string, actor *entity.User) (*dto.MessageResultResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrInvalidRequest
	}
	entry := uc.logs.add(text, uc.now())

	fail := func(err error, product *entity.Product) (*dto.MessageResultResponse, error) {
		reply := failureReply(err, product)
		return &dto.MessageResultResponse{Log: uc.logs.resolve(entry, dto.MessageStatusError, reply, "")}, err
	}

	catalog, err := uc.products.List()
	if err != nil {
		return fail(fmt.Errorf("list products: %w", err), nil)
	}
	names := make([]string, 0, len(catalog))
	for _, p := range catalog {
		names = append(names, p.Name)
	}

	result, err := uc.extract(ctx, text, names)
	if err != nil {
		uc.metrics.IncRejected(string(SourceMessage), RejectReason(err))
		return fail(err, nil)
	}

	product := MatchProduct(catalog, result.ProductName)
	if product == nil {
		uc.metrics.IncRejected(string(SourceMessage), RejectReason(domain.ErrProductNotFound))
		uc.log.Warn().Str("candidate", result.ProductName).Msg("producto no encontrado en el catálogo")
		return fail(domain.ErrProductNotFound, nil)
	}

	price := product.SellPrice
	if result.Price != nil && *result.Price > 0 {
		price = *result.Price
	}
	method, ok := entity.ParsePaymentMethod(result.PaymentMethod)
	if !ok {
		method = entity.PaymentTransfer
	}

	tx, err := uc.recorder.RecordSale(ctx, SaleRequest{
		CustomerName:  result.CustomerName,
		ProductID:     product.ID,
		Price:         price,
		PaymentMethod: method,
		Source:        SourceMessage,
	}, actor)
	if err != nil {
		return fail(err, product)
	}

	logEntry := uc.logs.resolve(entry, dto.MessageStatusSuccess, successReply(tx), tx.ID)
	return &dto.MessageResultResponse{Log: logEntry, Transaction: ToTransactionResponse(tx)}, nil
}

// Logs historial de mensajes, el más reciente primero.
func (uc *ProcessMessageUseCase) Logs() []dto.MessageLogResponse {
	return uc.logs.list()
}

// extract llama al adaptador con timeout, límite de frecuencia y corte tras fallos
// consecutivos. Cualquier respuesta inutilizable es ErrExtractionFailed.
func (uc *ProcessMessageUseCase) extract(ctx context.Context, text string, names []string) (*dto.ExtractionResult, error) {
	if !uc.breaker.allow(uc.now()) {
		uc.metrics.ObserveExtraction("unavailable", 0)
		return nil, domain.ErrExtractionUnavailable
	}

	callCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if err := uc.limiter.Wait(callCtx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}

	start := time.Now()
	result, err := uc.llm.ExtractSale(callCtx, text, names)
	elapsed := time.Since(start)
	if err != nil {
		uc.breaker.failure(uc.now())
		uc.metrics.ObserveExtraction("error", elapsed)
		uc.log.Error().Err(err).Str("message", text).Msg("fallo del adaptador de extracción")
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}
	uc.breaker.success()

	if result == nil || !result.Success || strings.TrimSpace(result.ProductName) == "" {
		uc.metrics.ObserveExtraction("unparsed", elapsed)
		reason := ""
		if result != nil {
			reason = result.Error
		}
		uc.log.Warn().Str("message", text).Str("reason", reason).Msg("mensaje no reconocido como venta")
		return nil, domain.ErrExtractionFailed
	}
	uc.metrics.ObserveExtraction("success", elapsed)
	return result, nil
}

// MatchProduct devuelve el primer artículo (en orden de catálogo) cuyo nombre contiene
// al candidato o está contenido en él. La comparación distingue mayúsculas.
func MatchProduct(catalog []*entity.Product, candidate string) *entity.Product {
	if candidate == "" {
		return nil
	}
	for _, p := range catalog {
		if p.Name == "" {
			continue
		}
		if strings.Contains(p.Name, candidate) || strings.Contains(candidate, p.Name) {
			return p
		}
	}
	return nil
}

// ── Corte por fallos consecutivos ───────────────────────────────────────────

type breaker struct {
	mu        sync.Mutex
	threshold int
	cooldown  time.Duration
	failures  int
	openUntil time.Time
}

func (b *breaker) allow(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.threshold <= 0 {
		return true
	}
	return !now.Before(b.openUntil)
}

// failure abre el corte al alcanzar el umbral. Pasado el enfriamiento, un solo
// fallo más lo vuelve a abrir.
func (b *breaker) failure(now time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures++
	if b.threshold > 0 && b.failures >= b.threshold {
		b.openUntil = now.Add(b.cooldown)
	}
}

func (b *breaker) success() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = 0
	b.openUntil = time.Time{}
}

// ── Historial de mensajes ───────────────────────────────────────────────────

type messageLog struct {
	mu      sync.Mutex
	limit   int
	seq     int
	entries []*dto.MessageLogResponse // más reciente primero
}

func newMessageLog(limit int) *messageLog {
	if limit <= 0 {
		limit = 100
	}
	return &messageLog{limit: limit}
}

func (l *messageLog) add(text string, at time.Time) *dto.MessageLogResponse {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq++
	e := &dto.MessageLogResponse{
		ID:        fmt.Sprintf("m%d-%d", at.UnixMilli(), l.seq),
		Message:   text,
		Status:    dto.MessageStatusPending,
		CreatedAt: at,
	}
	l.entries = append([]*dto.MessageLogResponse{e}, l.entries...)
	if len(l.entries) > l.limit {
		l.entries = l.entries[:l.limit]
	}
	return e
}

func (l *messageLog) resolve(e *dto.MessageLogResponse, status, reply, txID string) dto.MessageLogResponse {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.Status = status
	e.Reply = reply
	e.TransactionID = txID
	return *e
}

func (l *messageLog) list() []dto.MessageLogResponse {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]dto.MessageLogResponse, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, *e)
	}
	return out
}
