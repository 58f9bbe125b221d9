// Package sales implementa el motor de registro de ventas y sus dos entradas:
// el formulario manual y los mensajes de texto interpretados por el adaptador de IA.
//
// Toda venta descuenta exactamente una unidad del catálogo y agrega una entrada al
// libro dentro de la misma sección crítica: o pasan ambas cosas o ninguna.
package sales

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/wellcomputer-pos/internal/domain"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/entity"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/repository"
	"github.com/jhoicas/wellcomputer-pos/pkg/metrics"
)

// Source origen de una venta.
type Source string

const (
	SourceManual  Source = "MANUAL"
	SourceMessage Source = "MESSAGE"
)

// SaleRequest datos de una venta. Price es el monto cobrado, que puede diferir del
// precio de lista del artículo.
type SaleRequest struct {
	CustomerName  string
	ProductID     string
	Price         int64
	PaymentMethod entity.PaymentMethod
	Note          *string
	Source        Source
}

// RecordSaleUseCase motor de ventas.
type RecordSaleUseCase struct {
	txRunner TxRunner
	metrics  *metrics.SalesMetrics
	log      zerolog.Logger
	now      func() time.Time
	newID    func() string
}

// Option configura el motor.
type Option func(*RecordSaleUseCase)

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(uc *RecordSaleUseCase) { uc.now = now }
}

// WithIDGenerator reemplaza el generador de identificadores.
func WithIDGenerator(fn func() string) Option {
	return func(uc *RecordSaleUseCase) { uc.newID = fn }
}

// NewRecordSaleUseCase construye el caso de uso.
func NewRecordSaleUseCase(txRunner TxRunner, m *metrics.SalesMetrics, log zerolog.Logger, opts ...Option) *RecordSaleUseCase {
	uc := &RecordSaleUseCase{
		txRunner: txRunner,
		metrics:  m,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// RecordSale valida la solicitud, resuelve el artículo y, en una sola sección crítica,
// agrega la entrada al libro y descuenta una unidad de stock.
func (uc *RecordSaleUseCase) RecordSale(ctx context.Context, req SaleRequest, actor *entity.User) (*entity.Transaction, error) {
	if err := validateRequest(req, actor); err != nil {
		uc.reject(req, err)
		return nil, err
	}

	var created *entity.Transaction
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		storeRepo repository.StoreRepository,
		ledgerRepo repository.TransactionRepository,
	) error {
		product, err := productRepo.GetByID(req.ProductID)
		if err != nil {
			return fmt.Errorf("get product: %w", err)
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if !product.Active {
			return domain.ErrInactiveProduct
		}
		if product.Stock <= 0 {
			return domain.ErrOutOfStock
		}

		// Tienda eliminada: el nombre queda vacío, no es fatal.
		storeName := ""
		store, err := storeRepo.GetByID(product.StoreID)
		if err != nil {
			return fmt.Errorf("get store: %w", err)
		}
		if store != nil {
			storeName = store.Name
		}

		tx := &entity.Transaction{
			ID:            "t" + uc.newID(),
			Date:          uc.now(),
			CustomerID:    "c" + uc.newID(),
			CustomerName:  strings.TrimSpace(req.CustomerName),
			ProductID:     product.ID,
			ProductName:   product.Name,
			ProductCode:   product.Code,
			StoreName:     storeName,
			SalesID:       actor.ID,
			SalesName:     actor.Name,
			Price:         req.Price,
			PaymentMethod: req.PaymentMethod,
			Note:          req.Note,
		}
		if err := ledgerRepo.Append(tx); err != nil {
			return fmt.Errorf("append transaction: %w", err)
		}

		product.Stock--
		if err := productRepo.Update(product); err != nil {
			return fmt.Errorf("update stock: %w", err)
		}
		created = tx
		return nil
	})
	if err != nil {
		uc.reject(req, err)
		return nil, err
	}

	uc.metrics.IncRecorded(string(req.Source))
	uc.log.Info().
		Str("source", string(req.Source)).
		Str("transaction_id", created.ID).
		Str("product_id", created.ProductID).
		Str("sales_id", created.SalesID).
		Int64("price", created.Price).
		Msg("venta registrada")
	return created, nil
}

func validateRequest(req SaleRequest, actor *entity.User) error {
	if actor == nil {
		return domain.ErrUnauthorized
	}
	if strings.TrimSpace(req.CustomerName) == "" || strings.TrimSpace(req.ProductID) == "" {
		return domain.ErrInvalidRequest
	}
	if req.Price < 0 {
		return domain.ErrInvalidRequest
	}
	if _, ok := entity.ParsePaymentMethod(string(req.PaymentMethod)); !ok {
		return domain.ErrInvalidRequest
	}
	return nil
}

func (uc *RecordSaleUseCase) reject(req SaleRequest, err error) {
	reason := RejectReason(err)
	uc.metrics.IncRejected(string(req.Source), reason)
	uc.log.Warn().
		Err(err).
		Str("source", string(req.Source)).
		Str("product_id", req.ProductID).
		Str("reason", reason).
		Msg("venta rechazada")
}

// RejectReason etiqueta corta del motivo de rechazo, usada en métricas y logs.
func RejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrOutOfStock):
		return "out_of_stock"
	case errors.Is(err, domain.ErrInactiveProduct):
		return "inactive_product"
	case errors.Is(err, domain.ErrProductNotFound):
		return "product_not_found"
	case errors.Is(err, domain.ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, domain.ErrExtractionUnavailable):
		return "extraction_unavailable"
	case errors.Is(err, domain.ErrExtractionFailed):
		return "extraction_failed"
	case errors.Is(err, domain.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "canceled"
	}
	return "internal"
}
