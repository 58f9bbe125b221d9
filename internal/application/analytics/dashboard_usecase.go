// Package analytics contiene los casos de uso de lectura del libro de ventas:
// listado y búsqueda, dashboard, reportes y su exportación.
//
// Todas las lecturas pasan por access.VisibleLedger: un vendedor solo ve sus ventas.
package analytics

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/wellcomputer-pos/internal/application/dto"
	"github.com/jhoicas/wellcomputer-pos/internal/application/ports"
	"github.com/jhoicas/wellcomputer-pos/internal/application/sales"
	"github.com/jhoicas/wellcomputer-pos/internal/domain"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/access"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/entity"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/repository"
)

const (
	defaultLowStockThreshold = 5
	dashboardRecentSales     = 5 // ventas en el widget "últimas ventas"
	dashboardLeaderboardSize = 5
	dashboardTrendDays       = 7
)

// StateReader copia catálogo y libro dentro de una misma sección crítica.
type StateReader interface {
	Dump(ctx context.Context) (entity.Dataset, error)
}

// DashboardUseCase genera el dashboard y los reportes sobre las ventas visibles del actor.
type DashboardUseCase struct {
	state             StateReader
	ledger            repository.TransactionRepository
	lowStockThreshold int
	log               zerolog.Logger
	now               func() time.Time
}

// Option configura el caso de uso.
type Option func(*DashboardUseCase)

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(uc *DashboardUseCase) { uc.now = now }
}

// NewDashboardUseCase construye el caso de uso. lowStockThreshold <= 0 usa 5.
func NewDashboardUseCase(
	state StateReader,
	ledger repository.TransactionRepository,
	lowStockThreshold int,
	log zerolog.Logger,
	opts ...Option,
) *DashboardUseCase {
	if lowStockThreshold <= 0 {
		lowStockThreshold = defaultLowStockThreshold
	}
	uc := &DashboardUseCase{
		state:             state,
		ledger:            ledger,
		lowStockThreshold: lowStockThreshold,
		log:               log,
		now:               func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// VisibleLedger ventas que el actor puede ver, de la más reciente a la más antigua.
func (uc *DashboardUseCase) VisibleLedger(actor *entity.User) ([]*entity.Transaction, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	entries, err := uc.ledger.List()
	if err != nil {
		return nil, fmt.Errorf("list ledger: %w", err)
	}
	return access.VisibleLedger(actor.Role, actor.ID, entries), nil
}

// Transactions lista las ventas visibles. q filtra sin distinguir mayúsculas por
// cliente, producto, código, tienda, ID y vendedor.
func (uc *DashboardUseCase) Transactions(actor *entity.User, q string) ([]dto.TransactionResponse, error) {
	visible, err := uc.VisibleLedger(actor)
	if err != nil {
		return nil, err
	}
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]dto.TransactionResponse, 0, len(visible))
	for _, t := range visible {
		if q != "" && !matches(t, q) {
			continue
		}
		out = append(out, *sales.ToTransactionResponse(t))
	}
	return out, nil
}

func matches(t *entity.Transaction, q string) bool {
	for _, field := range []string{t.CustomerName, t.ProductName, t.ProductCode, t.StoreName, t.ID, t.SalesName} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// GetSummary construye el dashboard sobre una única copia del estado.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, actor *entity.User) (*dto.DashboardSummaryDTO, error) {
	products, visible, err := uc.load(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	revenue := totalRevenue(visible)
	lowStock := 0
	for _, p := range products {
		if p.Stock < uc.lowStockThreshold {
			lowStock++
		}
	}

	byProduct := salesByProduct(visible)
	slices.SortStableFunc(byProduct, func(a, b dto.ProductSalesDTO) int { return cmp.Compare(b.Revenue, a.Revenue) })

	summary := &dto.DashboardSummaryDTO{
		TotalRevenue:   revenue,
		UnitsSold:      len(visible),
		AverageTicket:  averageTicket(revenue, len(visible)),
		LowStockCount:  lowStock,
		SalesByProduct: byProduct,
		DailyTrend:     dailyTrend(visible, uc.now(), dashboardTrendDays),
		RecentSales:    make([]dto.TransactionResponse, 0, dashboardRecentSales),
	}
	if access.CanSeeLeaderboard(actor.Role) {
		board := salesPerformance(visible)
		slices.SortStableFunc(board, func(a, b dto.SalesRepStatsDTO) int { return cmp.Compare(b.Units, a.Units) })
		summary.Leaderboard = board[:min(dashboardLeaderboardSize, len(board))]
	}
	for _, t := range visible[:min(dashboardRecentSales, len(visible))] {
		summary.RecentSales = append(summary.RecentSales, *sales.ToTransactionResponse(t))
	}
	return summary, nil
}

// GetReport tendencias, más vendidos, desempeño por vendedor y márgenes del catálogo.
func (uc *DashboardUseCase) GetReport(ctx context.Context, actor *entity.User) (*dto.ReportDTO, error) {
	products, visible, err := uc.load(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}

	// ── Tendencia cronológica ─────────────────────────────────────────────────
	trend := make([]dto.TrendPointDTO, 0, len(visible))
	for i := len(visible) - 1; i >= 0; i-- {
		trend = append(trend, dto.TrendPointDTO{Date: visible[i].Date, Amount: visible[i].Price})
	}

	best := salesByProduct(visible)
	slices.SortStableFunc(best, func(a, b dto.ProductSalesDTO) int { return cmp.Compare(b.Units, a.Units) })

	perf := salesPerformance(visible)
	slices.SortStableFunc(perf, func(a, b dto.SalesRepStatsDTO) int { return cmp.Compare(b.Revenue, a.Revenue) })

	// ── Inventario y márgenes ─────────────────────────────────────────────────
	buyPrice := make(map[string]int64, len(products))
	var inventoryValue int64
	stockTotal := 0
	margins := make([]dto.ProductMarginDTO, 0, len(products))
	for _, p := range products {
		buyPrice[p.ID] = p.BuyPrice
		inventoryValue += p.BuyPrice * int64(p.Stock)
		stockTotal += p.Stock
		margins = append(margins, dto.ProductMarginDTO{
			ProductID:     p.ID,
			ProductName:   p.Name,
			Margin:        p.SellPrice - p.BuyPrice,
			MarginPercent: marginPercent(p.BuyPrice, p.SellPrice),
		})
	}
	var estimated int64
	for _, t := range visible {
		// Producto eliminado: se toma costo cero.
		estimated += t.Price - buyPrice[t.ProductID]
	}

	return &dto.ReportDTO{
		RevenueTrend:     trend,
		BestSellers:      best,
		SalesPerformance: perf,
		GrandTotal:       totalRevenue(visible),
		TotalUnits:       len(visible),
		EstimatedMargin:  estimated,
		InventoryValue:   inventoryValue,
		StockTotal:       stockTotal,
		Margins:          margins,
	}, nil
}

// BuildDocument filas del reporte exportable (ventas visibles, más reciente primero).
func (uc *DashboardUseCase) BuildDocument(actor *entity.User) (*dto.ReportDocument, error) {
	visible, err := uc.VisibleLedger(actor)
	if err != nil {
		return nil, err
	}
	doc := &dto.ReportDocument{
		Title:       "Well Computer - Sales Report",
		GeneratedAt: uc.now(),
		GeneratedBy: actor.Name,
		Rows:        make([]dto.ReportRow, 0, len(visible)),
	}
	for _, t := range visible {
		doc.Rows = append(doc.Rows, dto.ReportRow{
			InvoiceID: t.ID,
			Date:      t.Date,
			Customer:  t.CustomerName,
			Product:   t.ProductName,
			SalesRep:  t.SalesName,
			Method:    string(t.PaymentMethod),
			Amount:    t.Price,
		})
		doc.GrandTotal += t.Price
	}
	return doc, nil
}

// Export genera el documento con el renderer indicado (PDF o XLSX).
func (uc *DashboardUseCase) Export(ctx context.Context, actor *entity.User, renderer ports.ReportRenderer) ([]byte, error) {
	doc, err := uc.BuildDocument(actor)
	if err != nil {
		return nil, err
	}
	out, err := renderer.Render(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", renderer.Extension(), err)
	}
	uc.log.Info().
		Str("user_id", actor.ID).
		Str("format", renderer.Extension()).
		Int("rows", len(doc.Rows)).
		Msg("reporte exportado")
	return out, nil
}

// load copia catálogo y libro de una vez: una venta aparece junto con su descuento de stock.
func (uc *DashboardUseCase) load(ctx context.Context, actor *entity.User) ([]*entity.Product, []*entity.Transaction, error) {
	if actor == nil {
		return nil, nil, domain.ErrUnauthorized
	}
	ds, err := uc.state.Dump(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("leer estado: %w", err)
	}
	products := make([]*entity.Product, len(ds.Products))
	for i := range ds.Products {
		products[i] = &ds.Products[i]
	}
	entries := make([]*entity.Transaction, len(ds.Transactions))
	for i := range ds.Transactions {
		entries[i] = &ds.Transactions[i]
	}
	return products, access.VisibleLedger(actor.Role, actor.ID, entries), nil
}

// dailyTrend ingresos por día (UTC) de los últimos days días hasta today, incluidos los días sin ventas.
func dailyTrend(entries []*entity.Transaction, today time.Time, days int) []dto.DailyRevenueDTO {
	today = today.UTC()
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -(days - 1))
	out := make([]dto.DailyRevenueDTO, days)
	for i := range out {
		out[i].Date = start.AddDate(0, 0, i).Format(time.DateOnly)
	}
	for _, t := range entries {
		d := t.Date.UTC()
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		i := int(day.Sub(start).Hours() / 24)
		if i < 0 || i >= days {
			continue
		}
		out[i].Units++
		out[i].Revenue += t.Price
	}
	return out
}

func totalRevenue(entries []*entity.Transaction) int64 {
	var total int64
	for _, t := range entries {
		total += t.Price
	}
	return total
}

// salesByProduct agrupa por nombre de producto en orden de primera aparición.
func salesByProduct(entries []*entity.Transaction) []dto.ProductSalesDTO {
	index := make(map[string]int)
	out := []dto.ProductSalesDTO{}
	for _, t := range entries {
		i, ok := index[t.ProductName]
		if !ok {
			i = len(out)
			index[t.ProductName] = i
			out = append(out, dto.ProductSalesDTO{ProductName: t.ProductName})
		}
		out[i].Units++
		out[i].Revenue += t.Price
	}
	return out
}

// salesPerformance agrupa por vendedor en orden de primera aparición.
func salesPerformance(entries []*entity.Transaction) []dto.SalesRepStatsDTO {
	index := make(map[string]int)
	out := []dto.SalesRepStatsDTO{}
	for _, t := range entries {
		i, ok := index[t.SalesID]
		if !ok {
			i = len(out)
			index[t.SalesID] = i
			out = append(out, dto.SalesRepStatsDTO{SalesID: t.SalesID, SalesName: t.SalesName})
		}
		out[i].Units++
		out[i].Revenue += t.Price
	}
	return out
}

func averageTicket(revenue int64, units int) decimal.Decimal {
	if units == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(revenue).Div(decimal.NewFromInt(int64(units))).Round(2)
}

func marginPercent(buy, sell int64) decimal.Decimal {
	if sell <= 0 {
		return decimal.Zero
	}
	margin := decimal.NewFromInt(sell - buy)
	return margin.Div(decimal.NewFromInt(sell)).Mul(decimal.NewFromInt(100)).Round(2)
}
