package analytics_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wellcomputer-pos/internal/application/analytics"
	"github.com/jhoicas/wellcomputer-pos/internal/application/dto"
	"github.com/jhoicas/wellcomputer-pos/internal/domain"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/entity"
	"github.com/jhoicas/wellcomputer-pos/internal/infrastructure/memory"
)

var fixedNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

var (
	owner     = &entity.User{ID: "u2", Name: "Budi Owner", Role: entity.RoleOwner}
	salesUser = &entity.User{ID: "u4", Name: "Andi Sales", Role: entity.RoleSales}
)

// newDashboard estado semilla más una venta de otro vendedor (Dewi).
func newDashboard(t *testing.T) (*analytics.DashboardUseCase, *memory.State) {
	t.Helper()
	state := memory.NewState(memory.SeedDataset(fixedNow))
	ledger := memory.NewTransactionRepository(state)
	require.NoError(t, ledger.Append(&entity.Transaction{
		ID: "t3", Date: fixedNow, CustomerID: "c3", CustomerName: "Rudi Hartono",
		ProductID: "p1", ProductName: "ASUS ROG Zephyrus G14", ProductCode: "AS-ROG-G14-01",
		StoreName: "Well Computer - Bandung", SalesID: "u5", SalesName: "Dewi Sales",
		Price: 24000000, PaymentMethod: entity.PaymentCredit,
	}))
	uc := analytics.NewDashboardUseCase(state, ledger, 0, zerolog.Nop(), analytics.WithClock(func() time.Time { return fixedNow }))
	return uc, state
}

func TestTransactions_VendedorSoloVeLasSuyas(t *testing.T) {
	uc, _ := newDashboard(t)

	own, err := uc.Transactions(salesUser, "")
	require.NoError(t, err)
	require.Len(t, own, 2)
	for _, tx := range own {
		assert.Equal(t, "u4", tx.SalesID)
	}

	all, err := uc.Transactions(owner, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "t3", all[0].ID)
}

func TestTransactions_Busqueda(t *testing.T) {
	uc, _ := newDashboard(t)

	cases := map[string][]string{
		"budi":      {"t1"},
		"macbook":   {"t2"},
		"as-rog":    {"t3", "t1"},
		"bandung":   {"t3"},
		"DEWI":      {"t3"},
		"T2":        {"t2"},
		"sin-match": {},
	}
	for q, want := range cases {
		t.Run(q, func(t *testing.T) {
			got, err := uc.Transactions(owner, q)
			require.NoError(t, err)
			ids := []string{}
			for _, tx := range got {
				ids = append(ids, tx.ID)
			}
			assert.Equal(t, want, ids)
		})
	}

	// La búsqueda nunca amplía lo visible.
	got, err := uc.Transactions(salesUser, "dewi")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetSummary_Propietario(t *testing.T) {
	uc, _ := newDashboard(t)

	s, err := uc.GetSummary(t.Context(), owner)
	require.NoError(t, err)
	assert.Equal(t, int64(66500000), s.TotalRevenue)
	assert.Equal(t, 3, s.UnitsSold)
	assert.Equal(t, "22166666.67", s.AverageTicket.String())
	assert.Equal(t, 1, s.LowStockCount) // Lenovo con 3

	require.Len(t, s.SalesByProduct, 2)
	assert.Equal(t, dto.ProductSalesDTO{ProductName: "ASUS ROG Zephyrus G14", Units: 2, Revenue: 49000000}, s.SalesByProduct[0])

	require.Len(t, s.Leaderboard, 2)
	assert.Equal(t, "Andi Sales", s.Leaderboard[0].SalesName)
	assert.Equal(t, 2, s.Leaderboard[0].Units)
	assert.Len(t, s.RecentSales, 3)

	require.Len(t, s.DailyTrend, 7)
	assert.Equal(t, dto.DailyRevenueDTO{Date: "2025-03-04"}, s.DailyTrend[0])
	assert.Equal(t, dto.DailyRevenueDTO{Date: "2025-03-08", Units: 1, Revenue: 17500000}, s.DailyTrend[4])
	assert.Equal(t, dto.DailyRevenueDTO{Date: "2025-03-09", Units: 1, Revenue: 25000000}, s.DailyTrend[5])
	assert.Equal(t, dto.DailyRevenueDTO{Date: "2025-03-10", Units: 1, Revenue: 24000000}, s.DailyTrend[6])
}

func TestGetSummary_RankingLimitadoACinco(t *testing.T) {
	uc, state := newDashboard(t)
	ledger := memory.NewTransactionRepository(state)
	for i := range 6 {
		id := fmt.Sprintf("x%d", i)
		require.NoError(t, ledger.Append(&entity.Transaction{
			ID: id, Date: fixedNow.AddDate(0, 0, -10), ProductID: "p1", ProductName: "ASUS ROG Zephyrus G14",
			SalesID: "s-" + id, SalesName: "Vendedor " + id, Price: 1000, PaymentMethod: entity.PaymentCash,
		}))
	}

	s, err := uc.GetSummary(t.Context(), owner)
	require.NoError(t, err)
	require.Len(t, s.Leaderboard, 5)
	assert.Equal(t, "Andi Sales", s.Leaderboard[0].SalesName)
	// Fuera de la ventana de 7 días.
	assert.Equal(t, int64(24000000), s.DailyTrend[6].Revenue)
}

// ─── Lectura consistente ──────────────────────────────────────────────────────

// countingState cuenta las copias del estado pedidas por el caso de uso.
type countingState struct {
	ds    entity.Dataset
	dumps int
}

func (s *countingState) Dump(context.Context) (entity.Dataset, error) {
	s.dumps++
	return s.ds, nil
}

func TestGetSummary_UnaSolaCopiaDelEstado(t *testing.T) {
	// Venta ya en el libro y stock ya descontado: ambos vienen de la misma copia.
	ds := entity.Dataset{
		Products: []entity.Product{{ID: "p1", Name: "ASUS ROG Zephyrus G14", Stock: 4, BuyPrice: 22000000, SellPrice: 25000000}},
		Transactions: []entity.Transaction{{
			ID: "t1", Date: fixedNow, ProductID: "p1", ProductName: "ASUS ROG Zephyrus G14",
			SalesID: "u4", SalesName: "Andi Sales", Price: 25000000, PaymentMethod: entity.PaymentCash,
		}},
	}
	state := &countingState{ds: ds}
	// El libro del repositorio está vacío: el resumen no lo consulta.
	empty := memory.NewTransactionRepository(memory.NewState(entity.Dataset{}))
	uc := analytics.NewDashboardUseCase(state, empty, 0, zerolog.Nop())

	s, err := uc.GetSummary(t.Context(), owner)
	require.NoError(t, err)
	assert.Equal(t, 1, state.dumps)
	assert.Equal(t, int64(25000000), s.TotalRevenue)
	assert.Equal(t, 1, s.LowStockCount)

	r, err := uc.GetReport(t.Context(), owner)
	require.NoError(t, err)
	assert.Equal(t, 2, state.dumps)
	assert.Equal(t, int64(88000000), r.InventoryValue)
	assert.Equal(t, int64(3000000), r.EstimatedMargin)
}

func TestGetSummary_VendedorSinRanking(t *testing.T) {
	uc, _ := newDashboard(t)

	s, err := uc.GetSummary(t.Context(), salesUser)
	require.NoError(t, err)
	assert.Equal(t, int64(42500000), s.TotalRevenue)
	assert.Equal(t, 2, s.UnitsSold)
	assert.Nil(t, s.Leaderboard)
}

func TestGetSummary_SinVentas(t *testing.T) {
	state := memory.NewState(entity.Dataset{})
	uc := analytics.NewDashboardUseCase(state, memory.NewTransactionRepository(state), 0, zerolog.Nop())

	s, err := uc.GetSummary(t.Context(), owner)
	require.NoError(t, err)
	assert.True(t, s.AverageTicket.IsZero())
	assert.Empty(t, s.SalesByProduct)
}

func TestGetSummary_SinActor(t *testing.T) {
	uc, _ := newDashboard(t)
	_, err := uc.GetSummary(t.Context(), nil)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestGetReport(t *testing.T) {
	uc, _ := newDashboard(t)

	r, err := uc.GetReport(t.Context(), owner)
	require.NoError(t, err)

	require.Len(t, r.RevenueTrend, 3)
	assert.Equal(t, int64(17500000), r.RevenueTrend[0].Amount)
	assert.Equal(t, int64(24000000), r.RevenueTrend[2].Amount)

	assert.Equal(t, "ASUS ROG Zephyrus G14", r.BestSellers[0].ProductName)
	assert.Equal(t, "Andi Sales", r.SalesPerformance[0].SalesName)
	assert.Equal(t, int64(42500000), r.SalesPerformance[0].Revenue)

	assert.Equal(t, int64(66500000), r.GrandTotal)
	assert.Equal(t, 3, r.TotalUnits)
	// (25M-22M) + (17.5M-15M) + (24M-22M)
	assert.Equal(t, int64(7500000), r.EstimatedMargin)
	assert.Equal(t, 28, r.StockTotal)

	require.Len(t, r.Margins, 4)
	assert.Equal(t, int64(3000000), r.Margins[0].Margin)
	assert.Equal(t, "12", r.Margins[0].MarginPercent.String())
}

type fakeRenderer struct {
	got *dto.ReportDocument
}

func (r *fakeRenderer) Render(_ context.Context, doc *dto.ReportDocument) ([]byte, error) {
	r.got = doc
	return []byte("ok"), nil
}
func (r *fakeRenderer) ContentType() string { return "text/plain" }
func (r *fakeRenderer) Extension() string   { return "txt" }

func TestExport_UsaElLibroVisible(t *testing.T) {
	uc, _ := newDashboard(t)
	r := &fakeRenderer{}

	out, err := uc.Export(t.Context(), salesUser, r)
	require.NoError(t, err)
	assert.Equal(t, []byte("ok"), out)
	require.Len(t, r.got.Rows, 2)
	assert.Equal(t, int64(42500000), r.got.GrandTotal)
	assert.Equal(t, "Andi Sales", r.got.GeneratedBy)
	assert.Equal(t, "TRANSFER", r.got.Rows[0].Method)
}
