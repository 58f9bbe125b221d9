package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary, calculada sobre
// las ventas visibles para el usuario.
type DashboardSummaryDTO struct {
	TotalRevenue   int64                 `json:"totalRevenue"`
	UnitsSold      int                   `json:"unitsSold"`
	AverageTicket  decimal.Decimal       `json:"averageTicket"`
	LowStockCount  int                   `json:"lowStockCount"`
	SalesByProduct []ProductSalesDTO     `json:"salesByProduct"`
	Leaderboard    []SalesRepStatsDTO    `json:"leaderboard,omitempty"` // solo OWNER, ADMIN y SUPERADMIN, top 5
	DailyTrend     []DailyRevenueDTO     `json:"dailyTrend"`            // últimos 7 días
	RecentSales    []TransactionResponse `json:"recentSales"`
}

// DailyRevenueDTO ventas de un día (UTC, formato YYYY-MM-DD).
type DailyRevenueDTO struct {
	Date    string `json:"date"`
	Units   int    `json:"units"`
	Revenue int64  `json:"revenue"`
}

// ProductSalesDTO unidades e ingresos por producto.
type ProductSalesDTO struct {
	ProductName string `json:"productName"`
	Units       int    `json:"units"`
	Revenue     int64  `json:"revenue"`
}

// SalesRepStatsDTO desempeño de un vendedor.
type SalesRepStatsDTO struct {
	SalesID   string `json:"salesId"`
	SalesName string `json:"salesName"`
	Units     int    `json:"units"`
	Revenue   int64  `json:"revenue"`
}

// TrendPointDTO venta individual en orden cronológico.
type TrendPointDTO struct {
	Date   time.Time `json:"date"`
	Amount int64     `json:"amount"`
}

// ProductMarginDTO margen unitario de un artículo del catálogo.
type ProductMarginDTO struct {
	ProductID     string          `json:"productId"`
	ProductName   string          `json:"productName"`
	Margin        int64           `json:"margin"`
	MarginPercent decimal.Decimal `json:"marginPercent"`
}

// ReportDTO respuesta de GET /api/reports.
type ReportDTO struct {
	RevenueTrend     []TrendPointDTO    `json:"revenueTrend"`
	BestSellers      []ProductSalesDTO  `json:"bestSellers"`
	SalesPerformance []SalesRepStatsDTO `json:"salesPerformance"`
	GrandTotal       int64              `json:"grandTotal"`
	TotalUnits       int                `json:"totalUnits"`
	EstimatedMargin  int64              `json:"estimatedMargin"`
	InventoryValue   int64              `json:"inventoryValue"`
	StockTotal       int                `json:"stockTotal"`
	Margins          []ProductMarginDTO `json:"margins"`
}

// ReportDocument datos que consumen los generadores de PDF y XLSX.
type ReportDocument struct {
	Title       string
	GeneratedAt time.Time
	GeneratedBy string
	Rows        []ReportRow
	GrandTotal  int64
}

// ReportRow fila del reporte exportado.
type ReportRow struct {
	InvoiceID string
	Date      time.Time
	Customer  string
	Product   string
	SalesRep  string
	Method    string
	Amount    int64
}
