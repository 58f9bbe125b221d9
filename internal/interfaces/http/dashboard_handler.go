package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/wellcomputer-pos/internal/application/analytics"
	"github.com/jhoicas/wellcomputer-pos/internal/application/ports"
)

// DashboardHandler maneja los endpoints de dashboard y reportes.
type DashboardHandler struct {
	uc   *appanalytics.DashboardUseCase
	pdf  ports.ReportRenderer
	xlsx ports.ReportRenderer
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, pdf, xlsx ports.ReportRenderer) *DashboardHandler {
	return &DashboardHandler{uc: uc, pdf: pdf, xlsx: xlsx}
}

// GetSummary godoc
// @Summary      Resumen del dashboard
// @Description  Ingresos, unidades, stock bajo, tendencia de 7 días, top productos y ranking de vendedores.
// @Description  SALES solo ve sus ventas y no recibe ranking.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext(), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// GetReport godoc
// @Summary      Reporte de ventas
// @Description  Ventas por marca, desempeño por vendedor, valor de inventario y márgenes por artículo.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReportDTO
// @Router       /api/reports [get]
func (h *DashboardHandler) GetReport(c *fiber.Ctx) error {
	report, err := h.uc.GetReport(c.UserContext(), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

// ExportPDF godoc
// @Summary      Exportar reporte en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/export.pdf [get]
func (h *DashboardHandler) ExportPDF(c *fiber.Ctx) error {
	return h.export(c, h.pdf)
}

// ExportXLSX godoc
// @Summary      Exportar reporte en Excel
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/reports/export.xlsx [get]
func (h *DashboardHandler) ExportXLSX(c *fiber.Ctx) error {
	return h.export(c, h.xlsx)
}

func (h *DashboardHandler) export(c *fiber.Ctx, r ports.ReportRenderer) error {
	out, err := h.uc.Export(c.UserContext(), GetActor(c), r)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, r.ContentType())
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="sales-report.%s"`, r.Extension()))
	return c.Send(out)
}
