package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wellcomputer-pos/internal/application/analytics"
	"github.com/jhoicas/wellcomputer-pos/internal/application/dto"
	"github.com/jhoicas/wellcomputer-pos/internal/application/sales"
	"github.com/jhoicas/wellcomputer-pos/internal/application/usecase"
	"github.com/jhoicas/wellcomputer-pos/internal/domain"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/access"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/entity"
)

// TransactionHandler libro de ventas y formulario de venta manual (área transactions).
type TransactionHandler struct {
	recorder  *sales.RecordSaleUseCase
	products  *usecase.ProductUseCase
	dashboard *analytics.DashboardUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(recorder *sales.RecordSaleUseCase, products *usecase.ProductUseCase, dashboard *analytics.DashboardUseCase) *TransactionHandler {
	return &TransactionHandler{recorder: recorder, products: products, dashboard: dashboard}
}

// Create godoc
// @Summary      Registrar venta manual
// @Description  Solo SALES. Descuenta una unidad del artículo y agrega la venta al libro.
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	actor := GetActor(c)
	if !access.CanRecordManualSale(actor.Role) {
		return respondError(c, domain.ErrActionForbidden)
	}
	var in dto.CreateTransactionRequest
	if e := bind(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	method, _ := entity.ParsePaymentMethod(in.PaymentMethod)
	tx, err := h.recorder.RecordSale(c.UserContext(), sales.SaleRequest{
		CustomerName:  in.CustomerName,
		ProductID:     in.ProductID,
		Price:         *in.Price,
		PaymentMethod: method,
		Note:          in.Note,
		Source:        sales.SourceManual,
	}, actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sales.ToTransactionResponse(tx))
}

// List godoc
// @Summary      Libro de ventas visible
// @Description  SALES solo ve sus ventas. q busca en cliente, producto, código, tienda, id y vendedor.
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        q    query  string  false  "Texto a buscar"
// @Success      200  {object}  dto.ListResponse[dto.TransactionResponse]
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	out, err := h.dashboard.Transactions(GetActor(c), c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewListResponse(out))
}

// FormOptions godoc
// @Summary      Opciones del formulario de venta
// @Description  Artículos activos con stock, con el nombre de su tienda, y los métodos de pago.
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SaleFormOptionsResponse
// @Router       /api/transactions/form-options [get]
func (h *TransactionHandler) FormOptions(c *fiber.Ctx) error {
	out, err := h.products.SaleFormOptions()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
