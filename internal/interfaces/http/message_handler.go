package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wellcomputer-pos/internal/application/dto"
	"github.com/jhoicas/wellcomputer-pos/internal/application/sales"
)

// MessageHandler canal de mensajes de venta en texto libre (área whatsapp).
type MessageHandler struct {
	uc *sales.ProcessMessageUseCase
}

// NewMessageHandler construye el handler.
func NewMessageHandler(uc *sales.ProcessMessageUseCase) *MessageHandler {
	return &MessageHandler{uc: uc}
}

// Process godoc
// @Summary      Procesar mensaje de venta
// @Description  Interpreta el mensaje con IA y registra la venta. La respuesta incluye siempre
// @Description  la entrada del historial con el texto de respuesta, también cuando falla.
// @Tags         whatsapp
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProcessMessageRequest  true  "Mensaje"
// @Success      201   {object}  dto.MessageResultResponse
// @Failure      400   {object}  dto.MessageResultResponse
// @Failure      404   {object}  dto.MessageResultResponse
// @Failure      409   {object}  dto.MessageResultResponse
// @Failure      502   {object}  dto.MessageResultResponse
// @Failure      503   {object}  dto.MessageResultResponse
// @Router       /api/whatsapp/messages [post]
func (h *MessageHandler) Process(c *fiber.Ctx) error {
	var in dto.ProcessMessageRequest
	if e := bind(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.uc.ProcessMessage(c.UserContext(), in.Message, GetActor(c))
	if err != nil {
		if out == nil {
			return respondError(c, err)
		}
		// el registro del mensaje viaja junto al error
		status, _ := errorStatus(err)
		return c.Status(status).JSON(out)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Logs godoc
// @Summary      Historial de mensajes procesados
// @Tags         whatsapp
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.MessageLogResponse]
// @Router       /api/whatsapp/logs [get]
func (h *MessageHandler) Logs(c *fiber.Ctx) error {
	return c.JSON(dto.NewListResponse(h.uc.Logs()))
}
