package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wellcomputer-pos/internal/application/dto"
	"github.com/jhoicas/wellcomputer-pos/internal/application/usecase"
)

// AssistantHandler preguntas libres sobre stock y ventas.
type AssistantHandler struct {
	uc *usecase.AssistantUseCase
}

// NewAssistantHandler construye el handler.
func NewAssistantHandler(uc *usecase.AssistantUseCase) *AssistantHandler {
	return &AssistantHandler{uc: uc}
}

// Ask godoc
// @Summary      Preguntar al asistente
// @Description  Responde con el catálogo y las últimas ventas visibles para el usuario.
// @Tags         assistant
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AskRequest  true  "Pregunta"
// @Success      200   {object}  dto.AskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/assistant/ask [post]
func (h *AssistantHandler) Ask(c *fiber.Ctx) error {
	var in dto.AskRequest
	if e := bind(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.uc.Ask(c.UserContext(), GetActor(c), in.Question)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
