package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wellcomputer-pos/internal/application/dto"
	"github.com/jhoicas/wellcomputer-pos/internal/application/usecase"
)

// BackupHandler exportación, restauración y archivo de backups (área backup).
type BackupHandler struct {
	uc *usecase.BackupUseCase
}

// NewBackupHandler construye el handler.
func NewBackupHandler(uc *usecase.BackupUseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// Export godoc
// @Summary      Descargar backup
// @Description  Documento JSON con tiendas, productos, ventas y usuarios.
// @Tags         backup
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Snapshot
// @Router       /api/backup/export [get]
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	snap, err := h.uc.Export(c.UserContext(), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	name := fmt.Sprintf("wellcomputer-backup-%s.json", snap.Timestamp.Format("2006-01-02"))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, name))
	return c.JSON(snap)
}

// Import godoc
// @Summary      Restaurar backup
// @Description  Reemplaza todo el estado con el documento recibido. Solo SUPERADMIN.
// @Tags         backup
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.Snapshot  true  "Documento de backup"
// @Success      200   {object}  dto.SnapshotInfo
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/backup/import [post]
func (h *BackupHandler) Import(c *fiber.Ctx) error {
	info, err := h.uc.Import(c.UserContext(), GetActor(c).Role, c.Body())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(info)
}

// Archive godoc
// @Summary      Archivar el estado actual
// @Tags         backup
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.SnapshotInfo
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/backup/archive [post]
func (h *BackupHandler) Archive(c *fiber.Ctx) error {
	info, err := h.uc.Archive(c.UserContext(), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(info)
}

// ListArchive godoc
// @Summary      Backups archivados
// @Tags         backup
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.SnapshotInfo]
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/backup/archive [get]
func (h *BackupHandler) ListArchive(c *fiber.Ctx) error {
	list, err := h.uc.ListArchive(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewListResponse(list))
}
