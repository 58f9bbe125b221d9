package ports

import (
	"context"

	"github.com/jhoicas/wellcomputer-pos/internal/application/dto"
)

// ReportRenderer genera el documento binario de un reporte de ventas.
type ReportRenderer interface {
	Render(ctx context.Context, doc *dto.ReportDocument) ([]byte, error)
	ContentType() string
	Extension() string
}
