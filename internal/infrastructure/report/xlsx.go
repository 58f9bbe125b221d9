package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/tealeg/xlsx/v3"

	"github.com/jhoicas/wellcomputer-pos/internal/application/dto"
	"github.com/jhoicas/wellcomputer-pos/internal/application/ports"
)

var _ ports.ReportRenderer = (*XLSXRenderer)(nil)

const sheetName = "Sales"

// XLSXRenderer implementa ports.ReportRenderer con una hoja de cálculo en memoria.
type XLSXRenderer struct{}

// NewXLSXRenderer construye el generador.
func NewXLSXRenderer() *XLSXRenderer { return &XLSXRenderer{} }

func (r *XLSXRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
func (r *XLSXRenderer) Extension() string { return "xlsx" }

// Render arma la hoja: cabecera, una fila por venta y la fila TOTAL. Amount va como número.
func (r *XLSXRenderer) Render(ctx context.Context, doc *dto.ReportDocument) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("xlsx: agregar hoja: %w", err)
	}

	header := sheet.AddRow()
	for _, c := range columns {
		cell := header.AddCell()
		cell.Value = c.label
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}

	for _, item := range doc.Rows {
		dataRow := sheet.AddRow()
		values := cells(item)
		// la última columna (Amount) se escribe como entero, no como texto formateado
		for _, v := range values[:len(values)-1] {
			dataRow.AddCell().Value = v
		}
		dataRow.AddCell().SetInt64(item.Amount)
	}

	total := sheet.AddRow()
	for i := 0; i < len(columns)-2; i++ {
		total.AddCell()
	}
	label := total.AddCell()
	label.Value = "TOTAL"
	label.GetStyle().Font.Bold = true
	total.AddCell().SetInt64(doc.GrandTotal)

	for i := range columns {
		sheet.SetColWidth(i+1, i+1, 18)
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("xlsx: escribir archivo: %w", err)
	}
	return buffer.Bytes(), nil
}
