package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/wellcomputer-pos/internal/domain/entity"
)

// SnapshotVersion versión del formato de backup que se genera.
const SnapshotVersion = "1.2"

// Snapshot documento de backup completo.
type Snapshot struct {
	Version    string         `json:"version"`
	Timestamp  time.Time      `json:"timestamp"`
	ExportedBy string         `json:"exportedBy"`
	Data       entity.Dataset `json:"data"`
}

// SnapshotInfo metadatos de un backup archivado.
type SnapshotInfo struct {
	ID           string          `json:"id"`
	Version      string          `json:"version"`
	ExportedBy   string          `json:"exportedBy"`
	Timestamp    time.Time       `json:"timestamp"`
	Products     int             `json:"products"`
	Transactions int             `json:"transactions"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

// NewSnapshotInfo resume un snapshot para el archivo.
func NewSnapshotInfo(id string, s *Snapshot) SnapshotInfo {
	revenue := decimal.Zero
	for _, t := range s.Data.Transactions {
		revenue = revenue.Add(decimal.NewFromInt(t.Price))
	}
	return SnapshotInfo{
		ID:           id,
		Version:      s.Version,
		ExportedBy:   s.ExportedBy,
		Timestamp:    s.Timestamp,
		Products:     len(s.Data.Products),
		Transactions: len(s.Data.Transactions),
		TotalRevenue: revenue,
	}
}
