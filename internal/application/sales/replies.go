package sales

import (
	"errors"
	"fmt"

	"github.com/jhoicas/wellcomputer-pos/internal/application/dto"
	"github.com/jhoicas/wellcomputer-pos/internal/domain"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/entity"
	"github.com/jhoicas/wellcomputer-pos/pkg/money"
)

// Respuestas enviadas al remitente del mensaje (en indonesio, idioma de los vendedores).
const (
	replyUnrecognized   = "❌ Format tidak dikenali. Gunakan format:\nPENJUALAN\nNama: [Nama]\nProduk: [Produk]\nHarga: [Harga]"
	replyNotFound       = "❌ Gagal: Produk tidak ditemukan di katalog."
	replyMissingName    = "❌ Gagal: Nama pelanggan tidak ditemukan dalam pesan."
	replyUnavailable    = "❌ Layanan AI sedang tidak tersedia. Coba lagi nanti."
	replyInternal       = "❌ Gagal: Terjadi kesalahan sistem."
	replyOutOfStockTmpl = "❌ Gagal: Stok untuk %s habis."
	replyInactiveTmpl   = "❌ Gagal: Produk %s tidak aktif."
)

func successReply(tx *entity.Transaction) string {
	return fmt.Sprintf("✅ Transaksi berhasil dicatat!\nProduk: %s\nHarga: %s\nStatus: Lunas via %s",
		tx.ProductName, money.FormatRupiah(tx.Price), tx.PaymentMethod)
}

func failureReply(err error, product *entity.Product) string {
	name := ""
	if product != nil {
		name = product.Name
	}
	switch {
	case errors.Is(err, domain.ErrExtractionUnavailable):
		return replyUnavailable
	case errors.Is(err, domain.ErrExtractionFailed):
		return replyUnrecognized
	case errors.Is(err, domain.ErrProductNotFound):
		return replyNotFound
	case errors.Is(err, domain.ErrOutOfStock):
		return fmt.Sprintf(replyOutOfStockTmpl, name)
	case errors.Is(err, domain.ErrInactiveProduct):
		return fmt.Sprintf(replyInactiveTmpl, name)
	case errors.Is(err, domain.ErrInvalidRequest):
		return replyMissingName
	}
	return replyInternal
}

// ToTransactionResponse mapea una entrada del libro a su DTO.
func ToTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:             t.ID,
		Date:           t.Date,
		CustomerID:     t.CustomerID,
		CustomerName:   t.CustomerName,
		ProductID:      t.ProductID,
		ProductName:    t.ProductName,
		ProductCode:    t.ProductCode,
		StoreName:      dto.DisplayStoreName(t.StoreName),
		SalesID:        t.SalesID,
		SalesName:      t.SalesName,
		Price:          t.Price,
		PriceFormatted: money.FormatRupiah(t.Price),
		PaymentMethod:  string(t.PaymentMethod),
		Note:           t.Note,
	}
}
