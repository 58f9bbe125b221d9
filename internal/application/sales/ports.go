package sales

import (
	"context"

	"github.com/jhoicas/wellcomputer-pos/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una sección crítica sobre el estado, pasando
// repositorios atados a esa sección. Si fn falla, el estado vuelve al punto previo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		storeRepo repository.StoreRepository,
		ledgerRepo repository.TransactionRepository,
	) error) error
}
