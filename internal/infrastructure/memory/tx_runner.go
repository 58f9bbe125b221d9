package memory

import (
	"context"

	"github.com/jhoicas/wellcomputer-pos/internal/application/sales"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/repository"
)

var _ sales.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una sección crítica sobre el estado.
type TxRunner struct {
	state *State
}

// NewTxRunner construye el runner con el estado compartido.
func NewTxRunner(s *State) *TxRunner {
	return &TxRunner{state: s}
}

// Run toma el lock, ejecuta fn con repos atados a la sección y, si fn falla,
// restaura catálogo, tiendas y libro al punto previo.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
	ledgerRepo repository.TransactionRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.state.with(func(d *dataset) error {
		backup := d.clone()
		view := &txView{d: d}
		if err := fn(&ProductRepo{a: view}, &StoreRepo{a: view}, &TransactionRepo{a: view}); err != nil {
			*d = *backup
			return err
		}
		return nil
	})
}
