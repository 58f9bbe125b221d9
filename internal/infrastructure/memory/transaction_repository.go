package memory

import (
	"slices"

	"github.com/jhoicas/wellcomputer-pos/internal/domain/entity"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo libro de ventas en memoria. No expone edición ni borrado.
type TransactionRepo struct {
	a accessor
}

// NewTransactionRepository crea el repositorio sobre el estado compartido.
func NewTransactionRepository(s *State) *TransactionRepo {
	return &TransactionRepo{a: s}
}

// Append agrega la entrada al inicio del libro (más reciente primero).
func (r *TransactionRepo) Append(tx *entity.Transaction) error {
	return r.a.with(func(d *dataset) error {
		d.transactions = slices.Insert(d.transactions, 0, copyTransaction(tx))
		return nil
	})
}

func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	var out *entity.Transaction
	err := r.a.with(func(d *dataset) error {
		if i := slices.IndexFunc(d.transactions, func(t *entity.Transaction) bool { return t.ID == id }); i >= 0 {
			out = copyTransaction(d.transactions[i])
		}
		return nil
	})
	return out, err
}

func (r *TransactionRepo) List() ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	err := r.a.with(func(d *dataset) error {
		out = make([]*entity.Transaction, 0, len(d.transactions))
		for _, t := range d.transactions {
			out = append(out, copyTransaction(t))
		}
		return nil
	})
	return out, err
}
