package repository

import "github.com/jhoicas/wellcomputer-pos/internal/domain/entity"

// TransactionRepository es el libro de ventas: solo admite altas.
// List devuelve las entradas de la más reciente a la más antigua.
type TransactionRepository interface {
	Append(tx *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	List() ([]*entity.Transaction, error)
}
