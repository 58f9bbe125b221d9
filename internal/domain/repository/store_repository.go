package repository

import "github.com/jhoicas/wellcomputer-pos/internal/domain/entity"

// StoreRepository define el puerto de persistencia para las sucursales (DIP).
type StoreRepository interface {
	Create(store *entity.Store) error
	GetByID(id string) (*entity.Store, error)
	Update(store *entity.Store) error
	List() ([]*entity.Store, error)
	Delete(id string) error
}
