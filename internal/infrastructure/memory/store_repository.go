package memory

import (
	"slices"

	"github.com/jhoicas/wellcomputer-pos/internal/domain"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/entity"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementa repository.StoreRepository en memoria.
type StoreRepo struct {
	a accessor
}

// NewStoreRepository crea el repositorio sobre el estado compartido.
func NewStoreRepository(s *State) *StoreRepo {
	return &StoreRepo{a: s}
}

func (r *StoreRepo) Create(s *entity.Store) error {
	return r.a.with(func(d *dataset) error {
		d.stores = append(d.stores, copyStore(s))
		return nil
	})
}

func (r *StoreRepo) GetByID(id string) (*entity.Store, error) {
	var out *entity.Store
	err := r.a.with(func(d *dataset) error {
		if i := indexStore(d, id); i >= 0 {
			out = copyStore(d.stores[i])
		}
		return nil
	})
	return out, err
}

// Update reemplaza la tienda completa.
func (r *StoreRepo) Update(s *entity.Store) error {
	return r.a.with(func(d *dataset) error {
		i := indexStore(d, s.ID)
		if i < 0 {
			return domain.ErrStoreNotFound
		}
		d.stores[i] = copyStore(s)
		return nil
	})
}

func (r *StoreRepo) List() ([]*entity.Store, error) {
	var out []*entity.Store
	err := r.a.with(func(d *dataset) error {
		out = make([]*entity.Store, 0, len(d.stores))
		for _, s := range d.stores {
			out = append(out, copyStore(s))
		}
		return nil
	})
	return out, err
}

// Delete no verifica productos que referencien la tienda.
func (r *StoreRepo) Delete(id string) error {
	return r.a.with(func(d *dataset) error {
		d.stores = slices.DeleteFunc(d.stores, func(s *entity.Store) bool { return s.ID == id })
		return nil
	})
}

func indexStore(d *dataset, id string) int {
	return slices.IndexFunc(d.stores, func(s *entity.Store) bool { return s.ID == id })
}
