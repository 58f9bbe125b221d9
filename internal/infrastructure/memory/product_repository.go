package memory

import (
	"math"
	"slices"
	"strings"

	"github.com/jhoicas/wellcomputer-pos/internal/domain"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/entity"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementa repository.ProductRepository sobre el estado en memoria.
type ProductRepo struct {
	a accessor
}

// NewProductRepository crea el repositorio sobre el estado compartido.
func NewProductRepository(s *State) *ProductRepo {
	return &ProductRepo{a: s}
}

// Create agrega el producto al final del catálogo.
func (r *ProductRepo) Create(p *entity.Product) error {
	return r.a.with(func(d *dataset) error {
		for _, existing := range d.products {
			if strings.EqualFold(existing.Code, p.Code) {
				return domain.ErrDuplicateCode
			}
		}
		d.products = append(d.products, copyProduct(p))
		return nil
	})
}

// GetByID devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	var out *entity.Product
	err := r.a.with(func(d *dataset) error {
		if i := indexProduct(d, id); i >= 0 {
			out = copyProduct(d.products[i])
		}
		return nil
	})
	return out, err
}

func (r *ProductRepo) GetByCode(code string) (*entity.Product, error) {
	var out *entity.Product
	err := r.a.with(func(d *dataset) error {
		for _, p := range d.products {
			if strings.EqualFold(p.Code, code) {
				out = copyProduct(p)
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *ProductRepo) Update(p *entity.Product) error {
	return r.a.with(func(d *dataset) error {
		i := indexProduct(d, p.ID)
		if i < 0 {
			return domain.ErrProductNotFound
		}
		d.products[i] = copyProduct(p)
		return nil
	})
}

func (r *ProductRepo) AdjustStock(id string, delta int) (*entity.Product, error) {
	return r.mutateStock(id, func(current int) int { return addStock(current, delta) })
}

// addStock satura en math.MaxInt en vez de desbordar.
func addStock(current, delta int) int {
	if delta > 0 && current > math.MaxInt-delta {
		return math.MaxInt
	}
	return current + delta
}

func (r *ProductRepo) SetStock(id string, stock int) (*entity.Product, error) {
	return r.mutateStock(id, func(int) int { return stock })
}

func (r *ProductRepo) mutateStock(id string, next func(current int) int) (*entity.Product, error) {
	var out *entity.Product
	err := r.a.with(func(d *dataset) error {
		i := indexProduct(d, id)
		if i < 0 {
			return domain.ErrProductNotFound
		}
		d.products[i].Stock = max(0, next(d.products[i].Stock))
		out = copyProduct(d.products[i])
		return nil
	})
	return out, err
}

// List devuelve el catálogo en orden de inserción.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.a.with(func(d *dataset) error {
		out = make([]*entity.Product, 0, len(d.products))
		for _, p := range d.products {
			out = append(out, copyProduct(p))
		}
		return nil
	})
	return out, err
}

// Delete es incondicional: un ID inexistente no es error.
func (r *ProductRepo) Delete(id string) error {
	return r.a.with(func(d *dataset) error {
		d.products = slices.DeleteFunc(d.products, func(p *entity.Product) bool { return p.ID == id })
		return nil
	})
}

func indexProduct(d *dataset, id string) int {
	return slices.IndexFunc(d.products, func(p *entity.Product) bool { return p.ID == id })
}
