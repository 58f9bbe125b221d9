package repository

import "github.com/jhoicas/wellcomputer-pos/internal/domain/entity"

// ProductRepository define el puerto de persistencia para el catálogo (DIP).
// GetByID y GetByCode devuelven (nil, nil) cuando no existe el producto.
type ProductRepository interface {
	// Create falla con ErrDuplicateCode si otro artículo tiene el mismo código.
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByCode compara el código sin distinguir mayúsculas.
	GetByCode(code string) (*entity.Product, error)
	Update(product *entity.Product) error
	// AdjustStock suma delta al stock sin bajar de cero; SetStock fija el valor (mínimo cero).
	AdjustStock(id string, delta int) (*entity.Product, error)
	SetStock(id string, stock int) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Delete(id string) error
}
