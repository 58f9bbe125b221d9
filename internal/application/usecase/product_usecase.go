package usecase

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/wellcomputer-pos/internal/application/dto"
	"github.com/jhoicas/wellcomputer-pos/internal/domain"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/entity"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/repository"
)

// AllBrands selecciona todas las marcas en ListByBrand.
const AllBrands = "ALL"

// ProductUseCase casos de uso del catálogo. El stock solo cambia por ajustes
// explícitos o por el motor de ventas.
type ProductUseCase struct {
	repo   repository.ProductRepository
	stores repository.StoreRepository
	log    zerolog.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, stores repository.StoreRepository, log zerolog.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, stores: stores, log: log}
}

// Create agrega un artículo. Sin StoreID se asigna la primera tienda registrada.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	code := strings.TrimSpace(in.Code)
	brand := strings.TrimSpace(in.Brand)
	name := strings.TrimSpace(in.Name)
	if code == "" || brand == "" || name == "" {
		return nil, domain.ErrInvalidRequest
	}
	if in.BuyPrice < 0 || in.SellPrice < 0 || in.Stock < 0 {
		return nil, domain.ErrInvalidRequest
	}

	stores, err := uc.stores.List()
	if err != nil {
		return nil, err
	}
	storeID := strings.TrimSpace(in.StoreID)
	switch {
	case storeID == "" && len(stores) > 0:
		storeID = stores[0].ID
	case storeID != "" && !slices.ContainsFunc(stores, func(s *entity.Store) bool { return s.ID == storeID }):
		return nil, domain.ErrStoreNotFound
	}

	product := &entity.Product{
		ID:        "p" + uuid.NewString(),
		Code:      code,
		Brand:     brand,
		Name:      name,
		Specs:     in.Specs,
		Color:     in.Color,
		StoreID:   storeID,
		BuyPrice:  in.BuyPrice,
		SellPrice: in.SellPrice,
		Stock:     in.Stock,
		Active:    true,
	}
	if err := uc.repo.Create(product); err != nil {
		uc.log.Warn().Err(err).Str("code", code).Msg("alta de producto rechazada")
		return nil, err
	}
	uc.log.Info().Str("product_id", product.ID).Str("code", code).Msg("producto creado")
	return toProductResponse(product, storeNames(stores)), nil
}

// GetByID obtiene un artículo por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	names, err := uc.storeNames()
	if err != nil {
		return nil, err
	}
	return toProductResponse(product, names), nil
}

// List devuelve el catálogo completo en orden de inserción.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	names, err := uc.storeNames()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p, names))
	}
	return out, nil
}

// AdjustStock suma delta (positivo o negativo); el resultado nunca baja de cero.
func (uc *ProductUseCase) AdjustStock(id string, delta int) (*dto.ProductResponse, error) {
	product, err := uc.repo.AdjustStock(id, delta)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", id).Int("delta", delta).Int("stock", product.Stock).Msg("stock ajustado")
	return uc.respond(product)
}

// SetStock fija el stock a un valor absoluto (mínimo cero).
func (uc *ProductUseCase) SetStock(id string, stock int) (*dto.ProductResponse, error) {
	product, err := uc.repo.SetStock(id, stock)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", id).Int("stock", product.Stock).Msg("stock fijado")
	return uc.respond(product)
}

// Delete elimina el artículo. Las ventas registradas conservan sus copias de nombre y código.
func (uc *ProductUseCase) Delete(id string) error {
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.log.Info().Str("product_id", id).Msg("producto eliminado")
	return nil
}

// ListByBrand devuelve los grupos por marca (en mayúsculas, orden ascendente).
// brand vacío o AllBrands recorre todas las marcas. El agrupado se hace al iterar.
func (uc *ProductUseCase) ListByBrand(brand string) (iter.Seq2[string, []*entity.Product], error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	filter := entity.NormalizeBrand(strings.TrimSpace(brand))
	if filter == "" {
		filter = AllBrands
	}

	return func(yield func(string, []*entity.Product) bool) {
		groups := make(map[string][]*entity.Product)
		for _, p := range products {
			key := entity.NormalizeBrand(p.Brand)
			if filter != AllBrands && key != filter {
				continue
			}
			groups[key] = append(groups[key], p)
		}
		keys := make([]string, 0, len(groups))
		for k := range groups {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			if !yield(k, groups[k]) {
				return
			}
		}
	}, nil
}

// Grouped materializa ListByBrand para la API.
func (uc *ProductUseCase) Grouped(brand string) ([]dto.BrandGroupResponse, error) {
	seq, err := uc.ListByBrand(brand)
	if err != nil {
		return nil, err
	}
	names, err := uc.storeNames()
	if err != nil {
		return nil, err
	}
	out := []dto.BrandGroupResponse{}
	for b, items := range seq {
		g := dto.BrandGroupResponse{Brand: b, Items: make([]dto.ProductResponse, 0, len(items))}
		for _, p := range items {
			g.Items = append(g.Items, *toProductResponse(p, names))
		}
		out = append(out, g)
	}
	return out, nil
}

// Brands menú de marcas con la cantidad de artículos de cada una.
func (uc *ProductUseCase) Brands() ([]dto.BrandCountResponse, error) {
	seq, err := uc.ListByBrand(AllBrands)
	if err != nil {
		return nil, err
	}
	out := []dto.BrandCountResponse{}
	for b, items := range seq {
		out = append(out, dto.BrandCountResponse{Brand: b, Count: len(items)})
	}
	return out, nil
}

// DuplicateTemplate prepara una variante del artículo con código "<code>-COPY".
// No se guarda hasta que se envía por Create.
func (uc *ProductUseCase) DuplicateTemplate(id string) (*dto.CreateProductRequest, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProductNotFound
	}
	return &dto.CreateProductRequest{
		Code:      p.Code + "-COPY",
		Brand:     p.Brand,
		Name:      p.Name,
		Specs:     p.Specs,
		Color:     p.Color,
		StoreID:   p.StoreID,
		BuyPrice:  p.BuyPrice,
		SellPrice: p.SellPrice,
		Stock:     p.Stock,
	}, nil
}

// SaleFormOptions artículos vendibles (activos y con stock) para el formulario manual.
func (uc *ProductUseCase) SaleFormOptions() (*dto.SaleFormOptionsResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	names, err := uc.storeNames()
	if err != nil {
		return nil, err
	}
	items := []dto.SaleOptionResponse{}
	for _, p := range products {
		if !p.Sellable() {
			continue
		}
		items = append(items, dto.SaleOptionResponse{
			ProductID: p.ID,
			Code:      p.Code,
			Brand:     p.Brand,
			Name:      p.Name,
			StoreName: dto.DisplayStoreName(names[p.StoreID]),
			SellPrice: p.SellPrice,
			Stock:     p.Stock,
		})
	}
	methods := make([]string, 0, len(entity.PaymentMethods))
	for _, m := range entity.PaymentMethods {
		methods = append(methods, string(m))
	}
	return &dto.SaleFormOptionsResponse{Items: items, PaymentMethods: methods}, nil
}

func (uc *ProductUseCase) respond(p *entity.Product) (*dto.ProductResponse, error) {
	names, err := uc.storeNames()
	if err != nil {
		return nil, err
	}
	return toProductResponse(p, names), nil
}

func (uc *ProductUseCase) storeNames() (map[string]string, error) {
	stores, err := uc.stores.List()
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	return storeNames(stores), nil
}

func storeNames(stores []*entity.Store) map[string]string {
	out := make(map[string]string, len(stores))
	for _, s := range stores {
		out[s.ID] = s.Name
	}
	return out
}

func toProductResponse(p *entity.Product, names map[string]string) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Code:      p.Code,
		Brand:     p.Brand,
		Name:      p.Name,
		Specs:     p.Specs,
		Color:     p.Color,
		StoreID:   p.StoreID,
		StoreName: dto.DisplayStoreName(names[p.StoreID]),
		BuyPrice:  p.BuyPrice,
		SellPrice: p.SellPrice,
		Stock:     p.Stock,
		Active:    p.Active,
	}
}
