package usecase_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wellcomputer-pos/internal/application/dto"
	"github.com/jhoicas/wellcomputer-pos/internal/application/usecase"
	"github.com/jhoicas/wellcomputer-pos/internal/domain"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/entity"
)

func newCandidate(code, brand string) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Code:      code,
		Brand:     brand,
		Name:      "Acer Nitro V15",
		Specs:     "i5-13420H, 16GB RAM",
		Color:     "Obsidian Black",
		BuyPrice:  9000000,
		SellPrice: 11000000,
		Stock:     4,
	}
}

func TestProductCreate_AsignaPrimeraTiendaYActivo(t *testing.T) {
	f := newFixture(t)
	uc := f.productUC()

	resp, err := uc.Create(newCandidate("AC-NIT-V15", "acer"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.ID, "p"))
	assert.Equal(t, "s1", resp.StoreID)
	assert.Equal(t, "Well Computer - Pusat", resp.StoreName)
	assert.True(t, resp.Active)
	assert.Equal(t, "acer", resp.Brand)

	list, err := uc.List()
	require.NoError(t, err)
	assert.Equal(t, resp.ID, list[len(list)-1].ID)
}

func TestProductCreate_CodigoDuplicadoSinDistinguirMayusculas(t *testing.T) {
	f := newFixture(t)
	uc := f.productUC()

	_, err := uc.Create(newCandidate("as-rog-g14-01", "ASUS"))
	assert.ErrorIs(t, err, domain.ErrDuplicateCode)
	assert.ErrorIs(t, err, domain.ErrValidation)

	list, err := uc.List()
	require.NoError(t, err)
	assert.Len(t, list, 4)
}

func TestProductCreate_CamposObligatoriosYNegativos(t *testing.T) {
	f := newFixture(t)
	uc := f.productUC()

	cases := map[string]func(r *dto.CreateProductRequest){
		"sin código":      func(r *dto.CreateProductRequest) { r.Code = "  " },
		"sin marca":       func(r *dto.CreateProductRequest) { r.Brand = "" },
		"sin nombre":      func(r *dto.CreateProductRequest) { r.Name = "" },
		"precio negativo": func(r *dto.CreateProductRequest) { r.SellPrice = -1 },
		"stock negativo":  func(r *dto.CreateProductRequest) { r.Stock = -3 },
		"compra negativa": func(r *dto.CreateProductRequest) { r.BuyPrice = -10 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := newCandidate("X-1", "ACER")
			mutate(&req)
			_, err := uc.Create(req)
			assert.ErrorIs(t, err, domain.ErrInvalidRequest)
		})
	}
}

func TestProductCreate_TiendaInexistente(t *testing.T) {
	f := newFixture(t)
	req := newCandidate("X-2", "ACER")
	req.StoreID = "s-no-existe"
	_, err := f.productUC().Create(req)
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}

func TestProductAdjustStock_NuncaNegativo(t *testing.T) {
	f := newFixture(t)
	uc := f.productUC()

	resp, err := uc.AdjustStock("p3", -10)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Stock)

	resp, err = uc.AdjustStock("p3", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, resp.Stock)
}

func TestProductAdjustStock_DeltaEnormeSatura(t *testing.T) {
	f := newFixture(t)
	uc := f.productUC()

	resp, err := uc.AdjustStock("p1", math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, resp.Stock)

	resp, err = uc.AdjustStock("p1", -math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Stock)
}

func TestProductAdjustStock_ProductoInexistenteNoMuta(t *testing.T) {
	f := newFixture(t)
	before, err := f.state.Dump(t.Context())
	require.NoError(t, err)

	_, err = f.productUC().AdjustStock("p-x", 3)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	after, err := f.state.Dump(t.Context())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestProductSetStock(t *testing.T) {
	f := newFixture(t)
	uc := f.productUC()

	resp, err := uc.SetStock("p1", 42)
	require.NoError(t, err)
	assert.Equal(t, 42, resp.Stock)

	resp, err = uc.SetStock("p1", -5)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Stock)
}

func TestProductDelete_VentasConservanCopias(t *testing.T) {
	f := newFixture(t)
	uc := f.productUC()

	require.NoError(t, uc.Delete("p1"))
	got, err := uc.GetByID("p1")
	require.NoError(t, err)
	assert.Nil(t, got)

	tx, err := f.ledger.GetByID("t1")
	require.NoError(t, err)
	assert.Equal(t, "ASUS ROG Zephyrus G14", tx.ProductName)
	assert.Equal(t, "AS-ROG-G14-01", tx.ProductCode)

	// Borrar un ID inexistente no es error.
	assert.NoError(t, uc.Delete("p1"))
}

func TestProductListByBrand_AgrupaEnMayusculasYOrdena(t *testing.T) {
	f := newFixture(t)
	uc := f.productUC()
	_, err := uc.Create(newCandidate("AS-VIVO-01", "asus"))
	require.NoError(t, err)

	seq, err := uc.ListByBrand(usecase.AllBrands)
	require.NoError(t, err)

	var brands []string
	var asus []*entity.Product
	for b, items := range seq {
		brands = append(brands, b)
		if b == "ASUS" {
			asus = items
		}
	}
	assert.Equal(t, []string{"APPLE", "ASUS", "HP", "LENOVO"}, brands)
	require.Len(t, asus, 2)
	assert.Equal(t, "p1", asus[0].ID)
	assert.Equal(t, "AS-VIVO-01", asus[1].Code)
}

func TestProductListByBrand_FiltraYCorteTemprano(t *testing.T) {
	f := newFixture(t)
	uc := f.productUC()

	seq, err := uc.ListByBrand("lenovo")
	require.NoError(t, err)
	n := 0
	for b, items := range seq {
		n++
		assert.Equal(t, "LENOVO", b)
		assert.Len(t, items, 1)
	}
	assert.Equal(t, 1, n)

	seq, err = uc.ListByBrand("")
	require.NoError(t, err)
	visited := 0
	for range seq {
		visited++
		break
	}
	assert.Equal(t, 1, visited)
}

func TestProductBrands_ConConteo(t *testing.T) {
	f := newFixture(t)
	got, err := f.productUC().Brands()
	require.NoError(t, err)
	assert.Equal(t, []dto.BrandCountResponse{
		{Brand: "APPLE", Count: 1},
		{Brand: "ASUS", Count: 1},
		{Brand: "HP", Count: 1},
		{Brand: "LENOVO", Count: 1},
	}, got)
}

func TestProductDuplicateTemplate_NoSeInsertaHastaEnviar(t *testing.T) {
	f := newFixture(t)
	uc := f.productUC()

	tmpl, err := uc.DuplicateTemplate("p2")
	require.NoError(t, err)
	assert.Equal(t, "AP-MBA-M2-02-COPY", tmpl.Code)
	assert.Equal(t, 12, tmpl.Stock)
	assert.Equal(t, "s1", tmpl.StoreID)

	list, err := uc.List()
	require.NoError(t, err)
	assert.Len(t, list, 4)

	_, err = uc.Create(*tmpl)
	require.NoError(t, err)
	_, err = uc.Create(*tmpl)
	assert.ErrorIs(t, err, domain.ErrDuplicateCode)

	_, err = uc.DuplicateTemplate("p-x")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductSaleFormOptions_SoloVendibles(t *testing.T) {
	f := newFixture(t)
	uc := f.productUC()
	_, err := uc.SetStock("p3", 0)
	require.NoError(t, err)
	p4, err := f.products.GetByID("p4")
	require.NoError(t, err)
	p4.Active = false
	require.NoError(t, f.products.Update(p4))

	opts, err := uc.SaleFormOptions()
	require.NoError(t, err)
	ids := make([]string, 0, len(opts.Items))
	for _, it := range opts.Items {
		ids = append(ids, it.ProductID)
	}
	assert.Equal(t, []string{"p1", "p2"}, ids)
	assert.Equal(t, []string{"CASH", "TRANSFER", "CREDIT"}, opts.PaymentMethods)
}

func TestProductResponse_TiendaEliminadaMuestraMarcador(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.stores.Delete("s2"))

	got, err := f.productUC().GetByID("p3")
	require.NoError(t, err)
	assert.Equal(t, "s2", got.StoreID)
	assert.Equal(t, dto.MissingStoreName, got.StoreName)
}
