// Package memory es el dueño del estado vivo de la aplicación: catálogo, tiendas,
// usuarios y libro de ventas en memoria, protegidos por un único mutex.
//
// Los repositorios copian las entidades al leer y al escribir, de modo que ningún
// llamador puede modificar el estado sin pasar por ellos.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/wellcomputer-pos/internal/domain/entity"
)

// dataset es el estado mutable. Solo se toca con el mutex de State tomado.
type dataset struct {
	products     []*entity.Product
	stores       []*entity.Store
	users        []*entity.User
	transactions []*entity.Transaction // más reciente primero
}

// accessor abstrae el acceso al dataset: State toma el lock, txView ya lo tiene.
type accessor interface {
	with(fn func(d *dataset) error) error
}

// State serializa todas las lecturas y escrituras con un solo mutex.
type State struct {
	mu   sync.Mutex
	data *dataset
}

// NewState construye el estado a partir de un dataset inicial.
func NewState(initial entity.Dataset) *State {
	return &State{data: fromEntities(initial)}
}

func (s *State) with(fn func(d *dataset) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}

// Dump devuelve una copia completa del estado.
func (s *State) Dump(_ context.Context) (entity.Dataset, error) {
	var out entity.Dataset
	err := s.with(func(d *dataset) error {
		out = d.toEntities()
		return nil
	})
	return out, err
}

// Replace sustituye las cuatro colecciones de una vez (restauración de backup).
func (s *State) Replace(_ context.Context, ds entity.Dataset) error {
	next := fromEntities(ds)
	return s.with(func(d *dataset) error {
		*d = *next
		return nil
	})
}

// txView da acceso directo al dataset dentro de una sección crítica ya abierta.
type txView struct {
	d *dataset
}

func (v *txView) with(fn func(d *dataset) error) error {
	return fn(v.d)
}

func fromEntities(ds entity.Dataset) *dataset {
	d := &dataset{
		products:     make([]*entity.Product, 0, len(ds.Products)),
		stores:       make([]*entity.Store, 0, len(ds.Stores)),
		users:        make([]*entity.User, 0, len(ds.Users)),
		transactions: make([]*entity.Transaction, 0, len(ds.Transactions)),
	}
	for i := range ds.Products {
		d.products = append(d.products, copyProduct(&ds.Products[i]))
	}
	for i := range ds.Stores {
		d.stores = append(d.stores, copyStore(&ds.Stores[i]))
	}
	for i := range ds.Users {
		d.users = append(d.users, copyUser(&ds.Users[i]))
	}
	for i := range ds.Transactions {
		d.transactions = append(d.transactions, copyTransaction(&ds.Transactions[i]))
	}
	return d
}

func (d *dataset) toEntities() entity.Dataset {
	out := entity.Dataset{
		Products:     make([]entity.Product, 0, len(d.products)),
		Transactions: make([]entity.Transaction, 0, len(d.transactions)),
		Users:        make([]entity.User, 0, len(d.users)),
		Stores:       make([]entity.Store, 0, len(d.stores)),
	}
	for _, p := range d.products {
		out.Products = append(out.Products, *copyProduct(p))
	}
	for _, t := range d.transactions {
		out.Transactions = append(out.Transactions, *copyTransaction(t))
	}
	for _, u := range d.users {
		out.Users = append(out.Users, *copyUser(u))
	}
	for _, s := range d.stores {
		out.Stores = append(out.Stores, *copyStore(s))
	}
	return out
}

// clone copia profunda usada como punto de restauración de una sección crítica.
func (d *dataset) clone() *dataset {
	return fromEntities(d.toEntities())
}

func copyProduct(p *entity.Product) *entity.Product {
	c := *p
	return &c
}

func copyStore(s *entity.Store) *entity.Store {
	c := *s
	return &c
}

func copyUser(u *entity.User) *entity.User {
	c := *u
	return &c
}

func copyTransaction(t *entity.Transaction) *entity.Transaction {
	c := *t
	if t.Note != nil {
		note := *t.Note
		c.Note = &note
	}
	return &c
}
