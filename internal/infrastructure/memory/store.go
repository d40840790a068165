// Package memory implementa los repositorios del catálogo en memoria (STORAGE=memory y tests).
package memory

import (
	"sync"

	"github.com/jhoicas/catalogo-web/internal/domain/entity"
)

// Store comparte categorías y productos para poder resolver la categoría embebida de cada producto.
type Store struct {
	mu         sync.RWMutex
	categories map[int64]entity.Category
	products   map[int64]entity.Product
	nextCat    int64
	nextProd   int64
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		categories: make(map[int64]entity.Category),
		products:   make(map[int64]entity.Product),
		nextCat:    1,
		nextProd:   1,
	}
}

// Categories devuelve el repositorio de categorías del almacén.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s: s} }

// Products devuelve el repositorio de productos del almacén.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }
