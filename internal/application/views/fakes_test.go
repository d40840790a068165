package views_test

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/catalogo-web/internal/domain"
	"github.com/jhoicas/catalogo-web/internal/domain/entity"
)

var errBackend = errors.New("backend caído")

// fakeCatalog implementa ambos gateways en memoria y cuenta las llamadas.
type fakeCatalog struct {
	mu sync.Mutex

	categories []entity.Category
	products   []entity.Product

	failList    bool
	failListCat bool
	failGet     bool
	failWrite   bool
	failDelete  bool

	// block, si no es nil, detiene las escrituras hasta que se cierre.
	block   chan struct{}
	entered chan struct{}

	creates, updates, deletes int
	lastUpdateID              int64
	lastCategory              entity.Category
	lastProduct               entity.Product
}

func (f *fakeCatalog) count(n *int) {
	f.mu.Lock()
	*n++
	f.mu.Unlock()
}

func (f *fakeCatalog) wait() {
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
}

func (f *fakeCatalog) ListCategories(context.Context) ([]entity.Category, error) {
	if f.failListCat {
		return nil, domain.ErrRemote
	}
	return append([]entity.Category(nil), f.categories...), nil
}

func (f *fakeCatalog) GetCategory(_ context.Context, id int64) (*entity.Category, error) {
	if f.failGet {
		return nil, domain.ErrRemote
	}
	for _, c := range f.categories {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, domain.ErrRemote
}

func (f *fakeCatalog) CreateCategory(_ context.Context, c entity.Category) (*entity.Category, error) {
	f.count(&f.creates)
	f.wait()
	if f.failWrite {
		return nil, errBackend
	}
	f.mu.Lock()
	f.lastCategory = c
	f.mu.Unlock()
	return &c, nil
}

func (f *fakeCatalog) UpdateCategory(_ context.Context, id int64, c entity.Category) (*entity.Category, error) {
	f.count(&f.updates)
	f.wait()
	if f.failWrite {
		return nil, errBackend
	}
	f.mu.Lock()
	f.lastUpdateID, f.lastCategory = id, c
	f.mu.Unlock()
	return &c, nil
}

func (f *fakeCatalog) DeleteCategory(_ context.Context, id int64) error {
	f.count(&f.deletes)
	if f.failDelete {
		return errBackend
	}
	out := f.categories[:0]
	for _, c := range f.categories {
		if c.ID != id {
			out = append(out, c)
		}
	}
	f.categories = out
	return nil
}

func (f *fakeCatalog) ListProducts(context.Context) ([]entity.Product, error) {
	if f.failList {
		return nil, domain.ErrRemote
	}
	return append([]entity.Product(nil), f.products...), nil
}

func (f *fakeCatalog) GetProduct(_ context.Context, id int64) (*entity.Product, error) {
	if f.failGet {
		return nil, domain.ErrRemote
	}
	for _, p := range f.products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, domain.ErrRemote
}

func (f *fakeCatalog) CreateProduct(_ context.Context, p entity.Product) (*entity.Product, error) {
	f.count(&f.creates)
	f.wait()
	if f.failWrite {
		return nil, errBackend
	}
	f.mu.Lock()
	f.lastProduct = p
	f.mu.Unlock()
	return &p, nil
}

func (f *fakeCatalog) UpdateProduct(_ context.Context, id int64, p entity.Product) (*entity.Product, error) {
	f.count(&f.updates)
	f.wait()
	if f.failWrite {
		return nil, errBackend
	}
	f.mu.Lock()
	f.lastUpdateID, f.lastProduct = id, p
	f.mu.Unlock()
	return &p, nil
}

func (f *fakeCatalog) DeleteProduct(_ context.Context, id int64) error {
	f.count(&f.deletes)
	if f.failDelete {
		return errBackend
	}
	out := f.products[:0]
	for _, p := range f.products {
		if p.ID != id {
			out = append(out, p)
		}
	}
	f.products = out
	return nil
}

// recNav registra las navegaciones.
type recNav struct {
	mu     sync.Mutex
	routes []string
}

func (n *recNav) Navigate(route string) {
	n.mu.Lock()
	n.routes = append(n.routes, route)
	n.mu.Unlock()
}

func (n *recNav) Routes() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.routes...)
}
