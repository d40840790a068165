package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/catalogo-web/internal/domain"
	"github.com/jhoicas/catalogo-web/internal/domain/entity"
	"github.com/jhoicas/catalogo-web/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos en memoria.
type ProductRepo struct{ s *Store }

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[p.CategoryID]; !ok {
		return domain.ErrCategoryNotFound
	}
	p.ID = r.s.nextProd
	r.s.nextProd++
	stored := *p
	stored.Category = nil
	r.s.products[p.ID] = stored
	return nil
}

// GetByID devuelve nil, nil si no existe.
func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	r.withCategory(&p)
	return &p, nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.s.categories[p.CategoryID]; !ok {
		return domain.ErrCategoryNotFound
	}
	stored := *p
	stored.Category = nil
	r.s.products[p.ID] = stored
	return nil
}

// List devuelve los productos del más reciente al más antiguo.
func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		p := p
		r.withCategory(&p)
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *ProductRepo) CountByCategory(_ context.Context, categoryID int64) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, p := range r.s.products {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (r *ProductRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.products, id)
	return nil
}

// withCategory embebe la categoría; el llamador debe tener el lock.
func (r *ProductRepo) withCategory(p *entity.Product) {
	if c, ok := r.s.categories[p.CategoryID]; ok {
		p.Category = &entity.CategoryRef{ID: c.ID, Nombre: c.Nombre}
	}
}
