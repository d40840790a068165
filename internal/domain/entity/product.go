package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. CategoryID debe referenciar una categoría existente;
// la validación referencial la hace el backend.
type Product struct {
	ID          int64 // 0 = aún no persistido
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  int64
	Category    *CategoryRef // opcional, solo lectura
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
