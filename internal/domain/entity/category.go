package entity

import "time"

// Category representa una categoría de productos.
type Category struct {
	ID          int64 // 0 = aún no persistida
	Nombre      string
	Descripcion string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoryRef es la copia denormalizada que viaja embebida en un producto para mostrarse.
type CategoryRef struct {
	ID     int64
	Nombre string
}
