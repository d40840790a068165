package views

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalogo-web/internal/domain"
	"github.com/jhoicas/catalogo-web/pkg/logger"
)

// Dispatcher decide entre alta y edición y ejecuta exactamente una de las dos operaciones.
type Dispatcher[T any] struct {
	Create func(ctx context.Context, v T) error
	Update func(ctx context.Context, id int64, v T) error

	ListRoute   string
	CreateError string
	UpdateError string

	Nav   Navigator
	Guard *SubmitGuard
	Log   *logger.Logger
}

// Submit envía payload. En éxito navega una vez a ListRoute y devuelve "" y nil.
// En fallo devuelve el mensaje estático del modo y el error envuelto; no navega.
// Si key ya tiene un envío en curso devuelve domain.ErrSubmitInProgress sin llamar al backend.
func (d *Dispatcher[T]) Submit(ctx context.Context, key string, editMode bool, id int64, payload T) (string, error) {
	if d.Guard != nil && key != "" {
		if !d.Guard.TryAcquire(key) {
			return MsgSubmitInProgress, domain.ErrSubmitInProgress
		}
		defer d.Guard.Release(key)
	}

	var err error
	msg := d.CreateError
	if editMode {
		msg = d.UpdateError
		err = d.Update(ctx, id, payload)
	} else {
		err = d.Create(ctx, payload)
	}
	if err != nil {
		d.Log.Error().Err(err).Bool("edit", editMode).Int64("id", id).Msg(msg)
		return msg, fmt.Errorf("%s: %w", msg, err)
	}

	d.Nav.Navigate(d.ListRoute)
	return "", nil
}
