package views

import (
	"context"

	"github.com/jhoicas/catalogo-web/pkg/logger"
)

// confirmDelete pide confirmación y, si se acepta, ejecuta del una sola vez.
// Devuelve (false, nil) si el usuario rechaza.
func confirmDelete(ctx context.Context, confirm Confirm, question string, id int64,
	del func(context.Context, int64) error, log *logger.Logger, failMsg string) (bool, error) {
	if confirm == nil || !confirm(question) {
		return false, nil
	}
	if err := del(ctx, id); err != nil {
		log.Error().Err(err).Int64("id", id).Msg(failMsg)
		return true, err
	}
	return true, nil
}
