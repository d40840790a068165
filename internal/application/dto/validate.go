package dto

import (
	"errors"
	"fmt"
	"strings"

	v10 "github.com/go-playground/validator/v10"

	"github.com/jhoicas/catalogo-web/internal/domain"
)

var validate = v10.New()

// Validate aplica las etiquetas validate del struct. Los errores se devuelven
// envolviendo domain.ErrInvalidInput con el detalle "campo:regla".
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var ve v10.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		parts = append(parts, strings.ToLower(fe.Field())+":"+rule)
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(parts, ", "))
}
