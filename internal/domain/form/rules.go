// Package form implementa validación declarativa de formularios: un esquema ordenado de campos,
// cada uno con su lista ordenada de reglas, y el mapeo de violaciones a un único mensaje legible.
package form

import (
	"regexp"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Kind identifica el tipo de regla.
type Kind string

const (
	KindRequired  Kind = "required"
	KindMinLength Kind = "minlength"
	KindMaxLength Kind = "maxlength"
	KindMin       Kind = "min"
	KindPattern   Kind = "pattern"
)

// precedence fija qué violación se reporta cuando hay varias.
var precedence = []Kind{KindRequired, KindMinLength, KindMaxLength, KindMin, KindPattern}

// DefaultPatternMessage se usa cuando una regla de patrón no trae mensaje propio.
const DefaultPatternMessage = "Debe ser un número entero"

// Rule es una regla de validación con sus parámetros.
type Rule struct {
	Kind    Kind
	Length  int             // minlength / maxlength
	Min     decimal.Decimal // min
	Pattern *regexp.Regexp  // pattern
	Message string          // pattern
}

func Required() Rule { return Rule{Kind: KindRequired} }

func MinLength(n int) Rule { return Rule{Kind: KindMinLength, Length: n} }

func MaxLength(n int) Rule { return Rule{Kind: KindMaxLength, Length: n} }

// Min exige un valor numérico >= min. Panics si min no es un decimal válido.
func Min(min string) Rule {
	return Rule{Kind: KindMin, Min: decimal.RequireFromString(min)}
}

// Pattern exige que el valor completo cumpla expr. message vacío usa DefaultPatternMessage.
func Pattern(expr, message string) Rule {
	if message == "" {
		message = DefaultPatternMessage
	}
	return Rule{Kind: KindPattern, Pattern: regexp.MustCompile(expr), Message: message}
}

// violated indica si value incumple la regla. Salvo required, ninguna regla se evalúa
// sobre un valor vacío: un campo opcional vacío es válido.
func (r Rule) violated(value string) bool {
	if r.Kind == KindRequired {
		return value == ""
	}
	if value == "" {
		return false
	}
	switch r.Kind {
	case KindMinLength:
		return utf8.RuneCountInString(value) < r.Length
	case KindMaxLength:
		return utf8.RuneCountInString(value) > r.Length
	case KindMin:
		d, err := decimal.NewFromString(value)
		if err != nil {
			return false // no numérico: lo reporta pattern
		}
		return d.LessThan(r.Min)
	case KindPattern:
		return !r.Pattern.MatchString(value)
	}
	return false
}
