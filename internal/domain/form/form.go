package form

import "fmt"

// Violation es una regla incumplida por el valor actual de un campo.
type Violation struct {
	Field string
	Rule  Rule
}

// Form guarda los valores en bruto y el estado "tocado" de cada campo de un esquema.
type Form struct {
	schema  *Schema
	values  map[string]string
	touched map[string]bool
}

// New crea un formulario vacío para schema.
func New(schema *Schema) *Form {
	f := &Form{
		schema:  schema,
		values:  make(map[string]string, len(schema.fields)),
		touched: make(map[string]bool, len(schema.fields)),
	}
	for _, fl := range schema.fields {
		f.values[fl.Name] = ""
	}
	return f
}

// Schema devuelve el esquema del formulario.
func (f *Form) Schema() *Schema { return f.schema }

// Set asigna el valor de un campo como lo haría el usuario (lo marca tocado).
// Los campos desconocidos se ignoran.
func (f *Form) Set(name, value string) {
	if _, ok := f.schema.index[name]; !ok {
		return
	}
	f.values[name] = value
	f.touched[name] = true
}

// Patch carga valores sin marcarlos tocados (precarga en modo edición).
func (f *Form) Patch(values map[string]string) {
	for name, v := range values {
		if _, ok := f.schema.index[name]; ok {
			f.values[name] = v
		}
	}
}

// Value devuelve el valor en bruto de un campo.
func (f *Form) Value(name string) string { return f.values[name] }

// Values devuelve una copia de todos los valores.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

func (f *Form) Touch(name string) {
	if _, ok := f.schema.index[name]; ok {
		f.touched[name] = true
	}
}

func (f *Form) Touched(name string) bool { return f.touched[name] }

// MarkAllTouched marca todos los campos para que muestren sus errores.
func (f *Form) MarkAllTouched() {
	for _, fl := range f.schema.fields {
		f.touched[fl.Name] = true
	}
}

// Violations evalúa las reglas del campo en orden de registro.
func (f *Form) Violations(name string) []Violation {
	fl, ok := f.schema.Field(name)
	if !ok {
		return nil
	}
	var out []Violation
	v := f.values[name]
	for _, r := range fl.Rules {
		if r.violated(v) {
			out = append(out, Violation{Field: name, Rule: r})
		}
	}
	return out
}

// Valid indica si ningún campo tiene violaciones.
func (f *Form) Valid() bool {
	for _, fl := range f.schema.fields {
		if len(f.Violations(fl.Name)) > 0 {
			return false
		}
	}
	return true
}

// ErrorMessage devuelve un único mensaje para el campo, solo si fue tocado.
// Con varias violaciones gana required > minlength > maxlength > min > pattern.
func (f *Form) ErrorMessage(name string) string {
	if !f.touched[name] {
		return ""
	}
	fl, _ := f.schema.Field(name)
	vs := f.Violations(name)
	for _, kind := range precedence {
		for _, v := range vs {
			if v.Rule.Kind == kind {
				return message(fl, v.Rule)
			}
		}
	}
	return ""
}

// Errors devuelve los mensajes no vacíos por campo (para las plantillas).
func (f *Form) Errors() map[string]string {
	out := make(map[string]string)
	for _, fl := range f.schema.fields {
		if msg := f.ErrorMessage(fl.Name); msg != "" {
			out[fl.Name] = msg
		}
	}
	return out
}

func message(fl Field, r Rule) string {
	switch r.Kind {
	case KindRequired:
		if fl.Feminine {
			return fl.Label + " es requerida"
		}
		return fl.Label + " es requerido"
	case KindMinLength:
		return fmt.Sprintf("Mínimo %d caracteres", r.Length)
	case KindMaxLength:
		return fmt.Sprintf("Máximo %d caracteres", r.Length)
	case KindMin:
		return "El valor mínimo es " + r.Min.String()
	case KindPattern:
		return r.Message
	}
	return ""
}
