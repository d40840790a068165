package form

// Field describe un campo del formulario: nombre, etiqueta para mensajes y reglas en orden de registro.
type Field struct {
	Name     string
	Label    string // "El nombre", "La categoría"
	Feminine bool   // concordancia de "requerido/requerida"
	Rules    []Rule
}

// Schema es el mapeo ordenado campo → reglas.
type Schema struct {
	fields []Field
	index  map[string]int
}

// NewSchema construye un esquema. Los nombres de campo deben ser únicos.
func NewSchema(fields ...Field) *Schema {
	s := &Schema{fields: fields, index: make(map[string]int, len(fields))}
	for i, f := range fields {
		if _, dup := s.index[f.Name]; dup {
			panic("form: campo duplicado " + f.Name)
		}
		s.index[f.Name] = i
	}
	return s
}

// Fields devuelve los campos en orden de registro.
func (s *Schema) Fields() []Field { return s.fields }

// Field busca un campo por nombre.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Nombres de campo de los formularios del catálogo.
const (
	FieldNombre      = "nombre"
	FieldDescripcion = "descripcion"

	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldCategoryID  = "categoryId"
)

// CategorySchema: nombre obligatorio 3..50, descripción opcional hasta 255.
var CategorySchema = NewSchema(
	Field{Name: FieldNombre, Label: "El nombre", Rules: []Rule{Required(), MinLength(3), MaxLength(50)}},
	Field{Name: FieldDescripcion, Label: "La descripción", Feminine: true, Rules: []Rule{MaxLength(255)}},
)

// ProductSchema: nombre 2..100, descripción hasta 400, precio >= 0.01, categoría entera obligatoria.
var ProductSchema = NewSchema(
	Field{Name: FieldName, Label: "El nombre", Rules: []Rule{Required(), MinLength(2), MaxLength(100)}},
	Field{Name: FieldDescription, Label: "La descripción", Feminine: true, Rules: []Rule{MaxLength(400)}},
	Field{Name: FieldPrice, Label: "El precio", Rules: []Rule{
		Required(),
		Min("0.01"),
		Pattern(`^\d+(\.\d+)?$`, "Debe ser un número válido"),
	}},
	Field{Name: FieldCategoryID, Label: "La categoría", Feminine: true, Rules: []Rule{
		Required(),
		Pattern(`^[1-9]\d*$`, ""),
	}},
)
