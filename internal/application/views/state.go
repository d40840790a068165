package views

// FormState estado de un formulario de alta/edición.
type FormState int

const (
	StateEditable FormState = iota
	StateLoadingExisting
	StateSubmitting
	StateError
)

func (s FormState) String() string {
	switch s {
	case StateLoadingExisting:
		return "loading_existing"
	case StateSubmitting:
		return "submitting"
	case StateError:
		return "error"
	default:
		return "editable"
	}
}

// Navigator cambia de vista. En el front web se traduce en una redirección.
type Navigator interface {
	Navigate(route string)
}

// NavigatorFunc adapta una función a Navigator.
type NavigatorFunc func(route string)

func (f NavigatorFunc) Navigate(route string) { f(route) }

// Confirm pregunta al usuario; true solo si acepta.
type Confirm func(message string) bool
