package views

// Rutas de lista a las que navegan los formularios.
const (
	RouteCategories = "/categories"
	RouteProducts   = "/products"
)

// Mensajes estáticos mostrados al usuario. El detalle del fallo solo va al log.
const (
	MsgLoadCategories     = "Error al cargar las categorías"
	MsgLoadCategory       = "Error al cargar la categoría"
	MsgCreateCategory     = "Error al crear la categoría"
	MsgUpdateCategory     = "Error al actualizar la categoría"
	MsgDeleteCategory     = "Error al eliminar la categoría"
	ConfirmDeleteCategory = "¿Estás seguro de que deseas eliminar esta categoría?"

	MsgLoadProducts      = "Error al cargar los productos"
	MsgLoadProduct       = "Error al cargar el producto"
	MsgCreateProduct     = "Error al crear el producto"
	MsgUpdateProduct     = "Error al actualizar el producto"
	MsgDeleteProduct     = "Error al eliminar el producto"
	ConfirmDeleteProduct = "¿Estás seguro de que deseas eliminar este producto?"

	MsgSubmitInProgress = "El formulario ya se está enviando"
)
