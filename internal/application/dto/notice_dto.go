package dto

// Niveles de aviso.
const (
	NoticeInfo    = "info"
	NoticeWarning = "warning"
	NoticeError   = "error"
)

// Códigos de aviso visibles para el usuario.
const (
	CodeOutOfStock         = "OUT_OF_STOCK"
	CodeProductNotInCart   = "PRODUCT_NOT_IN_CART"
	CodeInvalidAmount      = "INVALID_AMOUNT"
	CodeCatalogUnavailable = "CATALOG_UNAVAILABLE"
	CodePersistenceFailure = "PERSISTENCE_FAILURE"
	CodeProductNotFound    = "PRODUCT_NOT_FOUND"
	CodeInternal           = "INTERNAL"
	CodeNotImplemented     = "NOT_IMPLEMENTED"
)

// Notice aviso transitorio que la vista muestra al usuario (toast).
type Notice struct {
	ID      string `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
