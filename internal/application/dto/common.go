package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Detalle estructurado opcional (totales descuadrados, faltantes de stock)
	Details map[string]interface{} `json:"details,omitempty"`
}

// IDResponse respuesta de creación con el identificador asignado.
type IDResponse struct {
	ID      string `json:"id"`
	Message string `json:"message,omitempty"`
}
