package dto

// ErrorResponse cuerpo de error HTTP. Una petición fallida nunca devuelve
// resultados parciales: solo este sobre.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
