package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrMissingCompany = errors.New("company_id requerido")
	ErrInvalidDate    = errors.New("fecha inválida")
	ErrUnauthorized   = errors.New("no autorizado")
)
