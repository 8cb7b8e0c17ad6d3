package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	// ErrDataAccess el almacén no respondió, la consulta es inválida o el esquema no coincide.
	// Es terminal para el reporte en curso; no hay reintentos.
	ErrDataAccess = errors.New("error de acceso a datos")
	// ErrRender no fue posible generar un gráfico o el documento del panel.
	ErrRender = errors.New("error al generar el reporte")
)
