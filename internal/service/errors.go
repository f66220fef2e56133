package service

import "errors"

// Errores centinela que los handlers traducen a códigos HTTP. Una falla del
// almacén espacial nunca se convierte en ninguno de estos: se propaga envuelta
// y termina en un 500.
var (
	// ErrValidacion indica entrada requerida faltante o malformada
	ErrValidacion = errors.New("error de validación")
	// ErrNoEncontrado indica que el id referenciado no existe
	ErrNoEncontrado = errors.New("registro no encontrado")
	// ErrSinRuta indica que no hay camino entre los puntos solicitados.
	// Es un resultado normal del motor de rutas, no una falla.
	ErrSinRuta = errors.New("no existe ruta entre los puntos")
)
