package models

import (
	"time"
)

// Incidente representa un accidente registrado con su hospital de destino
// y las métricas de la ruta calculadas por el cliente al momento del registro.
// HospitalDestino es una copia del nombre, no una llave foránea: renombrar o
// eliminar el hospital no afecta los registros históricos.
type Incidente struct {
	ID                int64     `json:"id"`
	NombreAccidentado string    `json:"nombre_accidentado"`
	UsuarioRegistro   string    `json:"usuario_registro"`
	Latitud           float64   `json:"latitud"`
	Longitud          float64   `json:"longitud"`
	HospitalDestino   string    `json:"hospital_destino"`
	DistanciaKm       float64   `json:"distancia_km"`
	TiempoMin         float64   `json:"tiempo_min"`
	FechaIncidente    time.Time `json:"fecha_incidente"`
}
