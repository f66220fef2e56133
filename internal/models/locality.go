package models

// Tipos de elemento que puede devolver el análisis por polígono
const (
	TipoHospital  = "Hospital"
	TipoAccidente = "Accidente"
)

// ElementoEnPoligono es un hospital o accidente cuyo punto cae dentro del
// polígono analizado, junto con la localidad que lo contiene
type ElementoEnPoligono struct {
	Nombre    string  `json:"nombre"`
	Tipo      string  `json:"tipo"`
	Localidad string  `json:"localidad"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
}

// LocalidadConteo es el conteo de hospitales contenidos en una localidad
type LocalidadConteo struct {
	Nombre        string `json:"nombre"`
	HospitalCount int    `json:"hospital_count"`
}
