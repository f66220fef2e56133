package v1

import (
	"encoding/json"

	"github.com/paulmach/orb/geojson"
)

// AnalisisIncidenteRequest es el cuerpo del análisis por buffer
// @Description punto del incidente y radio del buffer en metros
type AnalisisIncidenteRequest struct {
	Lat       float64 `json:"lat" validate:"required,latitude"`
	Lon       float64 `json:"lon" validate:"required,longitude"`
	Distancia float64 `json:"distancia" validate:"gte=0"`
}

// AnalisisIncidenteResponse lista los hospitales dentro del buffer,
// del más cercano al más lejano
type AnalisisIncidenteResponse struct {
	HospitalesEnBuffer []*geojson.Feature `json:"hospitalesEnBuffer"`
}

// RutaRequest es el cuerpo del cálculo de ruta entre dos puntos
// @Description extremos de la ruta sobre la malla vial
type RutaRequest struct {
	LatInicio float64 `json:"lat_inicio" validate:"required,latitude"`
	LonInicio float64 `json:"lon_inicio" validate:"required,longitude"`
	LatFin    float64 `json:"lat_fin" validate:"required,latitude"`
	LonFin    float64 `json:"lon_fin" validate:"required,longitude"`
}

// RutaResponse lleva la geometría de la ruta, o null cuando no hay camino
type RutaResponse struct {
	Ruta *geojson.Feature `json:"ruta"`
}

// PoligonoRequest es el cuerpo del análisis por polígono
// @Description polígono GeoJSON en el mismo sistema de referencia de los datos
type PoligonoRequest struct {
	Geometry json.RawMessage `json:"geometry" validate:"required"`
}

// ElementoPoligonoResponse es un hospital o accidente dentro del polígono
type ElementoPoligonoResponse struct {
	Nombre    string  `json:"nombre"`
	Tipo      string  `json:"tipo"`
	Localidad string  `json:"localidad"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
}

// LocalidadConteoResponse es el conteo de hospitales de una localidad
type LocalidadConteoResponse struct {
	Nombre        string `json:"nombre"`
	HospitalCount int    `json:"hospital_count"`
}

// RegistrarIncidenteRequest es el cuerpo del registro de un incidente.
// Las métricas de ruta vienen del último cálculo hecho por el cliente.
type RegistrarIncidenteRequest struct {
	NombreAccidentado string  `json:"nombre_accidentado" validate:"required,min=2,max=255"`
	UsuarioRegistro   string  `json:"usuario_registro" validate:"required,min=2,max=255"`
	Lat               float64 `json:"lat" validate:"required,latitude"`
	Lng               float64 `json:"lng" validate:"required,longitude"`
	HospitalDestino   string  `json:"hospital_destino" validate:"required"`
	DistanciaKm       float64 `json:"distancia_km" validate:"gte=0"`
	TiempoMin         float64 `json:"tiempo_min" validate:"gte=0"`
}

// RegistrarIncidenteResponse confirma el registro con el id y la fecha asignados
type RegistrarIncidenteResponse struct {
	Msg           string `json:"msg"`
	IncidenteID   int64  `json:"incidente_id"`
	FechaRegistro string `json:"fecha_registro"`
}

// IncidenteResponse es la vista de un incidente registrado
type IncidenteResponse struct {
	ID                int64             `json:"id"`
	NombreAccidentado string            `json:"nombre_accidentado"`
	UsuarioRegistro   string            `json:"usuario_registro"`
	FechaIncidente    string            `json:"fecha_incidente"`
	HospitalDestino   string            `json:"hospital_destino"`
	DistanciaKm       float64           `json:"distancia_km"`
	TiempoMin         float64           `json:"tiempo_min"`
	PuntoGeoJSON      *geojson.Geometry `json:"punto_geojson"`
}

// ActualizarIncidenteRequest lleva los dos únicos campos editables
type ActualizarIncidenteRequest struct {
	NombreAccidentado string `json:"nombre_accidentado" validate:"required,min=2,max=255"`
	UsuarioRegistro   string `json:"usuario_registro" validate:"required,min=2,max=255"`
}

// ActualizarHospitalRequest es una edición parcial de hospital:
// solo nombre, solo ubicación, o ambos
type ActualizarHospitalRequest struct {
	ID     int64    `json:"id" validate:"required"`
	Nombre string   `json:"nombre"`
	Lat    *float64 `json:"lat" validate:"omitempty,latitude"`
	Lon    *float64 `json:"lon" validate:"omitempty,longitude"`
}
