package v1

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/JuanC-01/ProyectoLineaB/internal/models"
)

// formato de fecha visible para el cliente
const fechaFormato = "02/01/2006, 15:04:05"

// HospitalCercanoToFeature convierte un resultado del buffer en un Feature
// con las propiedades que el cliente espera
func HospitalCercanoToFeature(h *models.HospitalCercano) *geojson.Feature {
	f := geojson.NewFeature(orb.Point{h.Longitud, h.Latitud})
	f.Properties = geojson.Properties{
		"gid":       h.GID,
		"nombre":    h.Nombre,
		"direccion": h.Direccion,
		"nivel":     h.Nivel,
		"tipo":      h.Tipo,
		"distancia": h.DistanciaMetros,
	}
	return f
}

// HospitalesCercanosToFeatures convierte la lista completa del buffer
func HospitalesCercanosToFeatures(hospitales []*models.HospitalCercano) []*geojson.Feature {
	features := make([]*geojson.Feature, len(hospitales))
	for i, h := range hospitales {
		features[i] = HospitalCercanoToFeature(h)
	}
	return features
}

// HospitalToFeature convierte un hospital de la capa en un Feature
func HospitalToFeature(h *models.Hospital) *geojson.Feature {
	f := geojson.NewFeature(orb.Point{h.Longitud, h.Latitud})
	f.Properties = geojson.Properties{
		"gid":       h.GID,
		"nombre":    h.Nombre,
		"direccion": h.Direccion,
		"nivel":     h.Nivel,
		"tipo":      h.Tipo,
	}
	if h.Prestador != "" {
		f.Properties["prestador"] = h.Prestador
	}
	return f
}

// HospitalesToFeatureCollection arma la FeatureCollection de la capa
func HospitalesToFeatureCollection(hospitales []*models.Hospital) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, h := range hospitales {
		fc.Append(HospitalToFeature(h))
	}
	return fc
}

// RutaToFeature envuelve la geometría de la ruta en un Feature sin propiedades.
// La distancia y el tiempo los deriva el cliente de esta geometría.
func RutaToFeature(ruta orb.MultiLineString) *geojson.Feature {
	f := geojson.NewFeature(ruta)
	f.Properties = geojson.Properties{}
	return f
}

// ElementosToResponses convierte los resultados del análisis por polígono
func ElementosToResponses(elementos []*models.ElementoEnPoligono) []*ElementoPoligonoResponse {
	responses := make([]*ElementoPoligonoResponse, len(elementos))
	for i, e := range elementos {
		responses[i] = &ElementoPoligonoResponse{
			Nombre:    e.Nombre,
			Tipo:      e.Tipo,
			Localidad: e.Localidad,
			Lat:       e.Lat,
			Lon:       e.Lon,
		}
	}
	return responses
}

// ConteosToResponses convierte los conteos por localidad
func ConteosToResponses(conteos []*models.LocalidadConteo) []*LocalidadConteoResponse {
	responses := make([]*LocalidadConteoResponse, len(conteos))
	for i, c := range conteos {
		responses[i] = &LocalidadConteoResponse{
			Nombre:        c.Nombre,
			HospitalCount: c.HospitalCount,
		}
	}
	return responses
}

// IncidenteToResponse convierte el modelo en la vista del cliente
func IncidenteToResponse(incidente *models.Incidente) *IncidenteResponse {
	return &IncidenteResponse{
		ID:                incidente.ID,
		NombreAccidentado: incidente.NombreAccidentado,
		UsuarioRegistro:   incidente.UsuarioRegistro,
		FechaIncidente:    incidente.FechaIncidente.Format(fechaFormato),
		HospitalDestino:   incidente.HospitalDestino,
		DistanciaKm:       incidente.DistanciaKm,
		TiempoMin:         incidente.TiempoMin,
		PuntoGeoJSON:      geojson.NewGeometry(orb.Point{incidente.Longitud, incidente.Latitud}),
	}
}

// IncidentesToResponses convierte la lista de incidentes
func IncidentesToResponses(incidentes []*models.Incidente) []*IncidenteResponse {
	responses := make([]*IncidenteResponse, len(incidentes))
	for i, incidente := range incidentes {
		responses[i] = IncidenteToResponse(incidente)
	}
	return responses
}

// DTOToActualizacionHospital convierte la petición de edición de hospital
func DTOToActualizacionHospital(dto ActualizarHospitalRequest) *models.ActualizacionHospital {
	return &models.ActualizacionHospital{
		GID:    dto.ID,
		Nombre: dto.Nombre,
		Lat:    dto.Lat,
		Lon:    dto.Lon,
	}
}

// DTOToIncidenteModel convierte la petición de registro en el modelo de dominio
func DTOToIncidenteModel(dto RegistrarIncidenteRequest) *models.Incidente {
	return &models.Incidente{
		NombreAccidentado: dto.NombreAccidentado,
		UsuarioRegistro:   dto.UsuarioRegistro,
		Latitud:           dto.Lat,
		Longitud:          dto.Lng,
		HospitalDestino:   dto.HospitalDestino,
		DistanciaKm:       dto.DistanciaKm,
		TiempoMin:         dto.TiempoMin,
	}
}
