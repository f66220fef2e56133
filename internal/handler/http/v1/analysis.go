package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/JuanC-01/ProyectoLineaB/internal/service"
)

// @Summary Analyze an incident location
// @Description Find all hospitals whose geometry intersects the geodesic buffer around the incident point, nearest first.
// @Tags Analisis
// @Accept json
// @Produce json
// @Param analisis body AnalisisIncidenteRequest true "Incident point and buffer radius in meters"
// @Success 200 {object} AnalisisIncidenteResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /analisis/incidente [post]
func (h *Handler) analizarIncidente(c *gin.Context) {
	var input AnalisisIncidenteRequest
	log := h.logger.WithField("method", "analizarIncidente")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "cuerpo de la petición inválido"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hospitales, err := h.analysisService.AnalizarIncidente(c.Request.Context(), input.Lat, input.Lon, input.Distancia)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, AnalisisIncidenteResponse{
		HospitalesEnBuffer: HospitalesCercanosToFeatures(hospitales),
	})
}

// @Summary Compute a route over the road network
// @Description Snap both endpoints to the nearest road vertex and compute the shortest path. A null route means the endpoints are not connected, which is a normal outcome.
// @Tags Analisis
// @Accept json
// @Produce json
// @Param ruta body RutaRequest true "Route endpoints"
// @Success 200 {object} RutaResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /analisis/ruta [post]
func (h *Handler) calcularRuta(c *gin.Context) {
	var input RutaRequest
	log := h.logger.WithField("method", "calcularRuta")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "cuerpo de la petición inválido"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ruta, err := h.analysisService.CalcularRuta(c.Request.Context(), input.LatInicio, input.LonInicio, input.LatFin, input.LonFin)
	if err != nil {
		// Sin ruta no es una falla: se responde ruta null
		if errors.Is(err, service.ErrSinRuta) {
			c.JSON(http.StatusOK, RutaResponse{Ruta: nil})
			return
		}
		respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, RutaResponse{Ruta: RutaToFeature(ruta)})
}

// @Summary Classify hospitals and incidents inside a polygon
// @Description Return every hospital and incident strictly inside the polygon, each joined to its containing locality. An empty array is a valid result.
// @Tags Analisis
// @Accept json
// @Produce json
// @Param poligono body PoligonoRequest true "GeoJSON polygon"
// @Success 200 {array} ElementoPoligonoResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /analisis/poligono [post]
func (h *Handler) analizarPoligono(c *gin.Context) {
	var input PoligonoRequest
	log := h.logger.WithField("method", "analizarPoligono")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "cuerpo de la petición inválido"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	geom, err := geojson.UnmarshalGeometry(input.Geometry)
	if err != nil {
		log.WithError(err).Warn("Failed to parse polygon geometry")
		c.JSON(http.StatusBadRequest, gin.H{"error": "geometría del polígono inválida"})
		return
	}
	poligono, ok := geom.Geometry().(orb.Polygon)
	if !ok {
		log.Warn("Geometry is not a polygon")
		c.JSON(http.StatusBadRequest, gin.H{"error": "la geometría debe ser un polígono"})
		return
	}

	elementos, err := h.analysisService.AnalizarPoligono(c.Request.Context(), poligono)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ElementosToResponses(elementos))
}

// @Summary Hospital counts per locality
// @Description Count the hospitals contained in each administrative locality.
// @Tags Localidades
// @Accept json
// @Produce json
// @Success 200 {array} LocalidadConteoResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /localidades/conteo-hospitales [get]
func (h *Handler) conteoLocalidades(c *gin.Context) {
	log := h.logger.WithField("method", "conteoLocalidades")

	conteos, err := h.analysisService.ConteoPorLocalidad(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ConteosToResponses(conteos))
}
