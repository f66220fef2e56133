package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary Get the full hospital layer
// @Description Get every hospital as a GeoJSON FeatureCollection.
// @Tags Hospitales
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any "GeoJSON FeatureCollection"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hospitales/todos [get]
func (h *Handler) todosLosHospitales(c *gin.Context) {
	log := h.logger.WithField("method", "todosLosHospitales")

	hospitales, err := h.hospitalService.ObtenerTodos(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, HospitalesToFeatureCollection(hospitales))
}

// @Summary Find nearby hospitals
// @Description Get the hospitals within a distance in meters from a point, as a GeoJSON FeatureCollection.
// @Tags Hospitales
// @Accept json
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param distancia query number true "Distance in meters"
// @Success 200 {object} map[string]any "GeoJSON FeatureCollection"
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hospitales/cercanos [get]
func (h *Handler) hospitalesCercanos(c *gin.Context) {
	log := h.logger.WithField("method", "hospitalesCercanos")

	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	distancia, errDist := strconv.ParseFloat(c.Query("distancia"), 64)
	if errLat != nil || errLon != nil || errDist != nil {
		log.Warn("Invalid nearby hospital query parameters")
		c.JSON(http.StatusBadRequest, gin.H{"error": "se requieren lat, lon y distancia numéricos"})
		return
	}

	hospitales, err := h.hospitalService.ObtenerCercanos(c.Request.Context(), lat, lon, distancia)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, HospitalesToFeatureCollection(hospitales))
}

// @Summary Update a hospital
// @Description Update a hospital's name, location, or both. Requires API key.
// @Tags Hospitales
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param hospital body ActualizarHospitalRequest true "Hospital update request"
// @Success 200 {object} map[string]any "Updated hospital feature"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Hospital not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hospitales/actualizar [put]
func (h *Handler) actualizarHospital(c *gin.Context) {
	var input ActualizarHospitalRequest
	log := h.logger.WithField("method", "actualizarHospital")

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

	hospital, err := h.hospitalService.Actualizar(c.Request.Context(), DTOToActualizacionHospital(input))
	if err != nil {
		respondServiceError(c, log.WithField("id", input.ID), err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":      "Hospital actualizado correctamente.",
		"hospital": HospitalToFeature(hospital),
	})
}

// @Summary Delete a hospital
// @Description Delete a hospital from the layer. Existing incidents keep the hospital name as a historical snapshot. Requires API key.
// @Tags Hospitales
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Hospital ID"
// @Success 200 {object} map[string]string "Confirmation"
// @Failure 400 {object} map[string]string "Invalid hospital ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Hospital not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hospitales/{id} [delete]
func (h *Handler) eliminarHospital(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id de hospital inválido"})
		return
	}
	log := h.logger.WithField("method", "eliminarHospital").WithField("id", id)

	if err := h.hospitalService.Eliminar(c.Request.Context(), id); err != nil {
		respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Hospital eliminado correctamente."})
}
