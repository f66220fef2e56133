package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary Register a new incident
// @Description Register an incident with the destination hospital and the route metrics the client computed. Metrics are stored as-is and never recomputed.
// @Tags Incidentes
// @Accept json
// @Produce json
// @Param incidente body RegistrarIncidenteRequest true "Incident registration request"
// @Success 201 {object} RegistrarIncidenteResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidentes/registrar [post]
func (h *Handler) registrarIncidente(c *gin.Context) {
	var input RegistrarIncidenteRequest
	log := h.logger.WithField("method", "registrarIncidente")

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

	incidente := DTOToIncidenteModel(input)
	if err := h.incidentService.Registrar(c.Request.Context(), incidente); err != nil {
		respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, RegistrarIncidenteResponse{
		Msg:           "Incidente registrado con éxito.",
		IncidenteID:   incidente.ID,
		FechaRegistro: incidente.FechaIncidente.Format(fechaFormato),
	})
}

// @Summary List incidents
// @Description List registered incidents, newest first. The optional fecha filter restricts to one calendar date (YYYY-MM-DD).
// @Tags Incidentes
// @Accept json
// @Produce json
// @Param fecha query string false "Calendar date filter (YYYY-MM-DD)"
// @Success 200 {array} IncidenteResponse
// @Failure 400 {object} map[string]string "Invalid date filter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidentes [get]
func (h *Handler) listarIncidentes(c *gin.Context) {
	log := h.logger.WithField("method", "listarIncidentes")
	fecha := c.Query("fecha")

	incidentes, err := h.incidentService.Listar(c.Request.Context(), fecha)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, IncidentesToResponses(incidentes))
}

// @Summary Get incident by ID
// @Description Get a single registered incident by its ID.
// @Tags Incidentes
// @Accept json
// @Produce json
// @Param id path int true "Incident ID"
// @Success 200 {object} IncidenteResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidentes/{id} [get]
func (h *Handler) obtenerIncidente(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id de incidente inválido"})
		return
	}
	log := h.logger.WithField("method", "obtenerIncidente").WithField("id", id)

	incidente, err := h.incidentService.Obtener(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, IncidenteToResponse(incidente))
}

// @Summary Update an incident
// @Description Update the affected-person name and registering-user name of an incident. Geometry, destination and metrics are immutable.
// @Tags Incidentes
// @Accept json
// @Produce json
// @Param id path int true "Incident ID"
// @Param incidente body ActualizarIncidenteRequest true "Incident update request"
// @Success 200 {object} IncidenteResponse
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidentes/editar/{id} [put]
func (h *Handler) actualizarIncidente(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id de incidente inválido"})
		return
	}
	log := h.logger.WithField("method", "actualizarIncidente").WithField("id", id)

	var input ActualizarIncidenteRequest
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

	actualizado, err := h.incidentService.Actualizar(c.Request.Context(), id, input.NombreAccidentado, input.UsuarioRegistro)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, IncidenteToResponse(actualizado))
}

// @Summary Delete an incident
// @Description Delete a registered incident permanently.
// @Tags Incidentes
// @Accept json
// @Produce json
// @Param id path int true "Incident ID"
// @Success 200 {object} map[string]string "Confirmation"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidentes/{id} [delete]
func (h *Handler) eliminarIncidente(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id de incidente inválido"})
		return
	}
	log := h.logger.WithField("method", "eliminarIncidente").WithField("id", id)

	if err := h.incidentService.Eliminar(c.Request.Context(), id); err != nil {
		respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Incidente eliminado con éxito."})
}
