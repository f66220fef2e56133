package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/JuanC-01/ProyectoLineaB/internal/config"
	"github.com/JuanC-01/ProyectoLineaB/internal/service"
)

type Handler struct {
	analysisService service.AnalysisService
	incidentService service.IncidentService
	hospitalService service.HospitalService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	analysisService service.AnalysisService,
	incidentService service.IncidentService,
	hospitalService service.HospitalService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		analysisService: analysisService,
		incidentService: incidentService,
		hospitalService: hospitalService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// respondServiceError traduce los errores centinela del servicio a códigos
// HTTP. Una falla del almacén siempre termina en 500: nunca se presenta como
// un resultado vacío.
func respondServiceError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrValidacion):
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNoEncontrado):
		log.WithError(err).Warn("Record not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "registro no encontrado"})
	default:
		log.WithError(err).Error("Internal error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno del servidor"})
	}
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
