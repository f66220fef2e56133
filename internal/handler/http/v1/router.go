package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registra todos los endpoints de la API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Núcleo de análisis espacial
	analisis := api.Group("/analisis")
	{
		analisis.POST("/incidente", h.analizarIncidente)
		analisis.POST("/ruta", h.calcularRuta)
		analisis.POST("/poligono", h.analizarPoligono)
	}

	// Gestión de incidentes registrados
	incidentes := api.Group("/incidentes")
	{
		incidentes.POST("/registrar", h.registrarIncidente)
		incidentes.GET("", h.listarIncidentes)
		incidentes.GET("/:id", h.obtenerIncidente)
		incidentes.PUT("/editar/:id", h.actualizarIncidente)
		incidentes.DELETE("/:id", h.eliminarIncidente)
	}

	// Capa de hospitales; las mutaciones requieren llave de API
	hospitales := api.Group("/hospitales")
	{
		hospitales.GET("/todos", h.todosLosHospitales)
		hospitales.GET("/cercanos", h.hospitalesCercanos)

		admin := hospitales.Group("")
		admin.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
		{
			admin.PUT("/actualizar", h.actualizarHospital)
			admin.DELETE("/:id", h.eliminarHospital)
		}
	}

	// Conteo de hospitales por localidad
	api.GET("/localidades/conteo-hospitales", h.conteoLocalidades)

	// Health-check
	api.GET("/system/health", h.healthCheck)
}
