package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/JuanC-01/ProyectoLineaB/internal/models"
	"github.com/JuanC-01/ProyectoLineaB/internal/webhook"
)

// IncidentRepository define el contrato para la persistencia de incidentes
type IncidentRepository interface {
	Create(ctx context.Context, incidente *models.Incidente) error
	GetByID(ctx context.Context, id int64) (*models.Incidente, error)
	List(ctx context.Context, fecha string) ([]*models.Incidente, error)
	UpdateNombres(ctx context.Context, id int64, nombreAccidentado, usuarioRegistro string) (*models.Incidente, error)
	Delete(ctx context.Context, id int64) error
	GetIncidenteFromCache(ctx context.Context, id int64) (*models.Incidente, error)
	SetIncidenteCache(ctx context.Context, incidente *models.Incidente) error
	InvalidateIncidenteCache(ctx context.Context, id int64) error
}

// IncidentService define el contrato de la lógica de negocio de incidentes.
// Las métricas de ruta (distancia, tiempo, hospital destino) las aporta el
// cliente al registrar y quedan inmutables: el servidor no las recalcula.
type IncidentService interface {
	Registrar(ctx context.Context, incidente *models.Incidente) error
	Listar(ctx context.Context, fecha string) ([]*models.Incidente, error)
	Obtener(ctx context.Context, id int64) (*models.Incidente, error)
	Actualizar(ctx context.Context, id int64, nombreAccidentado, usuarioRegistro string) (*models.Incidente, error)
	Eliminar(ctx context.Context, id int64) error
}

type incidentService struct {
	repo      IncidentRepository
	logger    *logrus.Logger
	publisher webhook.WebhookPublisher
}

func NewIncidentService(repo IncidentRepository, logger *logrus.Logger, publisher webhook.WebhookPublisher) IncidentService {
	return &incidentService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
	}
}

// Registrar valida los campos obligatorios, persiste el incidente y publica el
// evento de registro. La entrega del webhook es de mejor esfuerzo: su falla no
// revierte el registro.
func (s *incidentService) Registrar(ctx context.Context, incidente *models.Incidente) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "Registrar",
		"usuario": incidente.UsuarioRegistro,
	})
	log.Info("Attempting to register a new incident")

	if strings.TrimSpace(incidente.NombreAccidentado) == "" ||
		strings.TrimSpace(incidente.UsuarioRegistro) == "" ||
		strings.TrimSpace(incidente.HospitalDestino) == "" {
		log.Warn("Missing required fields for incident registration")
		return fmt.Errorf("%w: faltan campos obligatorios para registrar el incidente", ErrValidacion)
	}
	if err := validarCoordenada(incidente.Latitud, incidente.Longitud); err != nil {
		log.WithError(err).Warn("Invalid incident coordinates")
		return err
	}

	if err := s.repo.Create(ctx, incidente); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: no se pudo registrar el incidente: %w", err)
	}

	log.WithField("incidente_id", incidente.ID).Info("Incident registered successfully")

	evento := webhook.WebhookEvent{
		EventID:           uuid.New(),
		IncidenteID:       incidente.ID,
		NombreAccidentado: incidente.NombreAccidentado,
		UsuarioRegistro:   incidente.UsuarioRegistro,
		HospitalDestino:   incidente.HospitalDestino,
		Latitud:           incidente.Latitud,
		Longitud:          incidente.Longitud,
		DistanciaKm:       incidente.DistanciaKm,
		TiempoMin:         incidente.TiempoMin,
		Timestamp:         time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, evento); err != nil {
		// El registro ya quedó persistido; solo se reporta la falla de publicación
		log.WithError(err).Error("Failed to publish incident registration event")
	}
	return nil
}

// Listar devuelve los incidentes del más reciente al más antiguo. El filtro
// opcional restringe a una fecha calendario exacta (YYYY-MM-DD).
func (s *incidentService) Listar(ctx context.Context, fecha string) ([]*models.Incidente, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "Listar",
		"fecha":   fecha,
	})

	if fecha != "" {
		if _, err := time.Parse("2006-01-02", fecha); err != nil {
			log.WithError(err).Warn("Invalid date filter")
			return nil, fmt.Errorf("%w: la fecha debe tener formato YYYY-MM-DD", ErrValidacion)
		}
	}

	log.Info("Listing incidents")
	incidentes, err := s.repo.List(ctx, fecha)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: no se pudo listar los incidentes: %w", err)
	}

	log.WithField("count", len(incidentes)).Info("Incidents listed successfully")
	return incidentes, nil
}

// Obtener busca un incidente por id, pasando primero por la caché
func (s *incidentService) Obtener(ctx context.Context, id int64) (*models.Incidente, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "incident",
		"method":       "Obtener",
		"incidente_id": id,
	})
	log.Info("Fetching incident by ID")

	if cached, err := s.repo.GetIncidenteFromCache(ctx, id); err != nil {
		// Falla de caché no es falla de lectura: seguimos a la base de datos
		log.WithError(err).Warn("Failed to read incident from cache")
	} else if cached != nil {
		log.Debug("Incident served from cache")
		return cached, nil
	}

	incidente, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from repository")
		return nil, fmt.Errorf("service: no se pudo obtener el incidente: %w", err)
	}

	if err := s.repo.SetIncidenteCache(ctx, incidente); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}
	return incidente, nil
}

// Actualizar cambia únicamente el nombre del accidentado y el usuario que
// registró. Geometría, destino y métricas quedan intactos.
func (s *incidentService) Actualizar(ctx context.Context, id int64, nombreAccidentado, usuarioRegistro string) (*models.Incidente, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "incident",
		"method":       "Actualizar",
		"incidente_id": id,
	})
	log.Info("Attempting to update incident names")

	if strings.TrimSpace(nombreAccidentado) == "" || strings.TrimSpace(usuarioRegistro) == "" {
		log.Warn("Missing required fields for incident update")
		return nil, fmt.Errorf("%w: se requieren nombre_accidentado y usuario_registro", ErrValidacion)
	}

	actualizado, err := s.repo.UpdateNombres(ctx, id, nombreAccidentado, usuarioRegistro)
	if err != nil {
		log.WithError(err).Warn("Failed to update incident in repository")
		return nil, fmt.Errorf("service: no se pudo actualizar el incidente: %w", err)
	}

	if err := s.repo.InvalidateIncidenteCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.Info("Incident updated successfully")
	return actualizado, nil
}

// Eliminar borra el incidente de forma definitiva
func (s *incidentService) Eliminar(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "incident",
		"method":       "Eliminar",
		"incidente_id": id,
	})
	log.Info("Attempting to delete incident")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete incident in repository")
		return fmt.Errorf("service: no se pudo eliminar el incidente: %w", err)
	}

	if err := s.repo.InvalidateIncidenteCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.Info("Incident deleted successfully")
	return nil
}
