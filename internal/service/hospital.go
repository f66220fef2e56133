package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/JuanC-01/ProyectoLineaB/internal/models"
)

// HospitalRepository define el contrato para la capa de hospitales
type HospitalRepository interface {
	GetAll(ctx context.Context) ([]*models.Hospital, error)
	FindCercanos(ctx context.Context, lat, lon, distanciaMetros float64) ([]*models.Hospital, error)
	Update(ctx context.Context, cambio *models.ActualizacionHospital) (*models.Hospital, error)
	Delete(ctx context.Context, gid int64) error
	GetCapaFromCache(ctx context.Context) ([]*models.Hospital, error)
	SetCapaCache(ctx context.Context, hospitales []*models.Hospital) error
	InvalidateCapaCache(ctx context.Context) error
}

// HospitalService define el contrato de la lógica de negocio de hospitales
type HospitalService interface {
	ObtenerTodos(ctx context.Context) ([]*models.Hospital, error)
	ObtenerCercanos(ctx context.Context, lat, lon, distanciaMetros float64) ([]*models.Hospital, error)
	Actualizar(ctx context.Context, cambio *models.ActualizacionHospital) (*models.Hospital, error)
	Eliminar(ctx context.Context, gid int64) error
}

type hospitalService struct {
	repo   HospitalRepository
	logger *logrus.Logger
}

func NewHospitalService(repo HospitalRepository, logger *logrus.Logger) HospitalService {
	return &hospitalService{
		repo:   repo,
		logger: logger,
	}
}

// ObtenerTodos devuelve la capa completa de hospitales, pasando por la caché
func (s *hospitalService) ObtenerTodos(ctx context.Context) ([]*models.Hospital, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "hospital",
		"method":  "ObtenerTodos",
	})

	if cached, err := s.repo.GetCapaFromCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to read hospital layer from cache")
	} else if cached != nil {
		log.Debug("Hospital layer served from cache")
		return cached, nil
	}

	log.Info("Fetching full hospital layer")
	hospitales, err := s.repo.GetAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to fetch hospital layer")
		return nil, fmt.Errorf("service: no se pudo obtener la capa de hospitales: %w", err)
	}

	if err := s.repo.SetCapaCache(ctx, hospitales); err != nil {
		log.WithError(err).Warn("Failed to cache hospital layer")
	}
	return hospitales, nil
}

// ObtenerCercanos devuelve los hospitales a menos de la distancia dada
func (s *hospitalService) ObtenerCercanos(ctx context.Context, lat, lon, distanciaMetros float64) ([]*models.Hospital, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "hospital",
		"method":  "ObtenerCercanos",
	})

	if err := validarCoordenada(lat, lon); err != nil {
		log.WithError(err).Warn("Invalid search coordinates")
		return nil, err
	}
	if distanciaMetros < 0 {
		return nil, fmt.Errorf("%w: la distancia no puede ser negativa", ErrValidacion)
	}

	hospitales, err := s.repo.FindCercanos(ctx, lat, lon, distanciaMetros)
	if err != nil {
		log.WithError(err).Error("Failed to find nearby hospitals")
		return nil, fmt.Errorf("service: no se pudo buscar hospitales cercanos: %w", err)
	}
	return hospitales, nil
}

// Actualizar aplica una edición parcial: solo nombre, solo ubicación, o ambos
func (s *hospitalService) Actualizar(ctx context.Context, cambio *models.ActualizacionHospital) (*models.Hospital, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "hospital",
		"method":       "Actualizar",
		"hospital_gid": cambio.GID,
	})
	log.Info("Attempting to update hospital")

	tieneNombre := strings.TrimSpace(cambio.Nombre) != ""
	tieneUbicacion := cambio.Lat != nil && cambio.Lon != nil
	if !tieneNombre && !tieneUbicacion {
		log.Warn("Invalid hospital update combination")
		return nil, fmt.Errorf("%w: se requiere un nombre o una ubicación completa", ErrValidacion)
	}
	if tieneUbicacion {
		if err := validarCoordenada(*cambio.Lat, *cambio.Lon); err != nil {
			log.WithError(err).Warn("Invalid hospital location")
			return nil, err
		}
	}

	hospital, err := s.repo.Update(ctx, cambio)
	if err != nil {
		log.WithError(err).Warn("Failed to update hospital in repository")
		return nil, fmt.Errorf("service: no se pudo actualizar el hospital: %w", err)
	}

	if err := s.repo.InvalidateCapaCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate hospital layer cache")
	}

	log.Info("Hospital updated successfully")
	return hospital, nil
}

// Eliminar borra un hospital de la capa. Los incidentes que lo referencian por
// nombre no se tocan: el destino es una copia histórica.
func (s *hospitalService) Eliminar(ctx context.Context, gid int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "hospital",
		"method":       "Eliminar",
		"hospital_gid": gid,
	})
	log.Info("Attempting to delete hospital")

	if err := s.repo.Delete(ctx, gid); err != nil {
		log.WithError(err).Warn("Failed to delete hospital in repository")
		return fmt.Errorf("service: no se pudo eliminar el hospital: %w", err)
	}

	if err := s.repo.InvalidateCapaCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate hospital layer cache")
	}

	log.Info("Hospital deleted successfully")
	return nil
}
