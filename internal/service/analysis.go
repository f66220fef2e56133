package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"

	"github.com/JuanC-01/ProyectoLineaB/internal/models"
	"github.com/JuanC-01/ProyectoLineaB/pkg/graph"
)

// AnalysisRepository define el contrato de las consultas espaciales de análisis
type AnalysisRepository interface {
	FindHospitalesEnBuffer(ctx context.Context, lat, lon, distanciaMetros float64) ([]*models.HospitalCercano, error)
	FindElementosEnPoligono(ctx context.Context, poligono orb.Polygon) ([]*models.ElementoEnPoligono, error)
	ConteoHospitalesPorLocalidad(ctx context.Context) ([]*models.LocalidadConteo, error)
}

// AnalysisService define el contrato del núcleo de análisis espacial:
// búsqueda por buffer, cálculo de rutas y clasificación por polígono
type AnalysisService interface {
	AnalizarIncidente(ctx context.Context, lat, lon, distanciaMetros float64) ([]*models.HospitalCercano, error)
	CalcularRuta(ctx context.Context, latInicio, lonInicio, latFin, lonFin float64) (orb.MultiLineString, error)
	AnalizarPoligono(ctx context.Context, poligono orb.Polygon) ([]*models.ElementoEnPoligono, error)
	ConteoPorLocalidad(ctx context.Context) ([]*models.LocalidadConteo, error)
}

type analysisService struct {
	repo   AnalysisRepository
	red    *graph.Graph
	logger *logrus.Logger
}

// NewAnalysisService crea el servicio de análisis. El grafo vial se carga una
// sola vez al arrancar; un grafo nil significa que la malla no está disponible
// y todo cálculo de ruta se reporta como falla.
func NewAnalysisService(repo AnalysisRepository, red *graph.Graph, logger *logrus.Logger) AnalysisService {
	return &analysisService{
		repo:   repo,
		red:    red,
		logger: logger,
	}
}

// AnalizarIncidente busca los hospitales dentro del buffer geodésico alrededor
// del punto del incidente, ordenados del más cercano al más lejano
func (s *analysisService) AnalizarIncidente(ctx context.Context, lat, lon, distanciaMetros float64) ([]*models.HospitalCercano, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "analysis",
		"method":    "AnalizarIncidente",
		"lat":       lat,
		"lon":       lon,
		"distancia": distanciaMetros,
	})

	if err := validarCoordenada(lat, lon); err != nil {
		log.WithError(err).Warn("Invalid incident coordinates")
		return nil, err
	}
	if distanciaMetros < 0 {
		log.Warn("Negative buffer radius")
		return nil, fmt.Errorf("%w: la distancia del buffer no puede ser negativa", ErrValidacion)
	}

	log.Info("Searching hospitals inside buffer")
	hospitales, err := s.repo.FindHospitalesEnBuffer(ctx, lat, lon, distanciaMetros)
	if err != nil {
		log.WithError(err).Error("Failed to query hospitals in buffer")
		return nil, fmt.Errorf("service: no se pudo analizar el incidente: %w", err)
	}

	// Una lista vacía es un resultado válido, no un error
	log.WithField("count", len(hospitales)).Info("Buffer analysis completed")
	return hospitales, nil
}

// CalcularRuta ajusta ambos extremos al vértice vial más cercano y corre
// Dijkstra sobre la malla. Devuelve la geometría del camino en orden de
// recorrido, o ErrSinRuta cuando los extremos caen en el mismo vértice o no
// están conectados.
func (s *analysisService) CalcularRuta(ctx context.Context, latInicio, lonInicio, latFin, lonFin float64) (orb.MultiLineString, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "analysis",
		"method":  "CalcularRuta",
	})

	if err := validarCoordenada(latInicio, lonInicio); err != nil {
		log.WithError(err).Warn("Invalid route start coordinates")
		return nil, err
	}
	if err := validarCoordenada(latFin, lonFin); err != nil {
		log.WithError(err).Warn("Invalid route end coordinates")
		return nil, err
	}
	if s.red == nil || s.red.VertexCount() == 0 {
		log.Error("Road graph is not loaded")
		return nil, fmt.Errorf("service: la malla vial no está cargada")
	}

	inicio, err := s.red.Nearest(orb.Point{lonInicio, latInicio})
	if err != nil {
		log.WithError(err).Error("Failed to snap route start")
		return nil, fmt.Errorf("service: no se pudo ajustar el punto de inicio: %w", err)
	}
	fin, err := s.red.Nearest(orb.Point{lonFin, latFin})
	if err != nil {
		log.WithError(err).Error("Failed to snap route end")
		return nil, fmt.Errorf("service: no se pudo ajustar el punto de destino: %w", err)
	}

	camino, err := s.red.ShortestPath(inicio, fin)
	if err != nil {
		if errors.Is(err, graph.ErrSinRuta) {
			log.WithFields(logrus.Fields{"inicio": inicio, "fin": fin}).Info("No route between snapped vertices")
			return nil, ErrSinRuta
		}
		log.WithError(err).Error("Route computation failed")
		return nil, fmt.Errorf("service: no se pudo calcular la ruta: %w", err)
	}

	log.WithFields(logrus.Fields{
		"inicio":       inicio,
		"fin":          fin,
		"tramos":       len(camino.Edges),
		"costo_metros": camino.Cost,
	}).Info("Route computed")
	return camino.Geometry(), nil
}

// AnalizarPoligono clasifica hospitales y accidentes dentro del polígono,
// cada uno con la localidad que contiene su punto
func (s *analysisService) AnalizarPoligono(ctx context.Context, poligono orb.Polygon) ([]*models.ElementoEnPoligono, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "analysis",
		"method":  "AnalizarPoligono",
	})

	if len(poligono) == 0 || len(poligono[0]) < 4 {
		log.Warn("Missing or degenerate polygon")
		return nil, fmt.Errorf("%w: se requiere un polígono con al menos un anillo cerrado", ErrValidacion)
	}

	log.Info("Running polygon analysis")
	elementos, err := s.repo.FindElementosEnPoligono(ctx, poligono)
	if err != nil {
		log.WithError(err).Error("Failed to run polygon analysis")
		return nil, fmt.Errorf("service: no se pudo analizar el polígono: %w", err)
	}

	log.WithField("count", len(elementos)).Info("Polygon analysis completed")
	return elementos, nil
}

// ConteoPorLocalidad devuelve cuántos hospitales contiene cada localidad
func (s *analysisService) ConteoPorLocalidad(ctx context.Context) ([]*models.LocalidadConteo, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "analysis",
		"method":  "ConteoPorLocalidad",
	})
	log.Info("Counting hospitals per locality")

	conteo, err := s.repo.ConteoHospitalesPorLocalidad(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to count hospitals per locality")
		return nil, fmt.Errorf("service: no se pudo obtener el conteo por localidad: %w", err)
	}
	return conteo, nil
}

func validarCoordenada(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitud %f fuera de rango", ErrValidacion, lat)
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("%w: longitud %f fuera de rango", ErrValidacion, lon)
	}
	return nil
}
