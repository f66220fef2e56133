package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/JuanC-01/ProyectoLineaB/internal/models"
	"github.com/JuanC-01/ProyectoLineaB/internal/service/mocks"
	"github.com/JuanC-01/ProyectoLineaB/pkg/graph"
)

// newTestAnalysisService crea el servicio de análisis con el repositorio
// mockeado y la malla vial que se le pase (puede ser nil).
func newTestAnalysisService(t *testing.T, red *graph.Graph) (AnalysisService, *mocks.MockAnalysisRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAnalysisRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // sin logs en los tests

	return NewAnalysisService(repoMock, red, logger), repoMock
}

// mallaDePrueba arma una malla mínima de tres vértices en línea, más uno
// aislado para forzar rutas imposibles.
func mallaDePrueba(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	g.AddVertex(1, orb.Point{-74.10, 4.60})
	g.AddVertex(2, orb.Point{-74.09, 4.60})
	g.AddVertex(3, orb.Point{-74.08, 4.60})
	g.AddVertex(9, orb.Point{-73.90, 4.80})
	require.NoError(t, g.AddEdge(10, 1, 2, orb.LineString{{-74.10, 4.60}, {-74.09, 4.60}}))
	require.NoError(t, g.AddEdge(20, 2, 3, orb.LineString{{-74.09, 4.60}, {-74.08, 4.60}}))
	return g
}

func poligonoDePrueba() orb.Polygon {
	return orb.Polygon{orb.Ring{
		{-74.12, 4.58}, {-74.06, 4.58}, {-74.06, 4.64}, {-74.12, 4.64}, {-74.12, 4.58},
	}}
}

func TestAnalizarIncidente_Success(t *testing.T) {
	// Preparación
	service, repoMock := newTestAnalysisService(t, nil)
	ctx := context.Background()
	lat, lon, distancia := 4.60, -74.08, 500.0
	esperados := []*models.HospitalCercano{
		{Hospital: models.Hospital{GID: 1, Nombre: "Hospital San Ignacio"}, DistanciaMetros: 120},
		{Hospital: models.Hospital{GID: 2, Nombre: "Clínica del Country"}, DistanciaMetros: 430},
	}

	// Expectativas
	repoMock.EXPECT().
		FindHospitalesEnBuffer(ctx, lat, lon, distancia).
		Return(esperados, nil).
		Times(1)

	// Acción
	hospitales, err := service.AnalizarIncidente(ctx, lat, lon, distancia)

	// Verificaciones
	require.NoError(t, err)
	assert.Equal(t, esperados, hospitales)
}

func TestAnalizarIncidente_BufferVacio(t *testing.T) {
	// Preparación
	service, repoMock := newTestAnalysisService(t, nil)
	ctx := context.Background()

	// Expectativas: ningún hospital dentro del buffer es un resultado válido
	repoMock.EXPECT().
		FindHospitalesEnBuffer(ctx, 4.60, -74.08, 50.0).
		Return([]*models.HospitalCercano{}, nil).
		Times(1)

	// Acción
	hospitales, err := service.AnalizarIncidente(ctx, 4.60, -74.08, 50.0)

	// Verificaciones
	require.NoError(t, err)
	assert.Empty(t, hospitales)
}

func TestAnalizarIncidente_CoordenadaInvalida(t *testing.T) {
	// Preparación: el repositorio no debe llegar a consultarse
	service, _ := newTestAnalysisService(t, nil)

	// Acción
	_, err := service.AnalizarIncidente(context.Background(), 91.0, -74.08, 500.0)

	// Verificaciones
	require.ErrorIs(t, err, ErrValidacion)
}

func TestAnalizarIncidente_DistanciaNegativa(t *testing.T) {
	// Preparación
	service, _ := newTestAnalysisService(t, nil)

	// Acción
	_, err := service.AnalizarIncidente(context.Background(), 4.60, -74.08, -10.0)

	// Verificaciones
	require.ErrorIs(t, err, ErrValidacion)
}

func TestAnalizarIncidente_FallaDeRepositorio(t *testing.T) {
	// Preparación
	service, repoMock := newTestAnalysisService(t, nil)
	ctx := context.Background()
	dbError := fmt.Errorf("conexión perdida")

	// Expectativas
	repoMock.EXPECT().
		FindHospitalesEnBuffer(ctx, 4.60, -74.08, 500.0).
		Return(nil, dbError).
		Times(1)

	// Acción
	_, err := service.AnalizarIncidente(ctx, 4.60, -74.08, 500.0)

	// Verificaciones
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrValidacion)
	assert.ErrorContains(t, err, "no se pudo analizar el incidente")
}

func TestCalcularRuta_Success(t *testing.T) {
	// Preparación: puntos cercanos a los vértices 1 y 3 de la malla
	service, _ := newTestAnalysisService(t, mallaDePrueba(t))
	ctx := context.Background()

	// Acción
	ruta, err := service.CalcularRuta(ctx, 4.6001, -74.1001, 4.6001, -74.0799)

	// Verificaciones: dos tramos recorridos de oeste a este
	require.NoError(t, err)
	require.Len(t, ruta, 2)
	assert.Equal(t, orb.Point{-74.10, 4.60}, ruta[0][0])
	assert.Equal(t, orb.Point{-74.08, 4.60}, ruta[1][len(ruta[1])-1])
}

func TestCalcularRuta_MismoVerticeDeAjuste(t *testing.T) {
	// Preparación: ambos extremos caen sobre el vértice 2
	service, _ := newTestAnalysisService(t, mallaDePrueba(t))

	// Acción
	_, err := service.CalcularRuta(context.Background(), 4.6001, -74.0901, 4.5999, -74.0899)

	// Verificaciones
	require.ErrorIs(t, err, ErrSinRuta)
}

func TestCalcularRuta_SinConexion(t *testing.T) {
	// Preparación: el destino se ajusta al vértice aislado 9
	service, _ := newTestAnalysisService(t, mallaDePrueba(t))

	// Acción
	_, err := service.CalcularRuta(context.Background(), 4.60, -74.10, 4.80, -73.90)

	// Verificaciones
	require.ErrorIs(t, err, ErrSinRuta)
}

func TestCalcularRuta_MallaNoCargada(t *testing.T) {
	// Preparación
	service, _ := newTestAnalysisService(t, nil)

	// Acción
	_, err := service.CalcularRuta(context.Background(), 4.60, -74.10, 4.60, -74.08)

	// Verificaciones: es una falla de infraestructura, no un "sin ruta"
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSinRuta)
}

func TestCalcularRuta_CoordenadaInvalida(t *testing.T) {
	// Preparación
	service, _ := newTestAnalysisService(t, mallaDePrueba(t))

	// Acción
	_, err := service.CalcularRuta(context.Background(), 4.60, -181.0, 4.60, -74.08)

	// Verificaciones
	require.ErrorIs(t, err, ErrValidacion)
}

func TestAnalizarPoligono_Success(t *testing.T) {
	// Preparación
	service, repoMock := newTestAnalysisService(t, nil)
	ctx := context.Background()
	poligono := poligonoDePrueba()
	esperados := []*models.ElementoEnPoligono{
		{Nombre: "Hospital San Ignacio", Tipo: models.TipoHospital, Localidad: "Chapinero"},
		{Nombre: "Pedro Pérez", Tipo: models.TipoAccidente, Localidad: "Teusaquillo"},
	}

	// Expectativas
	repoMock.EXPECT().
		FindElementosEnPoligono(ctx, poligono).
		Return(esperados, nil).
		Times(1)

	// Acción
	elementos, err := service.AnalizarPoligono(ctx, poligono)

	// Verificaciones
	require.NoError(t, err)
	assert.Equal(t, esperados, elementos)
}

func TestAnalizarPoligono_PoligonoDegenerado(t *testing.T) {
	// Preparación: un anillo de tres puntos no cierra un polígono
	service, _ := newTestAnalysisService(t, nil)
	degenerado := orb.Polygon{orb.Ring{{-74.1, 4.6}, {-74.0, 4.6}, {-74.1, 4.6}}}

	// Acción
	_, err := service.AnalizarPoligono(context.Background(), degenerado)

	// Verificaciones
	require.ErrorIs(t, err, ErrValidacion)
}

func TestAnalizarPoligono_SinElementos(t *testing.T) {
	// Preparación
	service, repoMock := newTestAnalysisService(t, nil)
	ctx := context.Background()
	poligono := poligonoDePrueba()

	// Expectativas
	repoMock.EXPECT().
		FindElementosEnPoligono(ctx, poligono).
		Return([]*models.ElementoEnPoligono{}, nil).
		Times(1)

	// Acción
	elementos, err := service.AnalizarPoligono(ctx, poligono)

	// Verificaciones
	require.NoError(t, err)
	assert.Empty(t, elementos)
}

func TestConteoPorLocalidad_Success(t *testing.T) {
	// Preparación
	service, repoMock := newTestAnalysisService(t, nil)
	ctx := context.Background()
	esperado := []*models.LocalidadConteo{
		{Nombre: "Chapinero", HospitalCount: 12},
		{Nombre: "Sumapaz", HospitalCount: 0},
	}

	// Expectativas
	repoMock.EXPECT().
		ConteoHospitalesPorLocalidad(ctx).
		Return(esperado, nil).
		Times(1)

	// Acción
	conteo, err := service.ConteoPorLocalidad(ctx)

	// Verificaciones
	require.NoError(t, err)
	assert.Equal(t, esperado, conteo)
}

func TestConteoPorLocalidad_FallaDeRepositorio(t *testing.T) {
	// Preparación
	service, repoMock := newTestAnalysisService(t, nil)
	ctx := context.Background()

	// Expectativas
	repoMock.EXPECT().
		ConteoHospitalesPorLocalidad(ctx).
		Return(nil, fmt.Errorf("conexión perdida")).
		Times(1)

	// Acción
	_, err := service.ConteoPorLocalidad(ctx)

	// Verificaciones
	require.Error(t, err)
	assert.ErrorContains(t, err, "no se pudo obtener el conteo por localidad")
}
