package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/JuanC-01/ProyectoLineaB/internal/config"
	"github.com/JuanC-01/ProyectoLineaB/internal/models"
	"github.com/JuanC-01/ProyectoLineaB/internal/service"
	"github.com/JuanC-01/ProyectoLineaB/internal/service/mocks"
)

type testMocks struct {
	analysis *mocks.MockAnalysisService
	incident *mocks.MockIncidentService
	hospital *mocks.MockHospitalService
}

// newTestHandler crea el Handler con los tres servicios mockeados
func newTestHandler(t *testing.T) (testMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := testMocks{
		analysis: mocks.NewMockAnalysisService(ctrl),
		incident: mocks.NewMockIncidentService(ctrl),
		hospital: mocks.NewMockHospitalService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // sin logs en los tests

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(m.analysis, m.incident, m.hospital, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return m, router
}

// makeRequest ejecuta una petición HTTP contra el router de pruebas
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAnalizarIncidente_Success(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := AnalisisIncidenteRequest{Lat: 4.6285, Lon: -74.0647, Distancia: 300}
	hospitales := []*models.HospitalCercano{
		{Hospital: models.Hospital{GID: 1, Nombre: "Hospital San Ignacio", Latitud: 4.6281, Longitud: -74.0651}, DistanciaMetros: 120},
		{Hospital: models.Hospital{GID: 2, Nombre: "Clínica del Country", Latitud: 4.6250, Longitud: -74.0610}, DistanciaMetros: 280},
	}

	m.analysis.EXPECT().
		AnalizarIncidente(gomock.Any(), reqBody.Lat, reqBody.Lon, reqBody.Distancia).
		Return(hospitales, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/analisis/incidente", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp AnalisisIncidenteResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp.HospitalesEnBuffer, 2)
	assert.Equal(t, "Hospital San Ignacio", resp.HospitalesEnBuffer[0].Properties["nombre"])
	assert.EqualValues(t, 120, resp.HospitalesEnBuffer[0].Properties["distancia"])
}

func TestAnalizarIncidente_BufferVacio(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := AnalisisIncidenteRequest{Lat: 4.6285, Lon: -74.0647, Distancia: 10}

	m.analysis.EXPECT().
		AnalizarIncidente(gomock.Any(), reqBody.Lat, reqBody.Lon, reqBody.Distancia).
		Return([]*models.HospitalCercano{}, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/analisis/incidente", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"hospitalesEnBuffer":[]`)
}

func TestAnalizarIncidente_InvalidJSON(t *testing.T) {
	m, router := newTestHandler(t)

	m.analysis.EXPECT().AnalizarIncidente(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/analisis/incidente", bytes.NewBufferString(`{"lat": 4.6`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cuerpo de la petición inválido")
}

func TestAnalizarIncidente_ValidationError(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := AnalisisIncidenteRequest{Lon: -74.0647, Distancia: 300} // falta Lat

	m.analysis.EXPECT().AnalizarIncidente(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/analisis/incidente", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Lat' failed on the 'required' tag")
}

func TestAnalizarIncidente_ServiceError(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := AnalisisIncidenteRequest{Lat: 4.6285, Lon: -74.0647, Distancia: 300}

	m.analysis.EXPECT().
		AnalizarIncidente(gomock.Any(), reqBody.Lat, reqBody.Lon, reqBody.Distancia).
		Return(nil, errors.New("conexión perdida")).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/analisis/incidente", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "error interno del servidor")
}

func TestCalcularRuta_Success(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := RutaRequest{LatInicio: 4.60, LonInicio: -74.10, LatFin: 4.60, LonFin: -74.08}
	ruta := orb.MultiLineString{
		{{-74.10, 4.60}, {-74.09, 4.60}},
		{{-74.09, 4.60}, {-74.08, 4.60}},
	}

	m.analysis.EXPECT().
		CalcularRuta(gomock.Any(), reqBody.LatInicio, reqBody.LonInicio, reqBody.LatFin, reqBody.LonFin).
		Return(ruta, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/analisis/ruta", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp RutaResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.NotNil(t, resp.Ruta)
	assert.Equal(t, "MultiLineString", resp.Ruta.Geometry.GeoJSONType())
}

func TestCalcularRuta_SinRuta(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := RutaRequest{LatInicio: 4.60, LonInicio: -74.10, LatFin: 4.80, LonFin: -73.90}

	m.analysis.EXPECT().
		CalcularRuta(gomock.Any(), reqBody.LatInicio, reqBody.LonInicio, reqBody.LatFin, reqBody.LonFin).
		Return(nil, service.ErrSinRuta).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/analisis/ruta", bytes.NewBuffer(bodyBytes))

	// Sin ruta no es un error: el cliente recibe ruta null
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ruta":null`)
}

func TestCalcularRuta_ValidationError(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := RutaRequest{LatInicio: 4.60, LonInicio: -74.10} // faltan los extremos finales

	m.analysis.EXPECT().CalcularRuta(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/analisis/ruta", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'LatFin' failed on the 'required' tag")
}

func TestAnalizarPoligono_Success(t *testing.T) {
	m, router := newTestHandler(t)
	body := `{"geometry":{"type":"Polygon","coordinates":[[[-74.12,4.58],[-74.06,4.58],[-74.06,4.64],[-74.12,4.64],[-74.12,4.58]]]}}`
	elementos := []*models.ElementoEnPoligono{
		{Nombre: "Hospital San Ignacio", Tipo: models.TipoHospital, Localidad: "Chapinero", Lat: 4.6281, Lon: -74.0651},
		{Nombre: "Pedro Pérez", Tipo: models.TipoAccidente, Localidad: "Teusaquillo", Lat: 4.6300, Lon: -74.0800},
	}

	m.analysis.EXPECT().
		AnalizarPoligono(gomock.Any(), gomock.Any()).
		Return(elementos, nil).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/analisis/poligono", bytes.NewBufferString(body))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []ElementoPoligonoResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, models.TipoHospital, resp[0].Tipo)
	assert.Equal(t, "Teusaquillo", resp[1].Localidad)
}

func TestAnalizarPoligono_GeometriaNoEsPoligono(t *testing.T) {
	m, router := newTestHandler(t)
	body := `{"geometry":{"type":"Point","coordinates":[-74.08,4.60]}}`

	m.analysis.EXPECT().AnalizarPoligono(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/analisis/poligono", bytes.NewBufferString(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "la geometría debe ser un polígono")
}

func TestAnalizarPoligono_GeometriaInvalida(t *testing.T) {
	m, router := newTestHandler(t)
	body := `{"geometry":{"type":"Polygon","coordinates":"no"}}`

	m.analysis.EXPECT().AnalizarPoligono(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/analisis/poligono", bytes.NewBufferString(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "geometría del polígono inválida")
}

func TestConteoLocalidades_Success(t *testing.T) {
	m, router := newTestHandler(t)
	conteos := []*models.LocalidadConteo{
		{Nombre: "Chapinero", HospitalCount: 12},
		{Nombre: "Sumapaz", HospitalCount: 0},
	}

	m.analysis.EXPECT().ConteoPorLocalidad(gomock.Any()).Return(conteos, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/localidades/conteo-hospitales", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []LocalidadConteoResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, 0, resp[1].HospitalCount)
}

func TestRegistrarIncidente_Success(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := RegistrarIncidenteRequest{
		NombreAccidentado: "Pedro Pérez",
		UsuarioRegistro:   "operador1",
		Lat:               4.6285,
		Lng:               -74.0647,
		HospitalDestino:   "Hospital San Ignacio",
		DistanciaKm:       2.35,
		TiempoMin:         3.53,
	}
	fecha := time.Date(2026, 8, 15, 14, 30, 0, 0, time.UTC)

	m.incident.EXPECT().
		Registrar(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incidente) error {
			assert.Equal(t, reqBody.NombreAccidentado, inc.NombreAccidentado)
			assert.Equal(t, reqBody.Lng, inc.Longitud)
			// Simulamos id y fecha asignados por la base de datos
			inc.ID = 7
			inc.FechaIncidente = fecha
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidentes/registrar", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp RegistrarIncidenteResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.IncidenteID)
	assert.Equal(t, "Incidente registrado con éxito.", resp.Msg)
	assert.Equal(t, "15/08/2026, 14:30:00", resp.FechaRegistro)
}

func TestRegistrarIncidente_ValidationError(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := RegistrarIncidenteRequest{ // falta NombreAccidentado
		UsuarioRegistro: "operador1",
		Lat:             4.6285,
		Lng:             -74.0647,
		HospitalDestino: "Hospital San Ignacio",
	}

	m.incident.EXPECT().Registrar(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidentes/registrar", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'NombreAccidentado' failed on the 'required' tag")
}

func TestListarIncidentes_Success(t *testing.T) {
	m, router := newTestHandler(t)
	incidentes := []*models.Incidente{
		{ID: 2, NombreAccidentado: "María López", Latitud: 4.63, Longitud: -74.07},
		{ID: 1, NombreAccidentado: "Pedro Pérez", Latitud: 4.62, Longitud: -74.06},
	}

	m.incident.EXPECT().Listar(gomock.Any(), "2026-08-15").Return(incidentes, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidentes?fecha=2026-08-15", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []IncidenteResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "María López", resp[0].NombreAccidentado)
}

func TestObtenerIncidente_Success(t *testing.T) {
	m, router := newTestHandler(t)
	incidente := &models.Incidente{
		ID:                7,
		NombreAccidentado: "Pedro Pérez",
		Latitud:           4.6285,
		Longitud:          -74.0647,
		HospitalDestino:   "Hospital San Ignacio",
	}

	m.incident.EXPECT().Obtener(gomock.Any(), int64(7)).Return(incidente, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidentes/7", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp IncidenteResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	require.NotNil(t, resp.PuntoGeoJSON)
	assert.Equal(t, "Point", resp.PuntoGeoJSON.Type)
}

func TestObtenerIncidente_InvalidID(t *testing.T) {
	m, router := newTestHandler(t)

	m.incident.EXPECT().Obtener(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidentes/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "id de incidente inválido")
}

func TestObtenerIncidente_NotFound(t *testing.T) {
	m, router := newTestHandler(t)

	m.incident.EXPECT().
		Obtener(gomock.Any(), int64(99)).
		Return(nil, fmt.Errorf("service: %w", service.ErrNoEncontrado)).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidentes/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "registro no encontrado")
}

func TestActualizarIncidente_Success(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := ActualizarIncidenteRequest{NombreAccidentado: "Juan Gómez", UsuarioRegistro: "operador2"}
	actualizado := &models.Incidente{ID: 42, NombreAccidentado: "Juan Gómez", UsuarioRegistro: "operador2"}

	m.incident.EXPECT().
		Actualizar(gomock.Any(), int64(42), reqBody.NombreAccidentado, reqBody.UsuarioRegistro).
		Return(actualizado, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/incidentes/editar/42", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp IncidenteResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "Juan Gómez", resp.NombreAccidentado)
}

func TestActualizarIncidente_ValidationError(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := ActualizarIncidenteRequest{UsuarioRegistro: "operador2"} // falta NombreAccidentado

	m.incident.EXPECT().Actualizar(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/incidentes/editar/42", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'NombreAccidentado' failed on the 'required' tag")
}

func TestActualizarIncidente_NotFound(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := ActualizarIncidenteRequest{NombreAccidentado: "Juan Gómez", UsuarioRegistro: "operador2"}

	m.incident.EXPECT().
		Actualizar(gomock.Any(), int64(99), reqBody.NombreAccidentado, reqBody.UsuarioRegistro).
		Return(nil, fmt.Errorf("service: %w", service.ErrNoEncontrado)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/incidentes/editar/99", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "registro no encontrado")
}

func TestEliminarIncidente_Success(t *testing.T) {
	m, router := newTestHandler(t)

	m.incident.EXPECT().Eliminar(gomock.Any(), int64(7)).Return(nil).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/incidentes/7", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Incidente eliminado con éxito.")
}

func TestTodosLosHospitales_Success(t *testing.T) {
	m, router := newTestHandler(t)
	hospitales := []*models.Hospital{
		{GID: 1, Nombre: "Hospital San Ignacio", Latitud: 4.6281, Longitud: -74.0651},
		{GID: 2, Nombre: "Clínica del Country", Latitud: 4.6250, Longitud: -74.0610},
	}

	m.hospital.EXPECT().ObtenerTodos(gomock.Any()).Return(hospitales, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/hospitales/todos", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"type":"FeatureCollection"`)
	assert.Contains(t, w.Body.String(), "Hospital San Ignacio")
}

func TestHospitalesCercanos_Success(t *testing.T) {
	m, router := newTestHandler(t)
	hospitales := []*models.Hospital{{GID: 1, Nombre: "Hospital San Ignacio", Latitud: 4.6281, Longitud: -74.0651}}

	m.hospital.EXPECT().ObtenerCercanos(gomock.Any(), 4.6285, -74.0647, 800.0).Return(hospitales, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/hospitales/cercanos?lat=4.6285&lon=-74.0647&distancia=800", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hospital San Ignacio")
}

func TestHospitalesCercanos_ParametrosInvalidos(t *testing.T) {
	m, router := newTestHandler(t)

	m.hospital.EXPECT().ObtenerCercanos(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/hospitales/cercanos?lat=abc&lon=-74.0647&distancia=800", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "se requieren lat, lon y distancia numéricos")
}

func TestActualizarHospital_Success(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := ActualizarHospitalRequest{ID: 5, Nombre: "Hospital Renombrado"}
	actualizado := &models.Hospital{GID: 5, Nombre: "Hospital Renombrado", Latitud: 4.6281, Longitud: -74.0651}

	m.hospital.EXPECT().
		Actualizar(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cambio *models.ActualizacionHospital) (*models.Hospital, error) {
			assert.Equal(t, int64(5), cambio.GID)
			assert.Equal(t, "Hospital Renombrado", cambio.Nombre)
			return actualizado, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/hospitales/actualizar", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hospital actualizado correctamente.")
}

func TestActualizarHospital_SinLlave(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := ActualizarHospitalRequest{ID: 5, Nombre: "Hospital Renombrado"}

	m.hospital.EXPECT().Actualizar(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/hospitales/actualizar", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "se requiere una llave de API")
}

func TestEliminarHospital_Success(t *testing.T) {
	m, router := newTestHandler(t)

	m.hospital.EXPECT().Eliminar(gomock.Any(), int64(5)).Return(nil).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/hospitales/5", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hospital eliminado correctamente.")
}

func TestEliminarHospital_LlaveInvalida(t *testing.T) {
	m, router := newTestHandler(t)

	m.hospital.EXPECT().Eliminar(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "DELETE", "/api/v1/hospitales/5", nil, map[string]string{"X-API-Key": "wrong-key"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "llave de API inválida")
}

func TestHealthCheck_Success(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAPIKeyAuthMiddleware_BearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{APIKeys: []string{"valid-key"}}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}
