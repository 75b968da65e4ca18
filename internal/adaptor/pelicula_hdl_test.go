package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sala-cine/internal/data/repository"
	"sala-cine/internal/dto/request"
	"sala-cine/internal/dto/response"
	"sala-cine/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockPeliculaService is an in-memory implementation of PeliculaService
type MockPeliculaService struct {
	peliculas map[int64]response.PeliculaResponse
	nextID    int64
	estados   map[string]string
	failAll   bool
}

func NewMockPeliculaService() *MockPeliculaService {
	return &MockPeliculaService{
		peliculas: make(map[int64]response.PeliculaResponse),
		nextID:    1,
		estados:   make(map[string]string),
	}
}

var errBoom = assert.AnError

func (m *MockPeliculaService) ObtenerTodas(ctx context.Context) ([]response.PeliculaResponse, error) {
	if m.failAll {
		return nil, errBoom
	}
	result := make([]response.PeliculaResponse, 0, len(m.peliculas))
	for _, p := range m.peliculas {
		result = append(result, p)
	}
	return result, nil
}

func (m *MockPeliculaService) ObtenerPorID(ctx context.Context, id int64) (*response.PeliculaResponse, error) {
	if m.failAll {
		return nil, errBoom
	}
	p, ok := m.peliculas[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *MockPeliculaService) Crear(ctx context.Context, req *request.CrearPeliculaRequest) (*response.PeliculaResponse, error) {
	if m.failAll {
		return nil, errBoom
	}
	p := response.PeliculaResponse{
		ID:              m.nextID,
		Titulo:          req.Titulo,
		Descripcion:     req.Descripcion,
		DuracionMinutos: req.DuracionMinutos,
		FechaEstreno:    req.FechaEstreno,
		Activo:          true,
	}
	m.peliculas[p.ID] = p
	m.nextID++
	return &p, nil
}

func (m *MockPeliculaService) Actualizar(ctx context.Context, req *request.ActualizarPeliculaRequest) (bool, error) {
	if m.failAll {
		return false, errBoom
	}
	p, ok := m.peliculas[req.ID]
	if !ok {
		return false, nil
	}
	p.Titulo = req.Titulo
	p.Descripcion = req.Descripcion
	p.DuracionMinutos = req.DuracionMinutos
	p.FechaEstreno = req.FechaEstreno
	m.peliculas[req.ID] = p
	return true, nil
}

func (m *MockPeliculaService) Eliminar(ctx context.Context, id int64) (bool, error) {
	if m.failAll {
		return false, errBoom
	}
	if _, ok := m.peliculas[id]; !ok {
		return false, nil
	}
	delete(m.peliculas, id)
	return true, nil
}

func (m *MockPeliculaService) BuscarPorNombre(ctx context.Context, nombre string) ([]response.PeliculaResponse, error) {
	if strings.TrimSpace(nombre) == "" {
		return nil, usecase.ErrNombreVacio
	}
	if m.failAll {
		return nil, errBoom
	}
	result := make([]response.PeliculaResponse, 0)
	for _, p := range m.peliculas {
		if strings.Contains(p.Titulo, strings.TrimSpace(nombre)) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *MockPeliculaService) ObtenerPorFechaEstreno(ctx context.Context, fecha time.Time) ([]response.PeliculaResponse, error) {
	if fecha.IsZero() {
		return nil, usecase.ErrFechaInvalida
	}
	if m.failAll {
		return nil, errBoom
	}
	result := make([]response.PeliculaResponse, 0)
	for _, p := range m.peliculas {
		if p.FechaEstreno.Format("2006-01-02") == fecha.Format("2006-01-02") {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *MockPeliculaService) EstadoSalaPorNombre(ctx context.Context, nombreSala string) (string, error) {
	if strings.TrimSpace(nombreSala) == "" {
		return "", usecase.ErrNombreSalaVacio
	}
	if m.failAll {
		return "", errBoom
	}
	estado, ok := m.estados[strings.TrimSpace(nombreSala)]
	if !ok {
		return repository.EstadoSalaNoEncontrada, nil
	}
	return estado, nil
}

func newTestRouter(service usecase.PeliculaService) *chi.Mux {
	handler := NewPeliculaHandler(service, zap.NewNop())
	r := chi.NewRouter()
	r.Route("/api/peliculas", func(r chi.Router) {
		r.Get("/buscar/nombre", handler.BuscarPorNombre)
		r.Get("/buscar/fecha-publicacion", handler.BuscarPorFechaPublicacion)
		r.Get("/sala/estado", handler.EstadoSala)
		r.Get("/", handler.ObtenerTodas)
		r.Get("/{id}", handler.ObtenerPorID)
		r.Post("/", handler.Crear)
		r.Put("/", handler.Actualizar)
		r.Delete("/{id}", handler.Eliminar)
	})
	return r
}

func doRequest(t *testing.T, router *chi.Mux, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func crearPelicula(t *testing.T, router *chi.Mux, titulo string) response.PeliculaResponse {
	t.Helper()

	rec := doRequest(t, router, http.MethodPost, "/api/peliculas", map[string]any{
		"titulo":          titulo,
		"duracionMinutos": 120,
		"fechaEstreno":    "2024-03-15T20:00:00Z",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var pelicula response.PeliculaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pelicula))
	return pelicula
}

func TestObtenerTodasVacioDevuelveArray(t *testing.T) {
	router := newTestRouter(NewMockPeliculaService())

	rec := doRequest(t, router, http.MethodGet, "/api/peliculas", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestCrearDevuelve201ConLocation(t *testing.T) {
	router := newTestRouter(NewMockPeliculaService())

	rec := doRequest(t, router, http.MethodPost, "/api/peliculas", map[string]any{
		"titulo":          "Dune",
		"descripcion":     "Ciencia ficción",
		"duracionMinutos": 155,
		"fechaEstreno":    "2021-10-22T00:00:00Z",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var pelicula response.PeliculaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pelicula))
	assert.Equal(t, "/api/peliculas/1", rec.Header().Get("Location"))
	assert.Equal(t, int64(1), pelicula.ID)
	assert.True(t, pelicula.Activo)
	assert.Equal(t, "Dune", pelicula.Titulo)
}

func TestCrearInvalidoDevuelveMapaDeErrores(t *testing.T) {
	router := newTestRouter(NewMockPeliculaService())

	rec := doRequest(t, router, http.MethodPost, "/api/peliculas", map[string]any{
		"titulo":          "",
		"duracionMinutos": 900,
		"fechaEstreno":    "2021-10-22T00:00:00Z",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errores map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errores))
	assert.Contains(t, errores, "Titulo")
	assert.Contains(t, errores, "DuracionMinutos")
}

func TestObtenerPorIDInexistente(t *testing.T) {
	router := newTestRouter(NewMockPeliculaService())

	rec := doRequest(t, router, http.MethodGet, "/api/peliculas/99", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Película no encontrada", rec.Body.String())
}

func TestActualizar(t *testing.T) {
	router := newTestRouter(NewMockPeliculaService())
	creada := crearPelicula(t, router, "Original")

	rec := doRequest(t, router, http.MethodPut, "/api/peliculas", map[string]any{
		"id":              creada.ID,
		"titulo":          "Renombrada",
		"duracionMinutos": 95,
		"fechaEstreno":    "2024-03-15T20:00:00Z",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Película actualizada correctamente", rec.Body.String())

	rec = doRequest(t, router, http.MethodGet, "/api/peliculas/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var pelicula response.PeliculaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pelicula))
	assert.Equal(t, creada.ID, pelicula.ID)
	assert.Equal(t, "Renombrada", pelicula.Titulo)
	assert.True(t, pelicula.Activo)
}

func TestActualizarInexistente(t *testing.T) {
	router := newTestRouter(NewMockPeliculaService())

	rec := doRequest(t, router, http.MethodPut, "/api/peliculas", map[string]any{
		"id":              123,
		"titulo":          "Nada",
		"duracionMinutos": 90,
		"fechaEstreno":    "2024-01-01T00:00:00Z",
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Película no encontrada", rec.Body.String())
}

func TestEliminar(t *testing.T) {
	router := newTestRouter(NewMockPeliculaService())
	crearPelicula(t, router, "Por borrar")

	rec := doRequest(t, router, http.MethodDelete, "/api/peliculas/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Película eliminada correctamente", rec.Body.String())

	// Second delete of the same id
	rec = doRequest(t, router, http.MethodDelete, "/api/peliculas/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Película no encontrada", rec.Body.String())
}

func TestBuscarPorNombre(t *testing.T) {
	router := newTestRouter(NewMockPeliculaService())
	crearPelicula(t, router, "El Laberinto del Fauno")
	crearPelicula(t, router, "Laberinto de Pasiones")
	crearPelicula(t, router, "Volver")

	rec := doRequest(t, router, http.MethodGet, "/api/peliculas/buscar/nombre?nombre=Laberinto", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var peliculas []response.PeliculaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &peliculas))
	assert.Len(t, peliculas, 2)
}

func TestBuscarPorNombreVacio(t *testing.T) {
	router := newTestRouter(NewMockPeliculaService())

	for _, target := range []string{
		"/api/peliculas/buscar/nombre",
		"/api/peliculas/buscar/nombre?nombre=",
		"/api/peliculas/buscar/nombre?nombre=%20%20",
	} {
		rec := doRequest(t, router, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Equal(t, "El nombre no puede estar vacío", rec.Body.String(), target)
	}
}

func TestBuscarPorFechaPublicacion(t *testing.T) {
	router := newTestRouter(NewMockPeliculaService())
	crearPelicula(t, router, "Estreno de marzo")

	// Day-only search matches a movie released at 20:00 that day
	for _, fecha := range []string{
		"2024-03-15",
		"2024-03-15T00:00:00",
		"2024-03-15T00:00:00Z",
	} {
		rec := doRequest(t, router, http.MethodGet, "/api/peliculas/buscar/fecha-publicacion?fecha="+fecha, nil)
		require.Equal(t, http.StatusOK, rec.Code, fecha)

		var peliculas []response.PeliculaResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &peliculas))
		assert.Len(t, peliculas, 1, fecha)
	}
}

func TestBuscarPorFechaPublicacionInvalida(t *testing.T) {
	router := newTestRouter(NewMockPeliculaService())

	for _, target := range []string{
		"/api/peliculas/buscar/fecha-publicacion",
		"/api/peliculas/buscar/fecha-publicacion?fecha=",
		"/api/peliculas/buscar/fecha-publicacion?fecha=no-es-fecha",
	} {
		rec := doRequest(t, router, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Equal(t, "La fecha no es válida", rec.Body.String(), target)
	}
}

func TestEstadoSala(t *testing.T) {
	service := NewMockPeliculaService()
	service.estados["Sala 1"] = "Sala con 4 películas asignadas"
	router := newTestRouter(service)

	rec := doRequest(t, router, http.MethodGet, "/api/peliculas/sala/estado?nombreSala=Sala%201", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var estado response.EstadoSalaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &estado))
	assert.Equal(t, "Sala con 4 películas asignadas", estado.Mensaje)

	rec = doRequest(t, router, http.MethodGet, "/api/peliculas/sala/estado?nombreSala=Fantasma", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &estado))
	assert.Equal(t, "Sala no encontrada", estado.Mensaje)
}

func TestEstadoSalaNombreVacio(t *testing.T) {
	router := newTestRouter(NewMockPeliculaService())

	rec := doRequest(t, router, http.MethodGet, "/api/peliculas/sala/estado?nombreSala=", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "El nombre de la sala no puede estar vacío", rec.Body.String())
}

func TestFalloInesperadoDevuelve500SinDetalle(t *testing.T) {
	service := NewMockPeliculaService()
	service.failAll = true
	router := newTestRouter(service)

	rec := doRequest(t, router, http.MethodGet, "/api/peliculas", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error interno del servidor", rec.Body.String())
}
