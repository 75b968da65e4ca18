package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"sala-cine/internal/dto/request"
	"sala-cine/internal/dto/response"
	"sala-cine/internal/usecase"
	"sala-cine/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const mensajePeliculaNoEncontrada = "Película no encontrada"

type PeliculaHandler struct {
	service usecase.PeliculaService
	log     *zap.Logger
}

func NewPeliculaHandler(service usecase.PeliculaService, log *zap.Logger) *PeliculaHandler {
	return &PeliculaHandler{
		service: service,
		log:     log.With(zap.String("handler", "pelicula")),
	}
}

// ObtenerTodas handles GET /api/peliculas
func (h *PeliculaHandler) ObtenerTodas(w http.ResponseWriter, r *http.Request) {
	peliculas, err := h.service.ObtenerTodas(r.Context())
	if err != nil {
		h.log.Error("Failed to get peliculas", zap.Error(err))
		utils.ResponseInternalError(w)
		return
	}

	utils.ResponseOK(w, peliculas)
}

// ObtenerPorID handles GET /api/peliculas/{id}
func (h *PeliculaHandler) ObtenerPorID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Id inválido")
		return
	}

	pelicula, err := h.service.ObtenerPorID(r.Context(), id)
	if err != nil {
		h.log.Error("Failed to get pelicula by ID",
			zap.Error(err),
			zap.Int64("pelicula_id", id),
		)
		utils.ResponseInternalError(w)
		return
	}

	if pelicula == nil {
		utils.ResponseNotFound(w, mensajePeliculaNoEncontrada)
		return
	}

	utils.ResponseOK(w, pelicula)
}

// Crear handles POST /api/peliculas
func (h *PeliculaHandler) Crear(w http.ResponseWriter, r *http.Request) {
	var req request.CrearPeliculaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Cuerpo de la petición inválido")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Warn("Create pelicula validation failed", zap.Any("errors", validationErrors))
		utils.ResponseValidationErrors(w, validationErrors)
		return
	}

	pelicula, err := h.service.Crear(r.Context(), &req)
	if err != nil {
		h.log.Error("Failed to create pelicula",
			zap.Error(err),
			zap.String("titulo", req.Titulo),
		)
		utils.ResponseInternalError(w)
		return
	}

	location := fmt.Sprintf("/api/peliculas/%d", pelicula.ID)
	utils.ResponseCreated(w, location, pelicula)
}

// Actualizar handles PUT /api/peliculas
func (h *PeliculaHandler) Actualizar(w http.ResponseWriter, r *http.Request) {
	var req request.ActualizarPeliculaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Cuerpo de la petición inválido")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Warn("Update pelicula validation failed", zap.Any("errors", validationErrors))
		utils.ResponseValidationErrors(w, validationErrors)
		return
	}

	actualizada, err := h.service.Actualizar(r.Context(), &req)
	if err != nil {
		h.log.Error("Failed to update pelicula",
			zap.Error(err),
			zap.Int64("pelicula_id", req.ID),
		)
		utils.ResponseInternalError(w)
		return
	}

	if !actualizada {
		utils.ResponseNotFound(w, mensajePeliculaNoEncontrada)
		return
	}

	utils.ResponseText(w, http.StatusOK, "Película actualizada correctamente")
}

// Eliminar handles DELETE /api/peliculas/{id}
func (h *PeliculaHandler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Id inválido")
		return
	}

	eliminada, err := h.service.Eliminar(r.Context(), id)
	if err != nil {
		h.log.Error("Failed to delete pelicula",
			zap.Error(err),
			zap.Int64("pelicula_id", id),
		)
		utils.ResponseInternalError(w)
		return
	}

	if !eliminada {
		utils.ResponseNotFound(w, mensajePeliculaNoEncontrada)
		return
	}

	utils.ResponseText(w, http.StatusOK, "Película eliminada correctamente")
}

// BuscarPorNombre handles GET /api/peliculas/buscar/nombre?nombre=
func (h *PeliculaHandler) BuscarPorNombre(w http.ResponseWriter, r *http.Request) {
	nombre := r.URL.Query().Get("nombre")

	peliculas, err := h.service.BuscarPorNombre(r.Context(), nombre)
	if err != nil {
		if errors.Is(err, usecase.ErrNombreVacio) {
			utils.ResponseBadRequest(w, err.Error())
			return
		}
		h.log.Error("Failed to search peliculas by nombre",
			zap.Error(err),
			zap.String("nombre", nombre),
		)
		utils.ResponseInternalError(w)
		return
	}

	utils.ResponseOK(w, peliculas)
}

// BuscarPorFechaPublicacion handles GET /api/peliculas/buscar/fecha-publicacion?fecha=
func (h *PeliculaHandler) BuscarPorFechaPublicacion(w http.ResponseWriter, r *http.Request) {
	fecha, ok := utils.ParseFecha(r.URL.Query().Get("fecha"))
	if !ok {
		utils.ResponseBadRequest(w, usecase.ErrFechaInvalida.Error())
		return
	}

	peliculas, err := h.service.ObtenerPorFechaEstreno(r.Context(), fecha)
	if err != nil {
		if errors.Is(err, usecase.ErrFechaInvalida) {
			utils.ResponseBadRequest(w, err.Error())
			return
		}
		h.log.Error("Failed to get peliculas by fecha",
			zap.Error(err),
			zap.Time("fecha", fecha),
		)
		utils.ResponseInternalError(w)
		return
	}

	utils.ResponseOK(w, peliculas)
}

// EstadoSala handles GET /api/peliculas/sala/estado?nombreSala=
func (h *PeliculaHandler) EstadoSala(w http.ResponseWriter, r *http.Request) {
	nombreSala := r.URL.Query().Get("nombreSala")

	estado, err := h.service.EstadoSalaPorNombre(r.Context(), nombreSala)
	if err != nil {
		if errors.Is(err, usecase.ErrNombreSalaVacio) {
			utils.ResponseBadRequest(w, err.Error())
			return
		}
		h.log.Error("Failed to get sala estado",
			zap.Error(err),
			zap.String("nombre_sala", nombreSala),
		)
		utils.ResponseInternalError(w)
		return
	}

	utils.ResponseOK(w, response.EstadoSalaResponse{Mensaje: estado})
}
