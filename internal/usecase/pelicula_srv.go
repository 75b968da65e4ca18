package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sala-cine/internal/data/entity"
	"sala-cine/internal/data/repository"
	"sala-cine/internal/dto/request"
	"sala-cine/internal/dto/response"

	"go.uber.org/zap"
)

// Validation sentinels; the messages are part of the HTTP contract
var (
	ErrNombreVacio     = errors.New("El nombre no puede estar vacío")
	ErrFechaInvalida   = errors.New("La fecha no es válida")
	ErrNombreSalaVacio = errors.New("El nombre de la sala no puede estar vacío")
)

type PeliculaService interface {
	ObtenerTodas(ctx context.Context) ([]response.PeliculaResponse, error)
	ObtenerPorID(ctx context.Context, id int64) (*response.PeliculaResponse, error)
	Crear(ctx context.Context, req *request.CrearPeliculaRequest) (*response.PeliculaResponse, error)
	Actualizar(ctx context.Context, req *request.ActualizarPeliculaRequest) (bool, error)
	Eliminar(ctx context.Context, id int64) (bool, error)
	BuscarPorNombre(ctx context.Context, nombre string) ([]response.PeliculaResponse, error)
	ObtenerPorFechaEstreno(ctx context.Context, fecha time.Time) ([]response.PeliculaResponse, error)
	EstadoSalaPorNombre(ctx context.Context, nombreSala string) (string, error)
}

type peliculaService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPeliculaService(
	repo *repository.Repository,
	log *zap.Logger,
) PeliculaService {
	return &peliculaService{
		repo: repo,
		log:  log.With(zap.String("service", "pelicula")),
	}
}

func (s *peliculaService) ObtenerTodas(ctx context.Context) ([]response.PeliculaResponse, error) {
	peliculas, err := s.repo.Pelicula.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get peliculas", zap.Error(err))
		return nil, fmt.Errorf("get peliculas: %w", err)
	}

	return response.PeliculasToResponse(peliculas), nil
}

// ObtenerPorID returns (nil, nil) when no active pelicula matches
func (s *peliculaService) ObtenerPorID(ctx context.Context, id int64) (*response.PeliculaResponse, error) {
	pelicula, err := s.repo.Pelicula.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get pelicula by ID",
			zap.Error(err),
			zap.Int64("pelicula_id", id),
		)
		return nil, fmt.Errorf("get pelicula by id: %w", err)
	}

	if pelicula == nil {
		return nil, nil
	}

	resp := response.PeliculaToResponse(pelicula)
	return &resp, nil
}

func (s *peliculaService) Crear(ctx context.Context, req *request.CrearPeliculaRequest) (*response.PeliculaResponse, error) {
	pelicula := &entity.Pelicula{
		Titulo:          req.Titulo,
		Descripcion:     req.Descripcion,
		DuracionMinutos: req.DuracionMinutos,
		FechaEstreno:    req.FechaEstreno,
	}

	if err := s.repo.Pelicula.Create(ctx, pelicula); err != nil {
		s.log.Error("Failed to create pelicula",
			zap.Error(err),
			zap.String("titulo", req.Titulo),
		)
		return nil, fmt.Errorf("create pelicula: %w", err)
	}

	s.log.Info("Pelicula created",
		zap.Int64("pelicula_id", pelicula.ID),
		zap.String("titulo", pelicula.Titulo),
	)

	resp := response.PeliculaToResponse(pelicula)
	return &resp, nil
}

// Actualizar overwrites titulo, descripcion, duracion and fecha estreno.
// Returns false when the id matches no active pelicula.
func (s *peliculaService) Actualizar(ctx context.Context, req *request.ActualizarPeliculaRequest) (bool, error) {
	pelicula := &entity.Pelicula{
		Base:            entity.Base{ID: req.ID},
		Titulo:          req.Titulo,
		Descripcion:     req.Descripcion,
		DuracionMinutos: req.DuracionMinutos,
		FechaEstreno:    req.FechaEstreno,
	}

	actualizada, err := s.repo.Pelicula.Update(ctx, pelicula)
	if err != nil {
		s.log.Error("Failed to update pelicula",
			zap.Error(err),
			zap.Int64("pelicula_id", req.ID),
		)
		return false, fmt.Errorf("update pelicula: %w", err)
	}

	s.log.Info("Pelicula update finished",
		zap.Int64("pelicula_id", req.ID),
		zap.Bool("actualizada", actualizada),
	)

	return actualizada, nil
}

// Eliminar soft deletes. Returns false when the id matches no active pelicula,
// which makes repeated deletes of the same id report not found.
func (s *peliculaService) Eliminar(ctx context.Context, id int64) (bool, error) {
	eliminada, err := s.repo.Pelicula.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete pelicula",
			zap.Error(err),
			zap.Int64("pelicula_id", id),
		)
		return false, fmt.Errorf("delete pelicula: %w", err)
	}

	return eliminada, nil
}

func (s *peliculaService) BuscarPorNombre(ctx context.Context, nombre string) ([]response.PeliculaResponse, error) {
	if strings.TrimSpace(nombre) == "" {
		return nil, ErrNombreVacio
	}

	peliculas, err := s.repo.Pelicula.FindByTitulo(ctx, strings.TrimSpace(nombre))
	if err != nil {
		s.log.Error("Failed to search peliculas by nombre",
			zap.Error(err),
			zap.String("nombre", nombre),
		)
		return nil, fmt.Errorf("search peliculas by nombre: %w", err)
	}

	return response.PeliculasToResponse(peliculas), nil
}

func (s *peliculaService) ObtenerPorFechaEstreno(ctx context.Context, fecha time.Time) ([]response.PeliculaResponse, error) {
	if fecha.IsZero() {
		return nil, ErrFechaInvalida
	}

	peliculas, err := s.repo.Pelicula.FindByFechaEstreno(ctx, fecha)
	if err != nil {
		s.log.Error("Failed to get peliculas by fecha estreno",
			zap.Error(err),
			zap.Time("fecha", fecha),
		)
		return nil, fmt.Errorf("get peliculas by fecha estreno: %w", err)
	}

	return response.PeliculasToResponse(peliculas), nil
}

func (s *peliculaService) EstadoSalaPorNombre(ctx context.Context, nombreSala string) (string, error) {
	if strings.TrimSpace(nombreSala) == "" {
		return "", ErrNombreSalaVacio
	}

	estado, err := s.repo.Sala.EstadoPorNombre(ctx, strings.TrimSpace(nombreSala))
	if err != nil {
		s.log.Error("Failed to get sala estado",
			zap.Error(err),
			zap.String("nombre_sala", nombreSala),
		)
		return "", fmt.Errorf("get sala estado: %w", err)
	}

	return estado, nil
}
