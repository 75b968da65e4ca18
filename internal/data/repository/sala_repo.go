package repository

import (
	"context"
	"fmt"

	"sala-cine/internal/data/entity"
	"sala-cine/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Estado literals returned by the room status lookup
const (
	EstadoSalaNoEncontrada = "Sala no encontrada"
	EstadoSalaDisponible   = "Sala disponible"
	EstadoSalaNoDisponible = "Sala no disponible"
)

type SalaRepository interface {
	FindByNombre(ctx context.Context, nombre string) (*entity.Sala, error)
	CountPeliculasAsignadas(ctx context.Context, salaID int64) (int64, error)
	EstadoPorNombre(ctx context.Context, nombre string) (string, error)
}

type salaRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSalaRepository(db database.PgxIface, log *zap.Logger) SalaRepository {
	return &salaRepository{
		db:  db,
		log: log.With(zap.String("repository", "sala")),
	}
}

func (r *salaRepository) FindByNombre(ctx context.Context, nombre string) (*entity.Sala, error) {
	query := `
		SELECT id, nombre, capacidad, activo
		FROM salas
		WHERE nombre = $1 AND activo = TRUE
	`

	var sala entity.Sala
	err := r.db.QueryRow(ctx, query, nombre).Scan(
		&sala.ID,
		&sala.Nombre,
		&sala.Capacidad,
		&sala.Activo,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find sala by nombre",
			zap.Error(err),
			zap.String("nombre", nombre),
		)
		return nil, fmt.Errorf("failed to find sala: %w", err)
	}

	return &sala, nil
}

func (r *salaRepository) CountPeliculasAsignadas(ctx context.Context, salaID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM peliculas_salas WHERE sala_id = $1 AND activo = TRUE`

	var total int64
	err := r.db.QueryRow(ctx, query, salaID).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count peliculas asignadas",
			zap.Error(err),
			zap.Int64("sala_id", salaID),
		)
		return 0, fmt.Errorf("failed to count peliculas asignadas: %w", err)
	}

	return total, nil
}

func (r *salaRepository) EstadoPorNombre(ctx context.Context, nombre string) (string, error) {
	sala, err := r.FindByNombre(ctx, nombre)
	if err != nil {
		return "", fmt.Errorf("find sala: %w", err)
	}
	if sala == nil {
		return EstadoSalaNoEncontrada, nil
	}

	cantidad, err := r.CountPeliculasAsignadas(ctx, sala.ID)
	if err != nil {
		return "", fmt.Errorf("count peliculas asignadas: %w", err)
	}

	estado := EstadoSala(cantidad)

	r.log.Debug("Sala estado computed",
		zap.String("nombre", nombre),
		zap.Int64("cantidad", cantidad),
		zap.String("estado", estado),
	)

	return estado, nil
}

// EstadoSala buckets an assignment count into a status message.
// Boundaries: fewer than 3 is available, 3 to 5 reports the count,
// more than 5 is unavailable.
func EstadoSala(cantidad int64) string {
	switch {
	case cantidad < 3:
		return EstadoSalaDisponible
	case cantidad <= 5:
		return fmt.Sprintf("Sala con %d películas asignadas", cantidad)
	default:
		return EstadoSalaNoDisponible
	}
}
