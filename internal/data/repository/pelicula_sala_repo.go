package repository

import (
	"context"
	"fmt"

	"sala-cine/internal/data/entity"
	"sala-cine/pkg/database"

	"go.uber.org/zap"
)

type PeliculaSalaRepository interface {
	Create(ctx context.Context, asignacion *entity.PeliculaSala) error
	FindBySalaID(ctx context.Context, salaID int64) ([]*entity.PeliculaSala, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type peliculaSalaRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPeliculaSalaRepository(db database.PgxIface, log *zap.Logger) PeliculaSalaRepository {
	return &peliculaSalaRepository{
		db:  db,
		log: log.With(zap.String("repository", "pelicula_sala")),
	}
}

func (r *peliculaSalaRepository) Create(ctx context.Context, asignacion *entity.PeliculaSala) error {
	query := `
		INSERT INTO peliculas_salas (pelicula_id, sala_id, fecha_funcion, activo)
		VALUES ($1, $2, $3, TRUE)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		asignacion.PeliculaID,
		asignacion.SalaID,
		asignacion.FechaFuncion,
	).Scan(&asignacion.ID)

	if err != nil {
		r.log.Error("Failed to create asignacion",
			zap.Error(err),
			zap.Int64("pelicula_id", asignacion.PeliculaID),
			zap.Int64("sala_id", asignacion.SalaID),
		)
		return fmt.Errorf("failed to create asignacion: %w", err)
	}

	asignacion.Activo = true
	return nil
}

func (r *peliculaSalaRepository) FindBySalaID(ctx context.Context, salaID int64) ([]*entity.PeliculaSala, error) {
	query := `
		SELECT id, pelicula_id, sala_id, fecha_funcion, activo
		FROM peliculas_salas
		WHERE sala_id = $1 AND activo = TRUE
	`

	rows, err := r.db.Query(ctx, query, salaID)
	if err != nil {
		r.log.Error("Failed to find asignaciones by sala",
			zap.Error(err),
			zap.Int64("sala_id", salaID),
		)
		return nil, fmt.Errorf("failed to find asignaciones: %w", err)
	}
	defer rows.Close()

	var asignaciones []*entity.PeliculaSala
	for rows.Next() {
		var asignacion entity.PeliculaSala
		err := rows.Scan(
			&asignacion.ID,
			&asignacion.PeliculaID,
			&asignacion.SalaID,
			&asignacion.FechaFuncion,
			&asignacion.Activo,
		)
		if err != nil {
			r.log.Error("Failed to scan asignacion row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan asignacion: %w", err)
		}
		asignaciones = append(asignaciones, &asignacion)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return asignaciones, nil
}

func (r *peliculaSalaRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `UPDATE peliculas_salas SET activo = FALSE WHERE id = $1 AND activo = TRUE`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete asignacion",
			zap.Error(err),
			zap.Int64("asignacion_id", id),
		)
		return false, fmt.Errorf("failed to delete asignacion: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
