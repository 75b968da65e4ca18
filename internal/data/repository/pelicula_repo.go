package repository

import (
	"context"
	"fmt"
	"time"

	"sala-cine/internal/data/entity"
	"sala-cine/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PeliculaRepository interface {
	FindAll(ctx context.Context) ([]*entity.Pelicula, error)
	FindByID(ctx context.Context, id int64) (*entity.Pelicula, error)
	Create(ctx context.Context, pelicula *entity.Pelicula) error
	Update(ctx context.Context, pelicula *entity.Pelicula) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	FindByTitulo(ctx context.Context, nombre string) ([]*entity.Pelicula, error)
	FindByFechaEstreno(ctx context.Context, fecha time.Time) ([]*entity.Pelicula, error)
}

type peliculaRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPeliculaRepository(db database.PgxIface, log *zap.Logger) PeliculaRepository {
	return &peliculaRepository{
		db:  db,
		log: log.With(zap.String("repository", "pelicula")),
	}
}

func (r *peliculaRepository) FindAll(ctx context.Context) ([]*entity.Pelicula, error) {
	query := `
		SELECT id, titulo, descripcion, duracion_minutos, fecha_estreno, activo
		FROM peliculas
		WHERE activo = TRUE
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all peliculas", zap.Error(err))
		return nil, fmt.Errorf("failed to find peliculas: %w", err)
	}
	defer rows.Close()

	return r.scanPeliculas(rows)
}

func (r *peliculaRepository) FindByID(ctx context.Context, id int64) (*entity.Pelicula, error) {
	query := `
		SELECT id, titulo, descripcion, duracion_minutos, fecha_estreno, activo
		FROM peliculas
		WHERE id = $1 AND activo = TRUE
	`

	var pelicula entity.Pelicula
	err := r.db.QueryRow(ctx, query, id).Scan(
		&pelicula.ID,
		&pelicula.Titulo,
		&pelicula.Descripcion,
		&pelicula.DuracionMinutos,
		&pelicula.FechaEstreno,
		&pelicula.Activo,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find pelicula by ID",
			zap.Error(err),
			zap.Int64("pelicula_id", id),
		)
		return nil, fmt.Errorf("failed to find pelicula: %w", err)
	}

	return &pelicula, nil
}

func (r *peliculaRepository) Create(ctx context.Context, pelicula *entity.Pelicula) error {
	query := `
		INSERT INTO peliculas (titulo, descripcion, duracion_minutos, fecha_estreno, activo)
		VALUES ($1, $2, $3, $4, TRUE)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		pelicula.Titulo,
		pelicula.Descripcion,
		pelicula.DuracionMinutos,
		pelicula.FechaEstreno,
	).Scan(&pelicula.ID)

	if err != nil {
		r.log.Error("Failed to create pelicula",
			zap.Error(err),
			zap.String("titulo", pelicula.Titulo),
		)
		return fmt.Errorf("failed to create pelicula: %w", err)
	}

	pelicula.Activo = true

	r.log.Info("Pelicula created",
		zap.Int64("pelicula_id", pelicula.ID),
		zap.String("titulo", pelicula.Titulo),
	)

	return nil
}

func (r *peliculaRepository) Update(ctx context.Context, pelicula *entity.Pelicula) (bool, error) {
	query := `
		UPDATE peliculas
		SET titulo = $2, descripcion = $3, duracion_minutos = $4, fecha_estreno = $5
		WHERE id = $1 AND activo = TRUE
	`

	result, err := r.db.Exec(ctx, query,
		pelicula.ID,
		pelicula.Titulo,
		pelicula.Descripcion,
		pelicula.DuracionMinutos,
		pelicula.FechaEstreno,
	)

	if err != nil {
		r.log.Error("Failed to update pelicula",
			zap.Error(err),
			zap.Int64("pelicula_id", pelicula.ID),
		)
		return false, fmt.Errorf("failed to update pelicula: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *peliculaRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `UPDATE peliculas SET activo = FALSE WHERE id = $1 AND activo = TRUE`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete pelicula",
			zap.Error(err),
			zap.Int64("pelicula_id", id),
		)
		return false, fmt.Errorf("failed to delete pelicula: %w", err)
	}

	if result.RowsAffected() == 0 {
		return false, nil
	}

	r.log.Info("Pelicula soft deleted", zap.Int64("pelicula_id", id))
	return true, nil
}

// FindByTitulo matches by case-sensitive substring containment
func (r *peliculaRepository) FindByTitulo(ctx context.Context, nombre string) ([]*entity.Pelicula, error) {
	query := `
		SELECT id, titulo, descripcion, duracion_minutos, fecha_estreno, activo
		FROM peliculas
		WHERE activo = TRUE AND POSITION($1 IN titulo) > 0
	`

	rows, err := r.db.Query(ctx, query, nombre)
	if err != nil {
		r.log.Error("Failed to find peliculas by titulo",
			zap.Error(err),
			zap.String("nombre", nombre),
		)
		return nil, fmt.Errorf("failed to find peliculas by titulo: %w", err)
	}
	defer rows.Close()

	return r.scanPeliculas(rows)
}

// FindByFechaEstreno matches by calendar day, ignoring time of day
func (r *peliculaRepository) FindByFechaEstreno(ctx context.Context, fecha time.Time) ([]*entity.Pelicula, error) {
	query := `
		SELECT id, titulo, descripcion, duracion_minutos, fecha_estreno, activo
		FROM peliculas
		WHERE activo = TRUE AND fecha_estreno::date = $1::date
	`

	rows, err := r.db.Query(ctx, query, fecha)
	if err != nil {
		r.log.Error("Failed to find peliculas by fecha estreno",
			zap.Error(err),
			zap.Time("fecha", fecha),
		)
		return nil, fmt.Errorf("failed to find peliculas by fecha estreno: %w", err)
	}
	defer rows.Close()

	return r.scanPeliculas(rows)
}

func (r *peliculaRepository) scanPeliculas(rows pgx.Rows) ([]*entity.Pelicula, error) {
	var peliculas []*entity.Pelicula
	for rows.Next() {
		var pelicula entity.Pelicula
		err := rows.Scan(
			&pelicula.ID,
			&pelicula.Titulo,
			&pelicula.Descripcion,
			&pelicula.DuracionMinutos,
			&pelicula.FechaEstreno,
			&pelicula.Activo,
		)
		if err != nil {
			r.log.Error("Failed to scan pelicula row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan pelicula: %w", err)
		}
		peliculas = append(peliculas, &pelicula)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return peliculas, nil
}
