package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/JuanC-01/ProyectoLineaB/internal/models"
	"github.com/JuanC-01/ProyectoLineaB/internal/service"
)

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Create inserta un nuevo incidente; el id y la fecha los asigna la base de datos
func (r *IncidentRepository) Create(ctx context.Context, incidente *models.Incidente) error {
	query := `
		INSERT INTO incidentes (
			nombre_accidentado,
			usuario_registro,
			punto_incidente,
			hospital_destino,
			distancia_km,
			tiempo_min
		)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5, $6, $7)
		RETURNING id, fecha_incidente;
	`
	err := r.db.QueryRow(ctx, query,
		incidente.NombreAccidentado,
		incidente.UsuarioRegistro,
		incidente.Longitud,
		incidente.Latitud,
		incidente.HospitalDestino,
		incidente.DistanciaKm,
		incidente.TiempoMin,
	).Scan(&incidente.ID, &incidente.FechaIncidente)
	if err != nil {
		return fmt.Errorf("failed to create incidente: %w", err)
	}
	return nil
}

// GetByID devuelve un incidente por su id
func (r *IncidentRepository) GetByID(ctx context.Context, id int64) (*models.Incidente, error) {
	incidente := &models.Incidente{}
	query := `
		SELECT
			id,
			nombre_accidentado,
			usuario_registro,
			ST_Y(punto_incidente) AS latitud,
			ST_X(punto_incidente) AS longitud,
			hospital_destino,
			distancia_km,
			tiempo_min,
			fecha_incidente
		FROM incidentes
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&incidente.ID,
		&incidente.NombreAccidentado,
		&incidente.UsuarioRegistro,
		&incidente.Latitud,
		&incidente.Longitud,
		&incidente.HospitalDestino,
		&incidente.DistanciaKm,
		&incidente.TiempoMin,
		&incidente.FechaIncidente,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incidente %d: %w", id, service.ErrNoEncontrado)
		}
		return nil, fmt.Errorf("failed to get incidente by id: %w", err)
	}
	return incidente, nil
}

// List devuelve los incidentes del más reciente al más antiguo. Si fecha no
// está vacía, restringe a esa fecha calendario exacta.
func (r *IncidentRepository) List(ctx context.Context, fecha string) ([]*models.Incidente, error) {
	query := `
		SELECT
			id,
			nombre_accidentado,
			usuario_registro,
			ST_Y(punto_incidente) AS latitud,
			ST_X(punto_incidente) AS longitud,
			hospital_destino,
			distancia_km,
			tiempo_min,
			fecha_incidente
		FROM incidentes
	`
	args := []any{}
	if fecha != "" {
		query += ` WHERE DATE(fecha_incidente) = TO_DATE($1, 'YYYY-MM-DD')`
		args = append(args, fecha)
	}
	query += ` ORDER BY fecha_incidente DESC;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidentes: %w", err)
	}
	defer rows.Close()

	incidentes := make([]*models.Incidente, 0)
	for rows.Next() {
		incidente := &models.Incidente{}
		err := rows.Scan(
			&incidente.ID,
			&incidente.NombreAccidentado,
			&incidente.UsuarioRegistro,
			&incidente.Latitud,
			&incidente.Longitud,
			&incidente.HospitalDestino,
			&incidente.DistanciaKm,
			&incidente.TiempoMin,
			&incidente.FechaIncidente,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incidente row: %w", err)
		}
		incidentes = append(incidentes, incidente)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating incidente rows: %w", err)
	}
	return incidentes, nil
}

// UpdateNombres actualiza únicamente los dos campos mutables del incidente
func (r *IncidentRepository) UpdateNombres(ctx context.Context, id int64, nombreAccidentado, usuarioRegistro string) (*models.Incidente, error) {
	query := `
		UPDATE incidentes
		SET
			nombre_accidentado = $1,
			usuario_registro = $2
		WHERE id = $3
		RETURNING
			id,
			nombre_accidentado,
			usuario_registro,
			ST_Y(punto_incidente),
			ST_X(punto_incidente),
			hospital_destino,
			distancia_km,
			tiempo_min,
			fecha_incidente;
	`
	incidente := &models.Incidente{}
	err := r.db.QueryRow(ctx, query, nombreAccidentado, usuarioRegistro, id).Scan(
		&incidente.ID,
		&incidente.NombreAccidentado,
		&incidente.UsuarioRegistro,
		&incidente.Latitud,
		&incidente.Longitud,
		&incidente.HospitalDestino,
		&incidente.DistanciaKm,
		&incidente.TiempoMin,
		&incidente.FechaIncidente,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incidente %d para actualizar: %w", id, service.ErrNoEncontrado)
		}
		return nil, fmt.Errorf("failed to update incidente: %w", err)
	}
	return incidente, nil
}

// Delete elimina el incidente de forma definitiva
func (r *IncidentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM incidentes WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete incidente: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incidente %d para eliminar: %w", id, service.ErrNoEncontrado)
	}
	return nil
}

// GetIncidenteFromCache intenta leer el incidente desde Redis
func (r *IncidentRepository) GetIncidenteFromCache(ctx context.Context, id int64) (*models.Incidente, error) {
	key := fmt.Sprintf("incidente:%d", id)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incidente from cache: %w", err)
	}

	incidente := &models.Incidente{}
	if err := json.Unmarshal(val, incidente); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incidente from cache: %w", err)
	}
	return incidente, nil
}

// SetIncidenteCache guarda el incidente en Redis
func (r *IncidentRepository) SetIncidenteCache(ctx context.Context, incidente *models.Incidente) error {
	key := fmt.Sprintf("incidente:%d", incidente.ID)
	val, err := json.Marshal(incidente)
	if err != nil {
		return fmt.Errorf("failed to marshal incidente for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incidente in cache: %w", err)
	}
	return nil
}

// InvalidateIncidenteCache elimina el incidente de la caché de Redis
func (r *IncidentRepository) InvalidateIncidenteCache(ctx context.Context, id int64) error {
	key := fmt.Sprintf("incidente:%d", id)
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incidente cache: %w", err)
	}
	return nil
}
