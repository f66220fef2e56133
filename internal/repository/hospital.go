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

const hospitalCapaCacheKey = "hospitales:capa"

type HospitalRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewHospitalRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.HospitalRepository {
	return &HospitalRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// GetAll devuelve la capa completa de hospitales
func (r *HospitalRepository) GetAll(ctx context.Context) ([]*models.Hospital, error) {
	query := `
		SELECT
			gid,
			rsoentadsc,
			dirsirep,
			nivel,
			njuridica,
			clprestado,
			ST_Y(geom) AS latitud,
			ST_X(geom) AS longitud
		FROM rasa
		ORDER BY gid;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list hospitales: %w", err)
	}
	defer rows.Close()

	return scanHospitales(rows, true)
}

// FindCercanos devuelve los hospitales a menos de distanciaMetros del punto
func (r *HospitalRepository) FindCercanos(ctx context.Context, lat, lon, distanciaMetros float64) ([]*models.Hospital, error) {
	query := `
		SELECT
			gid,
			rsoentadsc,
			dirsirep,
			nivel,
			njuridica,
			ST_Y(geom) AS latitud,
			ST_X(geom) AS longitud
		FROM rasa
		WHERE ST_DWithin(
			geom::geography,
			ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
			$3
		)
		ORDER BY gid;
	`
	rows, err := r.db.Query(ctx, query, lon, lat, distanciaMetros)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby hospitales: %w", err)
	}
	defer rows.Close()

	return scanHospitales(rows, false)
}

func scanHospitales(rows pgx.Rows, conPrestador bool) ([]*models.Hospital, error) {
	hospitales := make([]*models.Hospital, 0)
	for rows.Next() {
		h := &models.Hospital{}
		var err error
		if conPrestador {
			err = rows.Scan(&h.GID, &h.Nombre, &h.Direccion, &h.Nivel, &h.Tipo, &h.Prestador, &h.Latitud, &h.Longitud)
		} else {
			err = rows.Scan(&h.GID, &h.Nombre, &h.Direccion, &h.Nivel, &h.Tipo, &h.Latitud, &h.Longitud)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan hospital row: %w", err)
		}
		hospitales = append(hospitales, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating hospital rows: %w", err)
	}
	return hospitales, nil
}

// Update aplica una edición parcial: solo nombre, solo ubicación, o ambos.
// El servicio ya validó que la combinación es consistente.
func (r *HospitalRepository) Update(ctx context.Context, cambio *models.ActualizacionHospital) (*models.Hospital, error) {
	const returning = `
		RETURNING gid, rsoentadsc, dirsirep, nivel, njuridica, clprestado,
			ST_Y(geom) AS latitud, ST_X(geom) AS longitud`

	var query string
	var params []any

	tieneNombre := cambio.Nombre != ""
	tieneUbicacion := cambio.Lat != nil && cambio.Lon != nil

	switch {
	case tieneNombre && tieneUbicacion:
		query = `
			UPDATE rasa
			SET rsoentadsc = $1,
				geom = ST_SetSRID(ST_MakePoint($2, $3), 4326)
			WHERE gid = $4` + returning
		params = []any{cambio.Nombre, *cambio.Lon, *cambio.Lat, cambio.GID}
	case tieneNombre:
		query = `
			UPDATE rasa
			SET rsoentadsc = $1
			WHERE gid = $2` + returning
		params = []any{cambio.Nombre, cambio.GID}
	case tieneUbicacion:
		query = `
			UPDATE rasa
			SET geom = ST_SetSRID(ST_MakePoint($1, $2), 4326)
			WHERE gid = $3` + returning
		params = []any{*cambio.Lon, *cambio.Lat, cambio.GID}
	default:
		return nil, fmt.Errorf("combinación de actualización inválida: %w", service.ErrValidacion)
	}

	h := &models.Hospital{}
	err := r.db.QueryRow(ctx, query, params...).Scan(
		&h.GID, &h.Nombre, &h.Direccion, &h.Nivel, &h.Tipo, &h.Prestador, &h.Latitud, &h.Longitud,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("hospital %d para actualizar: %w", cambio.GID, service.ErrNoEncontrado)
		}
		return nil, fmt.Errorf("failed to update hospital: %w", err)
	}
	return h, nil
}

// Delete elimina un hospital de la capa
func (r *HospitalRepository) Delete(ctx context.Context, gid int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM rasa WHERE gid = $1;`, gid)
	if err != nil {
		return fmt.Errorf("failed to delete hospital: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("hospital %d para eliminar: %w", gid, service.ErrNoEncontrado)
	}
	return nil
}

// GetCapaFromCache intenta leer la capa completa de hospitales desde Redis
func (r *HospitalRepository) GetCapaFromCache(ctx context.Context) ([]*models.Hospital, error) {
	val, err := r.redisClient.Get(ctx, hospitalCapaCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hospital layer from cache: %w", err)
	}

	var hospitales []*models.Hospital
	if err := json.Unmarshal(val, &hospitales); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hospital layer from cache: %w", err)
	}
	return hospitales, nil
}

// SetCapaCache guarda la capa completa de hospitales en Redis
func (r *HospitalRepository) SetCapaCache(ctx context.Context, hospitales []*models.Hospital) error {
	val, err := json.Marshal(hospitales)
	if err != nil {
		return fmt.Errorf("failed to marshal hospital layer for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, hospitalCapaCacheKey, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set hospital layer in cache: %w", err)
	}
	return nil
}

// InvalidateCapaCache elimina la capa de hospitales de la caché
func (r *HospitalRepository) InvalidateCapaCache(ctx context.Context) error {
	if err := r.redisClient.Del(ctx, hospitalCapaCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate hospital layer cache: %w", err)
	}
	return nil
}
