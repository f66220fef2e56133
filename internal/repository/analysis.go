package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/JuanC-01/ProyectoLineaB/internal/models"
	"github.com/JuanC-01/ProyectoLineaB/internal/service"
)

// AnalysisRepository construye las consultas espaciales de análisis sobre
// PostGIS. Las tablas de referencia (rasa, loca) son propiedad externa:
// aquí solo se consultan.
type AnalysisRepository struct {
	db *pgxpool.Pool
}

func NewAnalysisRepository(db *pgxpool.Pool) service.AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// FindHospitalesEnBuffer devuelve los hospitales cuya geometría intersecta el
// buffer geodésico alrededor del punto, con la distancia geodésica al punto
// redondeada a metros. Orden ascendente por distancia con desempate por gid.
func (r *AnalysisRepository) FindHospitalesEnBuffer(ctx context.Context, lat, lon, distanciaMetros float64) ([]*models.HospitalCercano, error) {
	query := `
		WITH buffer AS (
			SELECT ST_Buffer(
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
				$3
			)::geometry AS geom
		)
		SELECT
			h.gid,
			h.rsoentadsc,
			h.dirsirep,
			h.nivel,
			h.njuridica,
			ST_Y(h.geom) AS latitud,
			ST_X(h.geom) AS longitud,
			ST_Distance(h.geom::geography, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography) AS distancia_metros
		FROM
			rasa h, buffer b
		WHERE
			ST_Intersects(h.geom, b.geom)
		ORDER BY
			distancia_metros, h.gid;
	`
	rows, err := r.db.Query(ctx, query, lon, lat, distanciaMetros)
	if err != nil {
		return nil, fmt.Errorf("failed to query hospitals in buffer: %w", err)
	}
	defer rows.Close()

	hospitales := make([]*models.HospitalCercano, 0)
	for rows.Next() {
		h := &models.HospitalCercano{}
		var distancia float64
		err := rows.Scan(
			&h.GID,
			&h.Nombre,
			&h.Direccion,
			&h.Nivel,
			&h.Tipo,
			&h.Latitud,
			&h.Longitud,
			&distancia,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hospital row in buffer query: %w", err)
		}
		h.DistanciaMetros = int(math.Round(distancia))
		hospitales = append(hospitales, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating buffer query rows: %w", err)
	}
	return hospitales, nil
}

// FindElementosEnPoligono clasifica hospitales y accidentes estrictamente
// dentro del polígono, unidos a la localidad que contiene cada punto
func (r *AnalysisRepository) FindElementosEnPoligono(ctx context.Context, poligono orb.Polygon) ([]*models.ElementoEnPoligono, error) {
	geom, err := json.Marshal(geojson.NewGeometry(poligono))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal polygon geometry: %w", err)
	}

	query := `
		WITH area AS (
			SELECT ST_SetSRID(ST_GeomFromGeoJSON($1), 4326) AS geom
		)
		SELECT
			h.rsoentadsc AS nombre,
			'Hospital' AS tipo,
			COALESCE(l.locnombre, '') AS localidad,
			ST_Y(h.geom) AS lat,
			ST_X(h.geom) AS lon
		FROM rasa h
		CROSS JOIN area a
		LEFT JOIN loca l ON ST_Contains(l.geom, h.geom)
		WHERE ST_Within(h.geom, a.geom)
		UNION ALL
		SELECT
			i.nombre_accidentado AS nombre,
			'Accidente' AS tipo,
			COALESCE(l.locnombre, '') AS localidad,
			ST_Y(i.punto_incidente) AS lat,
			ST_X(i.punto_incidente) AS lon
		FROM incidentes i
		CROSS JOIN area a
		LEFT JOIN loca l ON ST_Contains(l.geom, i.punto_incidente)
		WHERE ST_Within(i.punto_incidente, a.geom)
		ORDER BY tipo, nombre;
	`
	rows, err := r.db.Query(ctx, query, string(geom))
	if err != nil {
		return nil, fmt.Errorf("failed to run polygon analysis query: %w", err)
	}
	defer rows.Close()

	elementos := make([]*models.ElementoEnPoligono, 0)
	for rows.Next() {
		e := &models.ElementoEnPoligono{}
		if err := rows.Scan(&e.Nombre, &e.Tipo, &e.Localidad, &e.Lat, &e.Lon); err != nil {
			return nil, fmt.Errorf("failed to scan polygon analysis row: %w", err)
		}
		elementos = append(elementos, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating polygon analysis rows: %w", err)
	}
	return elementos, nil
}

// ConteoHospitalesPorLocalidad cuenta los hospitales contenidos en cada localidad
func (r *AnalysisRepository) ConteoHospitalesPorLocalidad(ctx context.Context) ([]*models.LocalidadConteo, error) {
	query := `
		SELECT
			l.locnombre AS nombre,
			COUNT(h.gid) AS hospital_count
		FROM
			loca AS l
		LEFT JOIN
			rasa AS h ON ST_Contains(l.geom, h.geom)
		GROUP BY
			l.locnombre
		ORDER BY
			l.locnombre;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count hospitals per locality: %w", err)
	}
	defer rows.Close()

	conteo := make([]*models.LocalidadConteo, 0)
	for rows.Next() {
		c := &models.LocalidadConteo{}
		if err := rows.Scan(&c.Nombre, &c.HospitalCount); err != nil {
			return nil, fmt.Errorf("failed to scan locality count row: %w", err)
		}
		conteo = append(conteo, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locality count rows: %w", err)
	}
	return conteo, nil
}
