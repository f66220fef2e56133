package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/JuanC-01/ProyectoLineaB/internal/models"
	"github.com/JuanC-01/ProyectoLineaB/pkg/graph"
)

// NetworkRepository carga la malla vial de referencia en un grafo en memoria.
// Las tablas de la malla son datos estáticos de propiedad externa: se leen una
// sola vez al arrancar y no se vuelven a tocar.
type NetworkRepository struct {
	db *pgxpool.Pool
}

func NewNetworkRepository(db *pgxpool.Pool) *NetworkRepository {
	return &NetworkRepository{db: db}
}

// LoadGraph lee los vértices y tramos de la malla vial y construye el grafo.
// Los tramos sin source o target se descartan, igual que en la consulta de
// enrutamiento original de la base de datos.
func (r *NetworkRepository) LoadGraph(ctx context.Context) (*graph.Graph, error) {
	g := graph.New()

	verticesQuery := `
		SELECT id, ST_X(the_geom), ST_Y(the_geom)
		FROM malla_vial_integral_bogota_d_c_vertices_pgr;
	`
	rows, err := r.db.Query(ctx, verticesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to load road network vertices: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var v models.VerticeVial
		var lon, lat float64
		if err := rows.Scan(&v.ID, &lon, &lat); err != nil {
			return nil, fmt.Errorf("failed to scan road vertex row: %w", err)
		}
		v.Geom = orb.Point{lon, lat}
		g.AddVertex(v.ID, v.Geom)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating road vertex rows: %w", err)
	}

	edgesQuery := `
		SELECT gid, source, target, ST_AsGeoJSON(geom)
		FROM malla_vial_integral_bogota_d_c
		WHERE source IS NOT NULL AND target IS NOT NULL;
	`
	edgeRows, err := r.db.Query(ctx, edgesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to load road network edges: %w", err)
	}
	defer edgeRows.Close()

	for edgeRows.Next() {
		var t models.TramoVial
		var rawGeom []byte
		if err := edgeRows.Scan(&t.GID, &t.Source, &t.Target, &rawGeom); err != nil {
			return nil, fmt.Errorf("failed to scan road edge row: %w", err)
		}

		geom, err := geojson.UnmarshalGeometry(rawGeom)
		if err != nil {
			return nil, fmt.Errorf("failed to parse geometry of road edge %d: %w", t.GID, err)
		}

		t.Geom, err = asLineString(geom.Geometry())
		if err != nil {
			return nil, fmt.Errorf("road edge %d: %w", t.GID, err)
		}

		if err := g.AddEdge(t.GID, t.Source, t.Target, t.Geom); err != nil {
			return nil, fmt.Errorf("failed to add road edge to graph: %w", err)
		}
	}
	if err := edgeRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating road edge rows: %w", err)
	}

	return g, nil
}

// asLineString normaliza la geometría de un tramo. Algunas mallas exportan
// MultiLineString de un solo componente.
func asLineString(geom orb.Geometry) (orb.LineString, error) {
	switch g := geom.(type) {
	case orb.LineString:
		return g, nil
	case orb.MultiLineString:
		if len(g) == 1 {
			return g[0], nil
		}
		// Se concatenan los componentes en orden; la malla de referencia
		// los exporta ya encadenados
		var line orb.LineString
		for _, part := range g {
			line = append(line, part...)
		}
		if len(line) < 2 {
			return nil, fmt.Errorf("geometría de tramo vacía")
		}
		return line, nil
	default:
		return nil, fmt.Errorf("geometría de tramo inesperada %T", geom)
	}
}
