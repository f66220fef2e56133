package graph

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nuevaMallaDePrueba construye una malla pequeña alrededor de Bogotá:
//
//	v4
//	/  \
//	v1 — v2 — v3      v5 (aislado)
//
// El camino recto v1-v2-v3 es más corto que el desvío por v4.
// El tramo v2-v3 se declara invertido (de v3 hacia v2) para ejercitar la
// orientación de geometrías al reconstruir el camino.
func nuevaMallaDePrueba(t *testing.T) *Graph {
	t.Helper()
	g := New()

	puntos := map[int64]orb.Point{
		1: {-74.10, 4.60},
		2: {-74.09, 4.60},
		3: {-74.08, 4.60},
		4: {-74.09, 4.61},
		5: {-74.00, 4.70},
	}
	for id, p := range puntos {
		g.AddVertex(id, p)
	}

	require.NoError(t, g.AddEdge(10, 1, 2, orb.LineString{puntos[1], puntos[2]}))
	require.NoError(t, g.AddEdge(20, 3, 2, orb.LineString{puntos[3], puntos[2]}))
	require.NoError(t, g.AddEdge(30, 1, 4, orb.LineString{puntos[1], puntos[4]}))
	require.NoError(t, g.AddEdge(40, 4, 3, orb.LineString{puntos[4], puntos[3]}))
	return g
}

func TestAddEdge_VerticeInexistente(t *testing.T) {
	// Preparación
	g := New()
	g.AddVertex(1, orb.Point{-74.10, 4.60})

	// Acción
	err := g.AddEdge(10, 1, 99, orb.LineString{{-74.10, 4.60}, {-74.09, 4.60}})

	// Verificaciones
	require.Error(t, err)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestNearest_EligeElVerticeMasCercano(t *testing.T) {
	// Preparación
	g := nuevaMallaDePrueba(t)

	// Acción: un punto apenas desplazado de v2
	id, err := g.Nearest(orb.Point{-74.0901, 4.6001})

	// Verificaciones
	require.NoError(t, err)
	assert.Equal(t, int64(2), id)
}

func TestNearest_GrafoVacio(t *testing.T) {
	// Preparación
	g := New()

	// Acción
	_, err := g.Nearest(orb.Point{-74.09, 4.60})

	// Verificaciones
	require.ErrorIs(t, err, ErrGrafoVacio)
}

func TestShortestPath_EligeElCaminoMasCorto(t *testing.T) {
	// Preparación
	g := nuevaMallaDePrueba(t)

	// Acción
	camino, err := g.ShortestPath(1, 3)

	// Verificaciones: debe pasar por v2, no por el desvío de v4
	require.NoError(t, err)
	require.Len(t, camino.Edges, 2)
	assert.Equal(t, int64(10), camino.Edges[0].ID)
	assert.Equal(t, int64(20), camino.Edges[1].ID)
	assert.Greater(t, camino.Cost, 0.0)
}

func TestShortestPath_CostoSimetrico(t *testing.T) {
	// Preparación
	g := nuevaMallaDePrueba(t)

	// Acción
	ida, err := g.ShortestPath(1, 3)
	require.NoError(t, err)
	vuelta, err := g.ShortestPath(3, 1)
	require.NoError(t, err)

	// Verificaciones: el grafo es no dirigido, ambos sentidos cuestan lo mismo
	assert.InDelta(t, ida.Cost, vuelta.Cost, 1e-6)
	assert.Len(t, vuelta.Edges, len(ida.Edges))
}

func TestShortestPath_OrientaLaGeometria(t *testing.T) {
	// Preparación
	g := nuevaMallaDePrueba(t)
	v1, _ := g.VertexPoint(1)
	v2, _ := g.VertexPoint(2)
	v3, _ := g.VertexPoint(3)

	// Acción
	camino, err := g.ShortestPath(1, 3)
	require.NoError(t, err)

	// Verificaciones: el tramo 20 se declaró de v3 hacia v2, pero se recorre de
	// v2 hacia v3; su geometría debe venir invertida
	require.Len(t, camino.Edges, 2)
	assert.Equal(t, v1, camino.Edges[0].Geometry[0])
	assert.Equal(t, v2, camino.Edges[1].Geometry[0])
	assert.Equal(t, v3, camino.Edges[1].Geometry[len(camino.Edges[1].Geometry)-1])

	mls := camino.Geometry()
	require.Len(t, mls, 2)
	assert.Equal(t, v1, mls[0][0])
}

func TestShortestPath_MismoVertice(t *testing.T) {
	// Preparación
	g := nuevaMallaDePrueba(t)

	// Acción
	_, err := g.ShortestPath(2, 2)

	// Verificaciones
	require.ErrorIs(t, err, ErrSinRuta)
}

func TestShortestPath_DestinoInalcanzable(t *testing.T) {
	// Preparación: v5 existe pero no tiene tramos
	g := nuevaMallaDePrueba(t)

	// Acción
	_, err := g.ShortestPath(1, 5)

	// Verificaciones
	require.ErrorIs(t, err, ErrSinRuta)
}

func TestShortestPath_GrafoVacio(t *testing.T) {
	// Preparación
	g := New()

	// Acción
	_, err := g.ShortestPath(1, 2)

	// Verificaciones
	require.ErrorIs(t, err, ErrGrafoVacio)
}
