package graph

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

var (
	// ErrSinRuta indica que no existe camino entre los vértices, o que ambos
	// extremos se ajustaron al mismo vértice. Es un resultado normal, no una falla.
	ErrSinRuta = errors.New("graph: no existe ruta entre los vértices")
	// ErrGrafoVacio indica que el grafo no tiene vértices cargados
	ErrGrafoVacio = errors.New("graph: el grafo no tiene vértices cargados")
)

// tolerancia del rectángulo puntual en el índice espacial (grados)
const rectTol = 1e-9

// candidatos del r-tree que se refinan con distancia geodésica real
const snapCandidates = 8

// Edge es un tramo del grafo vial con su geometría y costo geodésico en metros
type Edge struct {
	ID       int64
	From     int64
	To       int64
	Geometry orb.LineString
	Cost     float64
}

// halfEdge es la vista dirigida de un tramo desde uno de sus extremos
type halfEdge struct {
	edgeID int64
	to     int64
	cost   float64
}

type vertexEntry struct {
	id   int64
	rect rtreego.Rect
}

func (v *vertexEntry) Bounds() rtreego.Rect { return v.rect }

// Graph es un grafo vial no dirigido con pesos por longitud geodésica.
// Se construye una sola vez a partir de la malla vial y luego solo se consulta,
// por lo que no lleva sincronización propia.
type Graph struct {
	vertices map[int64]orb.Point
	edges    map[int64]Edge
	adj      map[int64][]halfEdge
	tree     *rtreego.Rtree
}

// New crea un grafo vacío
func New() *Graph {
	return &Graph{
		vertices: make(map[int64]orb.Point),
		edges:    make(map[int64]Edge),
		adj:      make(map[int64][]halfEdge),
		tree:     rtreego.NewTree(2, 25, 50),
	}
}

// AddVertex registra un vértice enrutable con su posición lon/lat
func (g *Graph) AddVertex(id int64, p orb.Point) {
	g.vertices[id] = p
	g.tree.Insert(&vertexEntry{id: id, rect: rtreego.Point{p[0], p[1]}.ToRect(rectTol)})
}

// AddEdge registra un tramo entre dos vértices ya existentes. El costo es la
// longitud geodésica de la geometría y el tramo se recorre en ambos sentidos.
func (g *Graph) AddEdge(id, from, to int64, geom orb.LineString) error {
	if _, ok := g.vertices[from]; !ok {
		return fmt.Errorf("graph: vértice origen %d no existe para el tramo %d", from, id)
	}
	if _, ok := g.vertices[to]; !ok {
		return fmt.Errorf("graph: vértice destino %d no existe para el tramo %d", to, id)
	}
	e := Edge{ID: id, From: from, To: to, Geometry: geom, Cost: geo.Length(geom)}
	g.edges[id] = e
	g.adj[from] = append(g.adj[from], halfEdge{edgeID: id, to: to, cost: e.Cost})
	g.adj[to] = append(g.adj[to], halfEdge{edgeID: id, to: from, cost: e.Cost})
	return nil
}

// VertexCount devuelve el número de vértices cargados
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount devuelve el número de tramos cargados
func (g *Graph) EdgeCount() int { return len(g.edges) }

// VertexPoint devuelve la posición de un vértice
func (g *Graph) VertexPoint(id int64) (orb.Point, bool) {
	p, ok := g.vertices[id]
	return p, ok
}

// Nearest ajusta una coordenada arbitraria al vértice más cercano.
// El r-tree entrega candidatos por cercanía planar y se elige el de menor
// distancia geodésica real. No se verifica alcanzabilidad en este paso.
func (g *Graph) Nearest(p orb.Point) (int64, error) {
	if len(g.vertices) == 0 {
		return 0, ErrGrafoVacio
	}
	candidates := g.tree.NearestNeighbors(snapCandidates, rtreego.Point{p[0], p[1]})

	bestID := int64(0)
	bestDist := -1.0
	for _, c := range candidates {
		if c == nil {
			continue
		}
		entry := c.(*vertexEntry)
		d := geo.Distance(p, g.vertices[entry.id])
		if bestDist < 0 || d < bestDist {
			bestDist = d
			bestID = entry.id
		}
	}
	if bestDist < 0 {
		return 0, ErrGrafoVacio
	}
	return bestID, nil
}

// Path es el resultado de una búsqueda de ruta: los tramos recorridos en orden
// desde el origen y el costo total en metros
type Path struct {
	Edges []Edge
	Cost  float64
}

// Geometry concatena las geometrías de los tramos recorridos como una sola
// MultiLineString en orden de recorrido, orientando cada tramo en el sentido
// en que se atraviesa
func (p *Path) Geometry() orb.MultiLineString {
	mls := make(orb.MultiLineString, 0, len(p.Edges))
	for _, e := range p.Edges {
		mls = append(mls, e.Geometry)
	}
	return mls
}

// item de la cola de prioridad de Dijkstra
type pqItem struct {
	vertex int64
	dist   float64
	index  int
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int           { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x any) {
	it := x.(*pqItem)
	it.index = len(*pq)
	*pq = append(*pq, it)
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return it
}

// ShortestPath corre Dijkstra entre dos vértices del grafo. Si origen y
// destino coinciden, o el destino es inalcanzable, devuelve ErrSinRuta.
func (g *Graph) ShortestPath(from, to int64) (*Path, error) {
	if len(g.vertices) == 0 {
		return nil, ErrGrafoVacio
	}
	if _, ok := g.vertices[from]; !ok {
		return nil, fmt.Errorf("graph: vértice origen %d no existe", from)
	}
	if _, ok := g.vertices[to]; !ok {
		return nil, fmt.Errorf("graph: vértice destino %d no existe", to)
	}
	if from == to {
		return nil, ErrSinRuta
	}

	dist := map[int64]float64{from: 0}
	prevEdge := make(map[int64]int64)
	prevVertex := make(map[int64]int64)
	visited := make(map[int64]bool)

	pq := &priorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &pqItem{vertex: from, dist: 0})

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*pqItem)
		if visited[cur.vertex] {
			continue
		}
		visited[cur.vertex] = true
		if cur.vertex == to {
			break
		}
		for _, he := range g.adj[cur.vertex] {
			if visited[he.to] {
				continue
			}
			nd := cur.dist + he.cost
			if old, ok := dist[he.to]; !ok || nd < old {
				dist[he.to] = nd
				prevEdge[he.to] = he.edgeID
				prevVertex[he.to] = cur.vertex
				heap.Push(pq, &pqItem{vertex: he.to, dist: nd})
			}
		}
	}

	total, ok := dist[to]
	if !ok || !visited[to] {
		return nil, ErrSinRuta
	}

	// reconstrucción hacia atrás, orientando cada tramo en sentido de recorrido
	var reversed []Edge
	for v := to; v != from; v = prevVertex[v] {
		e := g.edges[prevEdge[v]]
		if e.To != v {
			e = reverseEdge(e)
		}
		reversed = append(reversed, e)
	}

	edges := make([]Edge, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		edges = append(edges, reversed[i])
	}
	return &Path{Edges: edges, Cost: total}, nil
}

func reverseEdge(e Edge) Edge {
	rev := make(orb.LineString, len(e.Geometry))
	for i, pt := range e.Geometry {
		rev[len(e.Geometry)-1-i] = pt
	}
	return Edge{ID: e.ID, From: e.To, To: e.From, Geometry: rev, Cost: e.Cost}
}
