package models

import "github.com/paulmach/orb"

// VerticeVial es un nodo enrutable de la malla vial
type VerticeVial struct {
	ID   int64
	Geom orb.Point
}

// TramoVial es un arco de la malla vial entre dos vértices.
// El costo se deriva de la longitud geodésica de su geometría.
type TramoVial struct {
	GID    int64
	Source int64
	Target int64
	Geom   orb.LineString
}
