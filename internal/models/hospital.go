package models

// Hospital representa un punto de la capa de hospitales (tabla rasa)
type Hospital struct {
	GID       int64   `json:"gid"`
	Nombre    string  `json:"nombre"`
	Direccion string  `json:"direccion"`
	Nivel     string  `json:"nivel"`
	Tipo      string  `json:"tipo"`
	Prestador string  `json:"prestador,omitempty"`
	Latitud   float64 `json:"latitud"`
	Longitud  float64 `json:"longitud"`
}

// HospitalCercano es un hospital dentro del buffer de análisis,
// con la distancia geodésica al punto del incidente ya redondeada a metros
type HospitalCercano struct {
	Hospital
	DistanciaMetros int `json:"distancia_metros"`
}

// ActualizacionHospital describe una edición parcial de un hospital:
// solo nombre, solo ubicación, o ambos
type ActualizacionHospital struct {
	GID    int64
	Nombre string
	Lat    *float64
	Lon    *float64
}
