package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	webhookQueueKey = "incidente_eventos"
)

// WebhookEvent es el evento publicado cuando se registra un incidente
type WebhookEvent struct {
	EventID           uuid.UUID `json:"event_id"`
	IncidenteID       int64     `json:"incidente_id"`
	NombreAccidentado string    `json:"nombre_accidentado"`
	UsuarioRegistro   string    `json:"usuario_registro"`
	HospitalDestino   string    `json:"hospital_destino"`
	Latitud           float64   `json:"latitud"`
	Longitud          float64   `json:"longitud"`
	DistanciaKm       float64   `json:"distancia_km"`
	TiempoMin         float64   `json:"tiempo_min"`
	Timestamp         time.Time `json:"timestamp"`
}

// WebhookPublisher es la interfaz de publicación de eventos de registro
type WebhookPublisher interface {
	Publish(ctx context.Context, event WebhookEvent) error
}

// RedisWebhookPublisher implementa WebhookPublisher sobre una lista de Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher crea un nuevo RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish encola el evento en la lista de Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event WebhookEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH agrega al frente; el worker consume con BRPOP desde el final
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
