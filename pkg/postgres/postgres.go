package postgres

import (
	"context"
	"fmt"

	"github.com/JuanC-01/ProyectoLineaB/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPostgresDB crea un nuevo pool de conexiones a PostgreSQL/PostGIS
func NewPostgresDB(ctx context.Context, appCfg *config.Config) (*pgxpool.Pool, error) {
	cfgPool, err := pgxpool.ParseConfig(appCfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("error al interpretar la configuración de postgres: %w", err)
	}

	dbpool, err := pgxpool.NewWithConfig(ctx, cfgPool)
	if err != nil {
		return nil, fmt.Errorf("no se pudo crear el pool de conexiones: %w", err)
	}

	// Verificamos la conexión con la base de datos
	err = dbpool.Ping(ctx)
	if err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("no se pudo hacer ping a postgres: %w", err)
	}

	return dbpool, nil
}
