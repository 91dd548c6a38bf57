package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ventas-admin-api/internal/domain/repository"
)

var _ repository.PreferenceRepository = (*PreferenceRepo)(nil)

// PreferenceRepo preferencias de columnas (tabla column_preferences, payload TEXT).
// Se guarda el texto tal cual para que un payload corrupto se detecte al leer.
type PreferenceRepo struct {
	q Querier
}

// NewPreferenceRepository construye el adaptador.
func NewPreferenceRepository(q Querier) *PreferenceRepo {
	return &PreferenceRepo{q: q}
}

// Get devuelve el payload guardado o nil, nil.
func (r *PreferenceRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var payload string
	err := r.q.QueryRow(ctx, `SELECT payload FROM column_preferences WHERE scope_key = $1`, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get preferencias: %w", err)
	}
	return []byte(payload), nil
}

// Put inserta o reemplaza el payload (gana la última escritura).
func (r *PreferenceRepo) Put(ctx context.Context, key string, payload []byte) error {
	query := `
		INSERT INTO column_preferences (scope_key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (scope_key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()`
	if _, err := r.q.Exec(ctx, query, key, string(payload)); err != nil {
		return fmt.Errorf("put preferencias: %w", err)
	}
	return nil
}
