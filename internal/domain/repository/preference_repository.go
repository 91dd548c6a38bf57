package repository

import "context"

// PreferenceRepository almacén llave/valor de preferencias de columnas.
// Cada Get y Put es atómico; no hay transacciones entre llamadas (gana la última escritura).
type PreferenceRepository interface {
	// Get devuelve nil, nil si la llave no existe.
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, payload []byte) error
}
