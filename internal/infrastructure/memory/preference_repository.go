// Package memory implementaciones en memoria de los repositorios, para desarrollo y tests.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/ventas-admin-api/internal/domain/repository"
)

var _ repository.PreferenceRepository = (*PreferenceRepo)(nil)

// PreferenceRepo almacén concurrente de preferencias. Los datos se pierden al reiniciar.
type PreferenceRepo struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewPreferenceRepository crea un almacén vacío.
func NewPreferenceRepository() *PreferenceRepo {
	return &PreferenceRepo{data: make(map[string][]byte)}
}

// Get devuelve una copia del payload o nil, nil si no existe.
func (r *PreferenceRepo) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	payload, ok := r.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), payload...), nil
}

// Put reemplaza el payload de la llave.
func (r *PreferenceRepo) Put(_ context.Context, key string, payload []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = append([]byte(nil), payload...)
	return nil
}
