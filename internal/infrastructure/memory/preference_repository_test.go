package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-admin-api/internal/infrastructure/memory"
)

func TestPreferenceRepo_GetPut(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPreferenceRepository()

	got, err := repo.Get(ctx, "ventas:columns:v1:u:c")
	require.NoError(t, err)
	assert.Nil(t, got)

	payload := []byte(`{"visible":[],"order":[]}`)
	require.NoError(t, repo.Put(ctx, "ventas:columns:v1:u:c", payload))
	payload[0] = 'X'

	got, err = repo.Get(ctx, "ventas:columns:v1:u:c")
	require.NoError(t, err)
	assert.Equal(t, `{"visible":[],"order":[]}`, string(got), "el almacén guarda una copia")
}

func TestPreferenceRepo_Concurrente(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPreferenceRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Put(ctx, "k", []byte("v"))
			_, _ = repo.Get(ctx, "k")
		}()
	}
	wg.Wait()

	got, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
}
