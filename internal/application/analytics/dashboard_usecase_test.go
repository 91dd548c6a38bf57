package analytics_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-admin-api/internal/application/analytics"
	"github.com/jhoicas/ventas-admin-api/internal/domain/repository"
)

type fakeAnalytics struct {
	mu       sync.Mutex
	ranges   [][2]time.Time
	asesores []repository.AsesorResult
	err      error
}

func (f *fakeAnalytics) GetVentasMetrics(_ context.Context, _ string, start, end time.Time) (int, decimal.Decimal, error) {
	f.mu.Lock()
	f.ranges = append(f.ranges, [2]time.Time{start, end})
	f.mu.Unlock()
	if f.err != nil {
		return 0, decimal.Zero, f.err
	}
	if end.Sub(start) == 24*time.Hour {
		return 2, decimal.RequireFromString("150.005"), nil
	}
	return 9, decimal.NewFromInt(1200), nil
}

func (f *fakeAnalytics) GetTopAsesores(_ context.Context, _ string, _, _ time.Time, limit int) ([]repository.AsesorResult, error) {
	if len(f.asesores) > limit {
		return f.asesores[:limit], nil
	}
	return f.asesores, nil
}

func TestGetResumen(t *testing.T) {
	repo := &fakeAnalytics{asesores: []repository.AsesorResult{{Asesor: "Luis", Ventas: 4, Monto: decimal.NewFromInt(800)}}}
	now := time.Date(2026, 2, 14, 15, 30, 0, 0, time.UTC)
	uc := analytics.NewDashboardUseCase(repo).WithClock(func() time.Time { return now })

	got, err := uc.GetResumen(context.Background(), "c-1")
	require.NoError(t, err)

	assert.Equal(t, 2, got.Hoy.Ventas)
	assert.Equal(t, "150.01", got.Hoy.Monto.StringFixed(2))
	assert.Equal(t, 9, got.Mes.Ventas)
	assert.Equal(t, "Febrero 2026", got.DateLabel)
	require.Len(t, got.TopAsesores, 1)
	assert.Equal(t, "Luis", got.TopAsesores[0].Asesor)

	require.Len(t, repo.ranges, 2)
	for _, r := range repo.ranges {
		assert.Equal(t, time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), r[1])
	}
}

func TestGetResumen_Error(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeAnalytics{err: errors.New("db caída")})
	_, err := uc.GetResumen(context.Background(), "c-1")
	assert.Error(t, err)
}
