package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate aplica en orden los archivos migrations/*.sql. Son idempotentes (IF NOT EXISTS).
func Migrate(ctx context.Context, q Querier) error {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("listar migraciones: %w", err)
	}
	sort.Strings(names)
	for _, name := range names {
		sql, err := migrationsFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("leer %s: %w", name, err)
		}
		if _, err := q.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("aplicar %s: %w", name, err)
		}
	}
	return nil
}
