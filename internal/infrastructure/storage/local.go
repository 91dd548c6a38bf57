// Package storage guarda los reportes generados en el servidor: disco local o Amazon S3.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/ventas-admin-api/internal/application/export"
	"github.com/jhoicas/ventas-admin-api/internal/domain"
)

// LocalStorage guarda los archivos bajo un directorio raíz.
type LocalStorage struct {
	root string
}

var _ export.ReportStorage = (*LocalStorage)(nil)

// NewLocalStorage crea el directorio raíz si no existe.
func NewLocalStorage(root string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear %s: %w", root, err)
	}
	return &LocalStorage{root: root}, nil
}

// Save escribe el archivo en un temporal y lo renombra al destino.
func (s *LocalStorage) Save(_ context.Context, key, _ string, body io.Reader) error {
	dst, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("storage: crear directorio: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(dst), ".tmp-*")
	if err != nil {
		return fmt.Errorf("storage: temporal: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := io.Copy(tmp, body); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: escribir %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: escribir %s: %w", key, err)
	}
	return os.Rename(tmp.Name(), dst)
}

// Open abre el archivo. Si no existe devuelve domain.ErrNotFound.
func (s *LocalStorage) Open(_ context.Context, key string) (io.ReadCloser, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: abrir %s: %w", key, err)
	}
	return f, nil
}

// path resuelve la llave dentro de root; rutas que escapan del directorio se rechazan.
func (s *LocalStorage) path(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if clean == "." || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: llave %q", domain.ErrInvalidInput, key)
	}
	return filepath.Join(s.root, clean), nil
}
