package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/ventas-admin-api/internal/application/dto"
	"github.com/jhoicas/ventas-admin-api/internal/domain"
	"github.com/jhoicas/ventas-admin-api/internal/domain/table"
	"github.com/jhoicas/ventas-admin-api/pkg/download"
)

const reportsPrefix = "exports"

// ReportUseCase genera el reporte completo de una tabla (todas las columnas del catálogo,
// todas las filas) como xlsx, lo guarda y devuelve su ruta de descarga.
type ReportUseCase struct {
	tables  TablePreparer
	encoder Encoder
	storage ReportStorage
	apiBase string
}

// NewReportUseCase construye el caso de uso. apiBase es la URL pública de la API.
func NewReportUseCase(tables TablePreparer, encoder Encoder, storage ReportStorage, apiBase string) *ReportUseCase {
	return &ReportUseCase{tables: tables, encoder: encoder, storage: storage, apiBase: apiBase}
}

// Generate construye y guarda el reporte. Devuelve {path, url}; url no incluye token.
func (uc *ReportUseCase) Generate(ctx context.Context, scope table.Scope) (*dto.ReportResponse, error) {
	prep, err := uc.tables.Prepare(ctx, scope, "", "", "")
	if err != nil {
		return nil, err
	}
	doc := Document{
		Title:   prep.Feature.Title + " - " + prep.Cliente.Nombre,
		Columns: prep.Catalog.Columns(),
		Rows:    prep.Rows,
	}
	var buf bytes.Buffer
	if err := uc.encoder.Encode(&buf, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrReportFailed, err)
	}
	name := prep.Feature.Name + "_" + uuid.New().String() + "." + uc.encoder.Extension()
	key := ReportKey(scope.ClienteID, name)
	if err := uc.storage.Save(ctx, key, uc.encoder.ContentType(), &buf); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrReportFailed, err)
	}
	return &dto.ReportResponse{Path: key, URL: download.URL(uc.apiBase, key, "")}, nil
}

// Open abre un reporte guardado del cliente. Nombres con separadores de ruta → domain.ErrInvalidInput.
func (uc *ReportUseCase) Open(ctx context.Context, clienteID, file string) (io.ReadCloser, string, error) {
	if file == "" || strings.ContainsAny(file, `/\`) || strings.HasPrefix(file, ".") {
		return nil, "", domain.ErrInvalidInput
	}
	rc, err := uc.storage.Open(ctx, ReportKey(clienteID, file))
	if err != nil {
		return nil, "", err
	}
	return rc, uc.encoder.ContentType(), nil
}

// ReportKey llave de almacenamiento y ruta relativa a la API: exports/<cliente>/<archivo>.
func ReportKey(clienteID, file string) string {
	return path.Join(reportsPrefix, clienteID, file)
}
