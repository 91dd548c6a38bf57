package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/ventas-admin-api/internal/application/columns"
	"github.com/jhoicas/ventas-admin-api/internal/application/dto"
	"github.com/jhoicas/ventas-admin-api/internal/domain"
	"github.com/jhoicas/ventas-admin-api/internal/domain/entity"
	"github.com/jhoicas/ventas-admin-api/internal/domain/repository"
	"github.com/jhoicas/ventas-admin-api/internal/domain/table"
	"github.com/jhoicas/ventas-admin-api/pkg/logger"
)

// TableUseCase tablas configurables: catálogo de columnas, preferencias del usuario
// y el pipeline filtrar → ordenar → paginar → proyectar.
type TableUseCase struct {
	features columns.FeatureCatalog
	registry *columns.Registry
	prefs    *columns.PreferenceStore
	clientes repository.ClienteRepository
	sources  map[string]RowSource // por entidad
	log      *logger.Logger
}

// NewTableUseCase construye el caso de uso. sources indexa los orígenes de filas por entidad.
func NewTableUseCase(
	features columns.FeatureCatalog,
	registry *columns.Registry,
	prefs *columns.PreferenceStore,
	clientes repository.ClienteRepository,
	sources map[string]RowSource,
	log *logger.Logger,
) *TableUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &TableUseCase{
		features: features,
		registry: registry,
		prefs:    prefs,
		clientes: clientes,
		sources:  sources,
		log:      log,
	}
}

// TableState estado resuelto de una tabla para un usuario y cliente.
type TableState struct {
	Feature table.Feature
	Cliente *entity.Cliente
	Catalog *table.Catalog
	Prefs   table.Preferences
	// Fetched es false si las definiciones de campos adicionales no se pudieron obtener.
	Fetched bool
}

// Prepared estado más las filas filtradas y ordenadas, sin paginar.
type Prepared struct {
	TableState
	Rows []table.Row
}

// Render columnas a mostrar según las preferencias.
func (s *TableState) Render() []table.Column {
	_, render := table.Project(s.Catalog, s.Prefs)
	return render
}

func (uc *TableUseCase) state(ctx context.Context, scope table.Scope) (*TableState, error) {
	feature, err := uc.features.Get(scope.Feature)
	if err != nil {
		return nil, err
	}
	cliente, err := uc.clientes.GetByID(ctx, scope.ClienteID)
	if err != nil {
		return nil, fmt.Errorf("cliente: %w", err)
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	cat, fetched := uc.registry.Catalog(ctx, feature, scope.ClienteID)

	var prefs table.Preferences
	if stored := uc.prefs.Load(ctx, scope); stored != nil {
		// Sin campos adicionales el catálogo solo trae las columnas base, así que los
		// adicionales guardados se conservan y ninguno se agrega.
		merged, changed := table.MergeOrder(*stored, cat.IDs())
		if changed {
			uc.prefs.Save(ctx, scope, merged)
		}
		prefs = merged
	} else {
		prefs = table.DefaultPreferences(cat, feature.DefaultVisible)
	}
	return &TableState{Feature: feature, Cliente: cliente, Catalog: cat, Prefs: prefs, Fetched: fetched}, nil
}

// Columns devuelve el catálogo y las preferencias efectivas.
// Si hay preferencias guardadas, las columnas del catálogo que falten en el orden
// (base agregadas al catálogo o adicionales nuevos) se agregan al final.
func (uc *TableUseCase) Columns(ctx context.Context, scope table.Scope) (*dto.ColumnsResponse, error) {
	st, err := uc.state(ctx, scope)
	if err != nil {
		return nil, err
	}
	return &dto.ColumnsResponse{
		Table:              st.Feature.Name,
		Title:              st.Feature.Title,
		Columns:            ColumnDTOs(st.Catalog.Columns()),
		Visible:            nonNil(st.Prefs.Visible),
		Order:              nonNil(st.Prefs.Order),
		CustomFieldsLoaded: st.Fetched,
		PageSizes:          st.Feature.PageSizes,
		DefaultPageSize:    st.Feature.PageSize(0),
	}, nil
}

// UpdatePreferences guarda la visibilidad y el orden elegidos.
// IDs vacíos, repetidos o desconocidos se descartan (los adicionales se conservan aunque
// el catálogo no los tenga ahora); las columnas que falten en el orden se agregan al final.
func (uc *TableUseCase) UpdatePreferences(ctx context.Context, scope table.Scope, in dto.PreferencesRequest) (*dto.PreferencesResponse, error) {
	if in.Visible == nil && in.Order == nil {
		return nil, fmt.Errorf("%w: visible u order es requerido", domain.ErrInvalidInput)
	}
	st, err := uc.state(ctx, scope)
	if err != nil {
		return nil, err
	}
	p := st.Prefs.Clone()
	if in.Visible != nil {
		p.Visible = sanitizeIDs(st.Catalog, in.Visible)
	}
	if in.Order != nil {
		p.Order = sanitizeIDs(st.Catalog, in.Order)
	}
	p, _ = table.MergeOrder(p, st.Catalog.IDs())
	uc.prefs.Save(ctx, scope, p)
	return &dto.PreferencesResponse{Visible: nonNil(p.Visible), Order: nonNil(p.Order)}, nil
}

// ResetPreferences restaura las preferencias por defecto y las guarda.
func (uc *TableUseCase) ResetPreferences(ctx context.Context, scope table.Scope) (*dto.PreferencesResponse, error) {
	st, err := uc.state(ctx, scope)
	if err != nil {
		return nil, err
	}
	p := uc.prefs.Reset(ctx, scope, st.Catalog, st.Feature.DefaultVisible)
	return &dto.PreferencesResponse{Visible: nonNil(p.Visible), Order: nonNil(p.Order)}, nil
}

// Prepare resuelve el estado y devuelve las filas filtradas y ordenadas (sin paginar).
// Un fallo al leer las filas se registra y la tabla queda vacía.
func (uc *TableUseCase) Prepare(ctx context.Context, scope table.Scope, search, sort, dir string) (*Prepared, error) {
	st, err := uc.state(ctx, scope)
	if err != nil {
		return nil, err
	}
	rows := uc.rows(ctx, st)
	rows = table.Filter(rows, strings.TrimSpace(search), st.Feature.SearchFields)
	if col, ok := st.Catalog.Lookup(sort); ok {
		rows = table.Sort(rows, col, table.ParseDirection(dir))
	}
	return &Prepared{TableState: *st, Rows: rows}, nil
}

// Render ejecuta el pipeline completo y devuelve una página de la tabla.
func (uc *TableUseCase) Render(ctx context.Context, scope table.Scope, q dto.TableQuery) (*dto.TableViewResponse, error) {
	prep, err := uc.Prepare(ctx, scope, q.Search, q.Sort, q.Dir)
	if err != nil {
		return nil, err
	}
	page := table.Paginate(prep.Rows, q.Page, prep.Feature.PageSize(q.PageSize))
	view := table.BuildView(prep.Render(), page.Rows)

	out := &dto.TableViewResponse{
		Table:   prep.Feature.Name,
		Columns: ColumnDTOs(view.Columns),
		Rows:    make([]dto.TableRowDTO, 0, len(view.Cells)),
		Page: dto.TablePageDTO{
			Number:     page.Number,
			Size:       page.Size,
			Total:      page.Total,
			TotalPages: page.TotalPages,
			Sizes:      prep.Feature.PageSizes,
		},
		Search: q.Search,
		Sort:   q.Sort,
		Dir:    q.Dir,
	}
	if view.Placeholder != nil {
		out.Placeholder = &dto.PlaceholderDTO{ColSpan: view.Placeholder.ColSpan, Text: view.Placeholder.Text}
	} else {
		for i, cells := range view.Cells {
			out.Rows = append(out.Rows, dto.TableRowDTO{ID: page.Rows[i].ID, Cells: cells})
		}
	}
	return out, nil
}

func (uc *TableUseCase) rows(ctx context.Context, st *TableState) []table.Row {
	src, ok := uc.sources[st.Feature.Entidad]
	if !ok {
		uc.log.Warn().Str("feature", st.Feature.Name).Msg("tabla sin origen de filas")
		return nil
	}
	rows, err := src.Rows(ctx, st.Cliente)
	if err != nil {
		uc.log.Warn().Err(err).
			Str("cliente_id", st.Cliente.ID).
			Str("feature", st.Feature.Name).
			Msg("no se pudieron obtener las filas; la tabla queda vacía")
		return nil
	}
	return rows
}

// ColumnDTOs convierte columnas al DTO.
func ColumnDTOs(cols []table.Column) []dto.ColumnDTO {
	out := make([]dto.ColumnDTO, 0, len(cols))
	for _, c := range cols {
		out = append(out, dto.ColumnDTO{ID: c.ID, Label: c.Label, Type: c.Type, IsCustom: c.IsCustom})
	}
	return out
}

func sanitizeIDs(c *table.Catalog, ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		if _, known := c.Lookup(id); !known && !strings.HasPrefix(id, table.CustomPrefix) {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
