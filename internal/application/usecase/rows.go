package usecase

import (
	"context"

	"github.com/jhoicas/ventas-admin-api/internal/domain/entity"
	"github.com/jhoicas/ventas-admin-api/internal/domain/repository"
	"github.com/jhoicas/ventas-admin-api/internal/domain/table"
)

// RowSource entrega todas las filas de una entidad para un cliente.
type RowSource interface {
	Rows(ctx context.Context, cliente *entity.Cliente) ([]table.Row, error)
}

// VentaRows filas de la tabla de ventas.
type VentaRows struct {
	repo repository.VentaRepository
}

// NewVentaRows construye el origen de filas de ventas.
func NewVentaRows(repo repository.VentaRepository) *VentaRows {
	return &VentaRows{repo: repo}
}

// Rows lista las ventas del cliente como filas.
func (s *VentaRows) Rows(ctx context.Context, cliente *entity.Cliente) ([]table.Row, error) {
	list, err := s.repo.ListByCliente(ctx, cliente.ID)
	if err != nil {
		return nil, err
	}
	out := make([]table.Row, 0, len(list))
	for _, v := range list {
		out = append(out, VentaRow(v, cliente.Nombre))
	}
	return out, nil
}

// ContactoRows filas de la tabla de contactos.
type ContactoRows struct {
	repo repository.ContactoRepository
}

// NewContactoRows construye el origen de filas de contactos.
func NewContactoRows(repo repository.ContactoRepository) *ContactoRows {
	return &ContactoRows{repo: repo}
}

// Rows lista los contactos del cliente como filas.
func (s *ContactoRows) Rows(ctx context.Context, cliente *entity.Cliente) ([]table.Row, error) {
	list, err := s.repo.ListByCliente(ctx, cliente.ID)
	if err != nil {
		return nil, err
	}
	out := make([]table.Row, 0, len(list))
	for _, c := range list {
		out = append(out, ContactoRow(c, cliente.Nombre))
	}
	return out, nil
}

// VentaRow convierte una venta en fila. "cliente" es el nombre del cliente.
func VentaRow(v *entity.Venta, clienteNombre string) table.Row {
	return table.Row{
		ID: v.ID,
		Fixed: map[string]table.Value{
			"id":          table.String(v.ID),
			"nombre":      table.String(v.Nombre),
			"apellido":    table.String(v.Apellido),
			"email":       table.String(v.Email),
			"telefono":    table.String(v.Telefono),
			"asesor":      table.String(v.Asesor),
			"cliente":     table.String(clienteNombre),
			"programa":    table.String(v.Programa),
			"fecha_venta": table.Date(v.FechaVenta),
			"monto":       table.Number(v.Monto),
			"estado":      table.String(v.Estado),
			"created_at":  table.Date(v.CreatedAt),
		},
		Dynamic: dynamicValues(v.CamposAdicionales),
	}
}

// ContactoRow convierte un contacto en fila.
func ContactoRow(c *entity.Contacto, clienteNombre string) table.Row {
	return table.Row{
		ID: c.ID,
		Fixed: map[string]table.Value{
			"id":         table.String(c.ID),
			"nombre":     table.String(c.Nombre),
			"apellido":   table.String(c.Apellido),
			"email":      table.String(c.Email),
			"telefono":   table.String(c.Telefono),
			"asesor":     table.String(c.Asesor),
			"cliente":    table.String(clienteNombre),
			"estado":     table.String(c.Estado),
			"origen":     table.String(c.Origen),
			"created_at": table.Date(c.CreatedAt),
		},
		Dynamic: dynamicValues(c.CamposAdicionales),
	}
}

func dynamicValues(m map[string]any) map[string]table.Value {
	out := make(map[string]table.Value, len(m))
	for k, v := range m {
		out[k] = table.ValueOf(v)
	}
	return out
}
