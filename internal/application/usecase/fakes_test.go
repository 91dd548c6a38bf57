package usecase_test

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/ventas-admin-api/internal/application/columns"
	"github.com/jhoicas/ventas-admin-api/internal/domain"
	"github.com/jhoicas/ventas-admin-api/internal/domain/entity"
)

var errCaido = errors.New("servicio caído")

type fakeClientes struct {
	mu   sync.Mutex
	data map[string]*entity.Cliente
}

func newFakeClientes(cs ...*entity.Cliente) *fakeClientes {
	f := &fakeClientes{data: map[string]*entity.Cliente{}}
	for _, c := range cs {
		f.data[c.ID] = c
	}
	return f
}

func (f *fakeClientes) Create(_ context.Context, c *entity.Cliente) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.data[c.ID]; ok {
		return domain.ErrDuplicate
	}
	f.data[c.ID] = c
	return nil
}

func (f *fakeClientes) GetByID(_ context.Context, id string) (*entity.Cliente, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data[id], nil
}

func (f *fakeClientes) List(_ context.Context, _, _ int) ([]*entity.Cliente, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Cliente, 0, len(f.data))
	for _, c := range f.data {
		out = append(out, c)
	}
	return out, nil
}

type fakeVentas struct {
	mu   sync.Mutex
	list []*entity.Venta
	err  error
}

func (f *fakeVentas) Create(_ context.Context, v *entity.Venta) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.list = append(f.list, v)
	return nil
}

func (f *fakeVentas) GetByID(_ context.Context, clienteID, id string) (*entity.Venta, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, v := range f.list {
		if v.ClienteID == clienteID && v.ID == id {
			return v, nil
		}
	}
	return nil, nil
}

func (f *fakeVentas) ListByCliente(_ context.Context, clienteID string) ([]*entity.Venta, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Venta
	for _, v := range f.list {
		if v.ClienteID == clienteID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVentas) Delete(_ context.Context, clienteID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, v := range f.list {
		if v.ClienteID == clienteID && v.ID == id {
			f.list = append(f.list[:i], f.list[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeCampos struct {
	mu   sync.Mutex
	list []*entity.CampoDefinicion
}

func (f *fakeCampos) Create(_ context.Context, c *entity.CampoDefinicion) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, x := range f.list {
		if x.ClienteID == c.ClienteID && x.Entidad == c.Entidad && x.FieldID == c.FieldID {
			return domain.ErrDuplicate
		}
	}
	f.list = append(f.list, c)
	return nil
}

func (f *fakeCampos) GetByID(_ context.Context, clienteID, id string) (*entity.CampoDefinicion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.list {
		if c.ClienteID == clienteID && c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCampos) ListByCliente(_ context.Context, clienteID, entidad string) ([]*entity.CampoDefinicion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.CampoDefinicion
	for _, c := range f.list {
		if c.ClienteID == clienteID && (entidad == "" || c.Entidad == entidad) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCampos) Delete(_ context.Context, clienteID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, c := range f.list {
		if c.ClienteID == clienteID && c.ID == id {
			f.list = append(f.list[:i], f.list[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type stubSource struct {
	fields []columns.FieldDefinition
	err    error
}

func (s *stubSource) FetchFields(context.Context, string, string) ([]columns.FieldDefinition, error) {
	return s.fields, s.err
}

func clienteCentral() *entity.Cliente {
	return &entity.Cliente{ID: clienteID, Nombre: "Universidad Central", Estado: entity.ClienteActivo}
}
