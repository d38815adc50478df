package org_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hrms-api/internal/application/org"
	"github.com/jhoicas/hrms-api/internal/domain"
	"github.com/jhoicas/hrms-api/internal/domain/entity"
)

// fakeCatalogStore simula el adaptador de procedimientos en memoria,
// respetando la convención de resultados: Code >= 0 éxito, Code < 0 falla.
type fakeCatalogStore[E any] struct {
	rows    map[int]E
	nextID  int
	failAll domain.CommandResult // si Code < 0, toda escritura responde esto
}

func newFakeCatalogStore[E any]() *fakeCatalogStore[E] {
	return &fakeCatalogStore[E]{rows: make(map[int]E), nextID: 1}
}

// seed inserta una fila con id conocido, sin pasar por Create.
func (f *fakeCatalogStore[E]) seed(id int, e E) {
	f.rows[id] = e
	if id >= f.nextID {
		f.nextID = id + 1
	}
}

func (f *fakeCatalogStore[E]) List(_ context.Context) ([]E, error) {
	out := make([]E, 0, len(f.rows))
	for _, e := range f.rows {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeCatalogStore[E]) Create(_ context.Context, e *E) (domain.CommandResult, error) {
	if f.failAll.Failed() {
		return f.failAll, nil
	}
	id := f.nextID
	f.nextID++
	f.rows[id] = *e
	return domain.CommandResult{Code: id, Message: "registro creado"}, nil
}

func (f *fakeCatalogStore[E]) Update(_ context.Context, id int, e *E) (domain.CommandResult, error) {
	if f.failAll.Failed() {
		return f.failAll, nil
	}
	if _, ok := f.rows[id]; !ok {
		return domain.CommandResult{Code: -1, Message: "el registro no existe"}, nil
	}
	f.rows[id] = *e
	return domain.CommandResult{Code: 0, Message: "registro actualizado"}, nil
}

func (f *fakeCatalogStore[E]) Delete(_ context.Context, id int) (domain.CommandResult, error) {
	if f.failAll.Failed() {
		return f.failAll, nil
	}
	if _, ok := f.rows[id]; !ok {
		return domain.CommandResult{Code: -1, Message: "el registro no existe"}, nil
	}
	delete(f.rows, id)
	return domain.CommandResult{Code: 0, Message: "registro eliminado"}, nil
}

func TestCatalogCreate_ExitoDevuelveID(t *testing.T) {
	store := newFakeCatalogStore[entity.Department]()
	uc := org.NewCatalogUseCase[entity.Department](store)

	id, err := uc.Create(context.Background(), &entity.Department{Name: "Recursos Humanos"})
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	rows, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

// Un resultado negativo jamás expone un id: el llamador recibe StoreError y cero.
func TestCatalogCreate_FallaDelProcedimiento_NoExponeID(t *testing.T) {
	store := newFakeCatalogStore[entity.Department]()
	store.failAll = domain.CommandResult{Code: -1, Message: "ya existe un departamento con ese nombre"}
	uc := org.NewCatalogUseCase[entity.Department](store)

	id, err := uc.Create(context.Background(), &entity.Department{Name: "Recursos Humanos"})
	assert.Zero(t, id)

	var se *domain.StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, -1, se.Code)
	assert.Equal(t, "ya existe un departamento con ese nombre", se.Message)
}

func TestCatalogUpdate_Inexistente(t *testing.T) {
	store := newFakeCatalogStore[entity.Post]()
	uc := org.NewCatalogUseCase[entity.Post](store)

	err := uc.Update(context.Background(), 99, &entity.Post{Name: "Analista"})
	var se *domain.StoreError
	require.ErrorAs(t, err, &se)
	assert.Contains(t, se.Message, "no existe")
}

func TestCatalogDelete_ExitoYFalla(t *testing.T) {
	store := newFakeCatalogStore[entity.Designation]()
	uc := org.NewCatalogUseCase[entity.Designation](store)

	id, err := uc.Create(context.Background(), &entity.Designation{Name: "Gerente"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), id))

	err = uc.Delete(context.Background(), id)
	var se *domain.StoreError
	assert.ErrorAs(t, err, &se)
}

// fakeEmployeeStore agrega la lectura por id del puerto de empleados.
type fakeEmployeeStore struct {
	fakeCatalogStore[entity.Employee]
}

func newFakeEmployeeStore() *fakeEmployeeStore {
	return &fakeEmployeeStore{fakeCatalogStore[entity.Employee]{
		rows: make(map[int]entity.Employee), nextID: 1,
	}}
}

func (f *fakeEmployeeStore) Get(_ context.Context, id int) (*entity.Employee, error) {
	e, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	e.ID = id
	return &e, nil
}

func TestEmployeeGet_Inexistente(t *testing.T) {
	uc := org.NewEmployeeUseCase(newFakeEmployeeStore())

	_, err := uc.Get(context.Background(), 42)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestEmployee_CicloCompleto(t *testing.T) {
	store := newFakeEmployeeStore()
	uc := org.NewEmployeeUseCase(store)
	ctx := context.Background()

	movil := "3001234567"
	id, err := uc.Create(ctx, &entity.Employee{
		FullName:     "Carlos Ruiz",
		Email:        "carlos@ejemplo.com",
		MobileNumber: &movil,
	})
	require.NoError(t, err)

	e, err := uc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Carlos Ruiz", e.FullName)
	require.NotNil(t, e.MobileNumber)
	assert.Equal(t, movil, *e.MobileNumber)

	e.FullName = "Carlos Ruiz Gómez"
	require.NoError(t, uc.Update(ctx, id, e))

	e, err = uc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Carlos Ruiz Gómez", e.FullName)

	require.NoError(t, uc.Delete(ctx, id))
	_, err = uc.Get(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// fakePDF captura los mapas de nombres que el caso de uso del reporte resuelve.
type fakePDF struct {
	employees    []entity.Employee
	departments  map[int]string
	designations map[int]string
	posts        map[int]string
}

func (f *fakePDF) GenerateRoster(_ context.Context, employees []entity.Employee,
	departments, designations, posts map[int]string) ([]byte, error) {
	f.employees = employees
	f.departments = departments
	f.designations = designations
	f.posts = posts
	return []byte("%PDF-fake"), nil
}

func TestRoster_ResuelveNombresDeCatalogo(t *testing.T) {
	ctx := context.Background()

	employees := newFakeEmployeeStore()
	departments := newFakeCatalogStore[entity.Department]()
	designations := newFakeCatalogStore[entity.Designation]()
	posts := newFakeCatalogStore[entity.Post]()

	depID := 7
	departments.seed(depID, entity.Department{ID: depID, Name: "Tecnología"})
	_, err := org.NewEmployeeUseCase(employees).Create(ctx, &entity.Employee{
		FullName: "Carlos Ruiz", Email: "carlos@ejemplo.com", DepartmentID: &depID,
	})
	require.NoError(t, err)

	pdf := &fakePDF{}
	uc := org.NewRosterUseCase(employees, departments, designations, posts, pdf)

	out, err := uc.GeneratePDF(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Len(t, pdf.employees, 1)
	assert.Equal(t, "Tecnología", pdf.departments[depID])
	assert.Empty(t, pdf.posts)
}

var _ org.EmployeeStore = (*fakeEmployeeStore)(nil)
