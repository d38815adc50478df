package org

import (
	"context"

	"github.com/jhoicas/hrms-api/internal/domain"
	"github.com/jhoicas/hrms-api/internal/domain/entity"
)

// EmployeeUseCase servicio de empleados: el mismo patrón de catálogo más la
// lectura por id.
type EmployeeUseCase struct {
	*CatalogUseCase[entity.Employee]
	store EmployeeStore
}

// NewEmployeeUseCase construye el servicio de empleados.
func NewEmployeeUseCase(store EmployeeStore) *EmployeeUseCase {
	return &EmployeeUseCase{
		CatalogUseCase: NewCatalogUseCase[entity.Employee](store),
		store:          store,
	}
}

// Get devuelve el empleado o domain.ErrNotFound.
func (uc *EmployeeUseCase) Get(ctx context.Context, id int) (*entity.Employee, error) {
	e, err := uc.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return e, nil
}
