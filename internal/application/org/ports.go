package org

import (
	"context"

	"github.com/jhoicas/hrms-api/internal/domain"
	"github.com/jhoicas/hrms-api/internal/domain/entity"
)

// CatalogStore es el puerto genérico hacia el adaptador de procedimientos
// almacenados. Las lecturas devuelven el rowset mapeado a entidades; las
// escrituras devuelven el CommandResult normalizado (código + mensaje) que
// emite cada procedimiento por sus parámetros de salida.
type CatalogStore[E any] interface {
	List(ctx context.Context) ([]E, error)
	Create(ctx context.Context, e *E) (domain.CommandResult, error)
	Update(ctx context.Context, id int, e *E) (domain.CommandResult, error)
	Delete(ctx context.Context, id int) (domain.CommandResult, error)
}

// EmployeeStore agrega la lectura por id que solo tiene Employee.
type EmployeeStore interface {
	CatalogStore[entity.Employee]
	Get(ctx context.Context, id int) (*entity.Employee, error)
}

// RosterPDFGenerator genera la nómina de empleados en PDF con los nombres de
// catálogo ya resueltos.
type RosterPDFGenerator interface {
	GenerateRoster(ctx context.Context, employees []entity.Employee,
		departments, designations, posts map[int]string) ([]byte, error)
}
