package org

import (
	"context"

	"github.com/jhoicas/hrms-api/internal/domain/entity"
)

// RosterUseCase arma la nómina de empleados en PDF: lista los empleados y los
// tres catálogos, resuelve los nombres referenciados y delega el render.
type RosterUseCase struct {
	employees    EmployeeStore
	departments  CatalogStore[entity.Department]
	designations CatalogStore[entity.Designation]
	posts        CatalogStore[entity.Post]
	pdf          RosterPDFGenerator
}

// NewRosterUseCase construye el caso de uso del reporte.
func NewRosterUseCase(
	employees EmployeeStore,
	departments CatalogStore[entity.Department],
	designations CatalogStore[entity.Designation],
	posts CatalogStore[entity.Post],
	pdf RosterPDFGenerator,
) *RosterUseCase {
	return &RosterUseCase{
		employees:    employees,
		departments:  departments,
		designations: designations,
		posts:        posts,
		pdf:          pdf,
	}
}

// GeneratePDF devuelve los bytes del reporte.
func (uc *RosterUseCase) GeneratePDF(ctx context.Context) ([]byte, error) {
	employees, err := uc.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	deps, err := uc.departments.List(ctx)
	if err != nil {
		return nil, err
	}
	desigs, err := uc.designations.List(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := uc.posts.List(ctx)
	if err != nil {
		return nil, err
	}

	depNames := make(map[int]string, len(deps))
	for _, d := range deps {
		depNames[d.ID] = d.Name
	}
	desigNames := make(map[int]string, len(desigs))
	for _, d := range desigs {
		desigNames[d.ID] = d.Name
	}
	postNames := make(map[int]string, len(posts))
	for _, p := range posts {
		postNames[p.ID] = p.Name
	}

	return uc.pdf.GenerateRoster(ctx, employees, depNames, desigNames, postNames)
}
