package dto

import (
	"github.com/jhoicas/hrms-api/internal/domain"
	"github.com/jhoicas/hrms-api/internal/domain/entity"
)

// DepartmentRequest entrada para crear/actualizar un departamento.
type DepartmentRequest struct {
	Name string  `json:"name" validate:"required,max=200"`
	Code *string `json:"code"`
}

// Validate chequeo mínimo de campos requeridos.
func (r DepartmentRequest) Validate() error {
	if r.Name == "" {
		return domain.ErrInvalidInput
	}
	return nil
}

// ToEntity convierte la entrada en la entidad de dominio.
func (r DepartmentRequest) ToEntity() *entity.Department {
	return &entity.Department{Name: r.Name, Code: r.Code}
}

// DesignationRequest entrada para crear/actualizar un cargo.
type DesignationRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Level *int   `json:"level"`
}

// Validate chequeo mínimo de campos requeridos.
func (r DesignationRequest) Validate() error {
	if r.Name == "" {
		return domain.ErrInvalidInput
	}
	return nil
}

// ToEntity convierte la entrada en la entidad de dominio.
func (r DesignationRequest) ToEntity() *entity.Designation {
	return &entity.Designation{Name: r.Name, Level: r.Level}
}

// PostRequest entrada para crear/actualizar un puesto.
type PostRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// Validate chequeo mínimo de campos requeridos.
func (r PostRequest) Validate() error {
	if r.Name == "" {
		return domain.ErrInvalidInput
	}
	return nil
}

// ToEntity convierte la entrada en la entidad de dominio.
func (r PostRequest) ToEntity() *entity.Post {
	return &entity.Post{Name: r.Name}
}

// CreatedResponse id asignado por un procedimiento de creación exitoso.
type CreatedResponse struct {
	ID int `json:"id"`
}
