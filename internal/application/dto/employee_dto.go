package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/hrms-api/internal/domain"
	"github.com/jhoicas/hrms-api/internal/domain/entity"
)

// EmployeeRequest entrada para crear o actualizar un empleado. Los campos
// opcionales viajan como punteros: nil se persiste como NULL.
type EmployeeRequest struct {
	FullName      string           `json:"fullName" validate:"required,max=200"`
	Email         string           `json:"email" validate:"required,email"`
	MobileNumber  *string          `json:"mobileNumber"`
	Address       *string          `json:"address"`
	DateOfBirth   *time.Time       `json:"dateOfBirth"`
	Salary        *decimal.Decimal `json:"salary"`
	DepartmentID  *int             `json:"departmentId"`
	DesignationID *int             `json:"designationId"`
	PostID        *int             `json:"postId"`
}

// Validate chequeo mínimo de campos requeridos.
func (r EmployeeRequest) Validate() error {
	if r.FullName == "" || r.Email == "" {
		return domain.ErrInvalidInput
	}
	return nil
}

// ToEntity convierte la entrada en la entidad de dominio.
func (r EmployeeRequest) ToEntity() *entity.Employee {
	e := &entity.Employee{
		FullName:      r.FullName,
		Email:         r.Email,
		MobileNumber:  r.MobileNumber,
		Address:       r.Address,
		DateOfBirth:   r.DateOfBirth,
		DepartmentID:  r.DepartmentID,
		DesignationID: r.DesignationID,
		PostID:        r.PostID,
	}
	if r.Salary != nil {
		e.Salary = decimal.NewNullDecimal(*r.Salary)
	}
	return e
}
