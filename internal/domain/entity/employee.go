package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee registro organizacional. Las referencias a Department, Designation
// y Post son opcionales (variante desnormalizada): se persisten como NULL
// cuando están ausentes, nunca se omiten del procedimiento.
type Employee struct {
	ID            int                 `db:"id"`
	FullName      string              `db:"full_name"`
	Email         string              `db:"email"`
	MobileNumber  *string             `db:"mobile_number"`
	Address       *string             `db:"address"`
	DateOfBirth   *time.Time          `db:"date_of_birth"`
	Salary        decimal.NullDecimal `db:"salary"`
	DepartmentID  *int                `db:"department_id"`
	DesignationID *int                `db:"designation_id"`
	PostID        *int                `db:"post_id"`
}
