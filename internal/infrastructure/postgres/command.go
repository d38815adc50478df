package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/hrms-api/internal/application/org"
	"github.com/jhoicas/hrms-api/internal/domain"
	"github.com/jhoicas/hrms-api/internal/domain/entity"
)

// Querier es lo mínimo que el adaptador necesita del pool (o de una tx).
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ProcSpec nombra los procedimientos de una entidad.
type ProcSpec struct {
	List   string
	Get    string // opcional; solo Employee lo tiene
	Create string
	Update string
	Delete string
}

// ProcStore es el adaptador genérico del protocolo de comandos: una sola
// implementación parametrizada por nombres de procedimiento y un binder de
// parámetros, en lugar de cuatro servicios duplicados.
//
// Contrato con el backend relacional:
//   - escrituras: SELECT result, message FROM sp_x($1, ...) con result entero
//     y message varchar(500); result < 0 = falla con message poblado,
//     result >= 0 = éxito (en creates, el id de la fila nueva).
//   - lecturas: SELECT * FROM sp_get_x() con el rowset mapeado directo a E.
//
// Los campos opcionales se bindean como nil y pgx los envía como NULL: el
// parámetro nunca se omite.
type ProcStore[E any] struct {
	db   Querier
	spec ProcSpec
	bind func(*E) []any
}

// NewProcStore construye el adaptador para una entidad.
func NewProcStore[E any](db Querier, spec ProcSpec, bind func(*E) []any) *ProcStore[E] {
	return &ProcStore[E]{db: db, spec: spec, bind: bind}
}

// invoke ejecuta un procedimiento de escritura y normaliza sus parámetros de
// salida en un CommandResult.
func (s *ProcStore[E]) invoke(ctx context.Context, proc string, args []any) (domain.CommandResult, error) {
	query := fmt.Sprintf("SELECT result, message FROM %s(%s)", proc, placeholders(len(args)))
	var res domain.CommandResult
	if err := s.db.QueryRow(ctx, query, args...).Scan(&res.Code, &res.Message); err != nil {
		return domain.CommandResult{}, fmt.Errorf("invocar %s: %w", proc, err)
	}
	return res, nil
}

// List ejecuta el procedimiento de lectura y mapea el rowset a entidades.
func (s *ProcStore[E]) List(ctx context.Context) ([]E, error) {
	rows, err := s.db.Query(ctx, fmt.Sprintf("SELECT * FROM %s()", s.spec.List))
	if err != nil {
		return nil, fmt.Errorf("listar %s: %w", s.spec.List, err)
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[E])
	if err != nil {
		return nil, fmt.Errorf("mapear %s: %w", s.spec.List, err)
	}
	return list, nil
}

// Get ejecuta la lectura por id. (nil, nil) si no hay fila.
func (s *ProcStore[E]) Get(ctx context.Context, id int) (*E, error) {
	rows, err := s.db.Query(ctx, fmt.Sprintf("SELECT * FROM %s($1)", s.spec.Get), id)
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", s.spec.Get, err)
	}
	e, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[E])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("mapear %s: %w", s.spec.Get, err)
	}
	return &e, nil
}

// Create invoca el procedimiento de creación con los parámetros bindeados.
func (s *ProcStore[E]) Create(ctx context.Context, e *E) (domain.CommandResult, error) {
	return s.invoke(ctx, s.spec.Create, s.bind(e))
}

// Update invoca la actualización: id seguido de los mismos parámetros del create.
func (s *ProcStore[E]) Update(ctx context.Context, id int, e *E) (domain.CommandResult, error) {
	args := append([]any{id}, s.bind(e)...)
	return s.invoke(ctx, s.spec.Update, args)
}

// Delete invoca el borrado por id.
func (s *ProcStore[E]) Delete(ctx context.Context, id int) (domain.CommandResult, error) {
	return s.invoke(ctx, s.spec.Delete, []any{id})
}

func placeholders(n int) string {
	if n == 0 {
		return ""
	}
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(parts, ", ")
}

// ── Instancias por entidad ────────────────────────────────────────────────────

var (
	_ org.CatalogStore[entity.Department]  = (*ProcStore[entity.Department])(nil)
	_ org.CatalogStore[entity.Designation] = (*ProcStore[entity.Designation])(nil)
	_ org.CatalogStore[entity.Post]        = (*ProcStore[entity.Post])(nil)
	_ org.EmployeeStore                    = (*ProcStore[entity.Employee])(nil)
)

// NewDepartmentStore adaptador de departamentos.
func NewDepartmentStore(db Querier) *ProcStore[entity.Department] {
	return NewProcStore(db, ProcSpec{
		List:   "sp_get_all_departments",
		Create: "sp_create_department",
		Update: "sp_update_department",
		Delete: "sp_delete_department",
	}, func(d *entity.Department) []any {
		return []any{d.Name, d.Code}
	})
}

// NewDesignationStore adaptador de cargos.
func NewDesignationStore(db Querier) *ProcStore[entity.Designation] {
	return NewProcStore(db, ProcSpec{
		List:   "sp_get_all_designations",
		Create: "sp_create_designation",
		Update: "sp_update_designation",
		Delete: "sp_delete_designation",
	}, func(d *entity.Designation) []any {
		return []any{d.Name, d.Level}
	})
}

// NewPostStore adaptador de puestos.
func NewPostStore(db Querier) *ProcStore[entity.Post] {
	return NewProcStore(db, ProcSpec{
		List:   "sp_get_all_posts",
		Create: "sp_create_post",
		Update: "sp_update_post",
		Delete: "sp_delete_post",
	}, func(p *entity.Post) []any {
		return []any{p.Name}
	})
}

// NewEmployeeStore adaptador de empleados. Los opcionales (móvil, dirección,
// fecha de nacimiento, salario y las tres FK) van como NULL cuando son nil.
func NewEmployeeStore(db Querier) *ProcStore[entity.Employee] {
	return NewProcStore(db, ProcSpec{
		List:   "sp_get_all_employees",
		Get:    "sp_get_employee_by_id",
		Create: "sp_create_employee",
		Update: "sp_update_employee",
		Delete: "sp_delete_employee",
	}, func(e *entity.Employee) []any {
		return []any{
			e.FullName, e.Email, e.MobileNumber, e.Address, e.DateOfBirth,
			e.Salary, e.DepartmentID, e.DesignationID, e.PostID,
		}
	})
}
