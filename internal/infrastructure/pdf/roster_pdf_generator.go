// Package pdf genera la nómina de empleados en PDF (Maroto v2).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nómina de empleados + fecha de generación           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Nombre | Email | Móvil | Depto | Cargo | Puesto      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de empleados                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/hrms-api/internal/application/org"
	"github.com/jhoicas/hrms-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ org.RosterPDFGenerator = (*MarotoRosterGenerator)(nil)

// MarotoRosterGenerator implementa org.RosterPDFGenerator usando Maroto v2.
type MarotoRosterGenerator struct{}

// NewMarotoRosterGenerator construye el generador.
func NewMarotoRosterGenerator() *MarotoRosterGenerator {
	return &MarotoRosterGenerator{}
}

// GenerateRoster genera el PDF y devuelve sus bytes.
func (g *MarotoRosterGenerator) GenerateRoster(
	_ context.Context,
	employees []entity.Employee,
	departments, designations, posts map[int]string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Nómina de empleados", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, e := range employees {
		m.AddRows(employeeRow(e, departments, designations, posts))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(employees)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título + fecha de generación.
func headerRow() core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("NÓMINA DE EMPLEADOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Nombre", 3, align.Left),
		h("Email", 3, align.Left),
		h("Móvil", 2, align.Left),
		h("Depto.", 2, align.Left),
		h("Cargo", 1, align.Left),
		h("Puesto", 1, align.Left),
	)
}

// employeeRow: una fila por empleado, con los nombres de catálogo resueltos.
func employeeRow(e entity.Employee, departments, designations, posts map[int]string) core.Row {
	cell := func(value string, size int) core.Col {
		return col.New(size).Add(text.New(value, props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		cell(e.FullName, 3),
		cell(e.Email, 3),
		cell(derefOr(e.MobileNumber, "—"), 2),
		cell(lookupOr(departments, e.DepartmentID, "—"), 2),
		cell(lookupOr(designations, e.DesignationID, "—"), 1),
		cell(lookupOr(posts, e.PostID, "—"), 1),
	)
}

// footerRow: total de empleados.
func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total de empleados: %d", total), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func derefOr(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

func lookupOr(names map[int]string, id *int, def string) string {
	if id == nil {
		return def
	}
	if name, ok := names[*id]; ok {
		return name
	}
	return def
}
