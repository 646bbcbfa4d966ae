// Package pdf implementa la exportación del reporte de inventario a PDF
// para impresión y archivo físico del almacén.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: FABRICATEXTIL │ Reporte de Inventario + Fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Productos / Piezas totales / Alertas de stock        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Stock por modelo (Tela | Piezas)                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Últimos movimientos (Fecha | SKU | Tipo | Cant)     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
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

	"github.com/fabricatextil/inventario-api/internal/application/dto"
	"github.com/fabricatextil/inventario-api/internal/application/reports"
)

var _ reports.InventoryPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 110, Blue: 253}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reports.InventoryPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryPDF(
	_ context.Context,
	report *dto.MovementReportResponse,
	dashboard *dto.DashboardResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		WithAuthor("FABRICATEXTIL", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(dashboard))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Stock agregado por modelo de tela
	m.AddRows(sectionTitleRow("STOCK POR MODELO"))
	m.AddRows(modelTableHeaderRow())
	for _, r := range modelTableRows(report.StockPorModelo) {
		m.AddRows(r)
	}

	// Últimos movimientos del libro
	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitleRow("ÚLTIMOS MOVIMIENTOS"))
	m.AddRows(movementTableHeaderRow())
	for _, r := range movementTableRows(report.UltimosMovimientos) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del almacén (izq) y título + fecha de emisión (der).
func headerRow(report *dto.MovementReportResponse) core.Row {
	emitido := time.Now().Format("02/01/2006 15:04")
	rango := "Histórico completo"
	if report.FechaInicio != "" {
		rango = fmt.Sprintf("Del %s al %s", report.FechaInicio, report.FechaFin)
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New("FABRICATEXTIL", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Inventario de almacén textil", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(rango, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
			text.New("Emitido: "+emitido, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// kpiRow: los tres indicadores principales del panel.
func kpiRow(d *dto.DashboardResponse) core.Row {
	kpi := func(label, value string, valueColor *props.Color) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 1,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center,
				Color: valueColor, Top: 6,
			}),
		)
	}
	return row.New(16).Add(
		kpi("Productos registrados", strconv.Itoa(d.TotalProductos), colorPrimary),
		kpi("Piezas en almacén", strconv.Itoa(d.TotalPiezas), colorPrimary),
		kpi("Alertas de stock bajo", strconv.Itoa(d.ProductosBajoStock), colorDanger),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

// modelTableHeaderRow: cabecera de la tabla de stock por modelo.
func modelTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Modelo de tela", 9, align.Left),
		h("Piezas", 3, align.Right),
	)
}

// modelTableRows: una fila por modelo de tela.
func modelTableRows(items []dto.StockByModelItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(5).Add(
			col.New(9).Add(text.New(
				it.NombreTela,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				strconv.Itoa(it.TotalPz),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// movementTableHeaderRow: cabecera de la tabla de movimientos.
func movementTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Fecha", 3, align.Left),
		h("SKU", 3, align.Left),
		h("Tipo", 2, align.Center),
		h("Cantidad", 2, align.Right),
		h("Notas", 2, align.Left),
	)
}

// movementTableRows: una fila por movimiento, Salidas en rojo.
func movementTableRows(items []dto.MovementResponse) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, mv := range items {
		tipoColor := colorPrimary
		if mv.Tipo == "Salida" {
			tipoColor = colorDanger
		}
		result = append(result, row.New(5).Add(
			col.New(3).Add(text.New(
				mv.Fecha.Format("02/01/2006 15:04"),
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				mv.ProductoSKU,
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				mv.Tipo,
				props.Text{Size: 7.5, Align: align.Center, Top: 1, Color: tipoColor, Style: fontstyle.Bold},
			)),
			col.New(2).Add(text.New(
				strconv.Itoa(mv.Cantidad),
				props.Text{Size: 7.5, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				truncate(mv.Notas, 24),
				props.Text{Size: 7, Align: align.Left, Top: 1, Left: 1, Color: colorGray},
			)),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

// truncate corta s a max caracteres añadiendo elipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
