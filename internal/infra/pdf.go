package infra

// Cut report generation using go-pdf/fpdf. One A5 page per cut: header with
// route and window, reconciliation summary, then the delivery table backing
// the expected-cash number.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/ArojasJ/agendas-entregas/internal/dto"
)

// GenerateCortePDF writes the report for a committed cut and returns the
// absolute path of the file. storagePath is created if needed.
func GenerateCortePDF(detalle *dto.CorteDetalleResponse, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: crear directorio: %w", err)
	}

	corte := detalle.Corte
	filePath := filepath.Join(storagePath, fmt.Sprintf("corte_%s.pdf", corte.ID))

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Corte de Caja", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Ruta "+corte.Ruta, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 8)
	desde := "inicio de operaciones"
	if corte.DesdeDatetime != nil {
		desde = *corte.DesdeDatetime
	}
	pdf.CellFormat(contentW, 4, "Ventana: desde "+desde, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 4, "Hasta: "+corte.CreatedAt, "", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.Line(12, pdf.GetY(), pageW-12, pdf.GetY())
	pdf.Ln(2)

	// ── Summary ──────────────────────────────────────────────────────────────
	labelW := contentW * 0.6
	valueW := contentW * 0.4

	fila := func(label, value string, bold bool) {
		estilo := ""
		if bold {
			estilo = "B"
		}
		pdf.SetFont("Helvetica", estilo, 9)
		pdf.CellFormat(labelW, 6, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(valueW, 6, value, "", 1, "R", false, 0, "")
	}

	fila("Caja inicial:", "$"+corte.CajaInicial.StringFixed(2), false)
	fila("Entregas en efectivo:", "$"+corte.MontoEntregas.StringFixed(2), false)
	fila("Efectivo esperado:", "$"+corte.EfectivoEsperado.StringFixed(2), true)
	fila("Efectivo contado:", "$"+corte.EfectivoContado.StringFixed(2), false)
	fila("Diferencia:", "$"+corte.Diferencia.StringFixed(2), true)
	if corte.Nota != nil && *corte.Nota != "" {
		pdf.SetFont("Helvetica", "I", 8)
		pdf.MultiCell(contentW, 4, "Nota: "+*corte.Nota, "", "L", false)
	}

	pdf.Ln(2)
	pdf.Line(12, pdf.GetY(), pageW-12, pdf.GetY())
	pdf.Ln(2)

	// ── Delivery table ───────────────────────────────────────────────────────
	col1 := contentW * 0.45 // customer
	col2 := contentW * 0.30 // date
	col3 := contentW * 0.25 // amount

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(col1, 5, "Cliente", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Fecha", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Cobrado", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, e := range detalle.Entregas {
		nombre := e.NombreCompleto
		if len(nombre) > 28 {
			nombre = nombre[:27] + "…"
		}
		pdf.CellFormat(col1, 5, nombre, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, e.Fecha, "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, "$"+e.MontoCobrar.StringFixed(2), "", 1, "R", false, 0, "")
	}
	if len(detalle.Entregas) == 0 {
		pdf.CellFormat(contentW, 5, "Sin entregas en la ventana.", "", 1, "L", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: escribir archivo: %w", err)
	}
	return filePath, nil
}
