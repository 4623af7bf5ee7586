package handlers

import (
	"bytes"
	"fmt"
	"time"

	"laundryops/internal/domain/models"
	"laundryops/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/phpdave11/gofpdf"
)

// GET /api/orders/:id/invoice
func GetOrderInvoicePDF(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	o, err := orderService().OrderRepo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	data, filename, err := buildOrderInvoicePDF(o)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, "application/pdf", data)
}

func buildOrderInvoicePDF(o models.Order) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	invNo := fmt.Sprintf("INV-%d", o.ID)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice no : "+invNo)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date       : "+utils.FormatDateTime(time.Now()))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Client : %s", safe(o.ClientName)))
	pdf.Ln(10)

	lines := []string{
		fmt.Sprintf("Service  : %s", safe(o.ServiceType)),
		fmt.Sprintf("Weight   : %.1f kg", o.WeightKg),
		fmt.Sprintf("Status   : %s", safe(o.Status)),
		fmt.Sprintf("Received : %s", utils.FormatDate(o.ReceivedAt)),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 9, "Total: "+utils.FormatCents(o.TotalAmount))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Note: payment is due on collection. Keep this invoice as your drop-off receipt.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INVOICE_%d.pdf", o.ID)
	return buf.Bytes(), filename, nil
}

func safe(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
