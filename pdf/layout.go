package pdf

import (
	"fmt"
	"strconv"

	"auditpro-backend/models"
)

// Page geometry, mm. A4 portrait with 14mm margins; the footer zone at the
// bottom of every page is reserved for the signature anchor and the page
// caption.
const (
	pageW    = 210.0
	pageH    = 297.0
	margin   = 14.0
	contentW = pageW - 2*margin

	lineH     = 4.5
	titleBarY = 42.0
	titleBarH = 10.0
	infoBoxH  = 42.0
	infoGapX  = 6.0
	col2X     = pageW/2 + 5

	// A summary section will not start with less than this much room left;
	// it keeps the signatures from being orphaned away from all trailing
	// summary context on printed review.
	summaryBreakMin = 90.0

	footerReserveH = 45.0
	sigPad         = 10.0
	sigImgW        = 40.0
	sigImgH        = 18.0

	bottomLimit = pageH - margin
	footerY     = pageH - 10
)

var (
	colBlue   = RGB{R: 41, G: 128, B: 185}
	colGreen  = RGB{R: 46, G: 164, B: 79}
	colRed    = RGB{R: 231, G: 76, B: 60}
	colGray   = RGB{R: 127, G: 140, B: 141}
	colBorder = RGB{R: 200, G: 200, B: 200}
	colText   = RGB{R: 0, G: 0, B: 0}
	colMuted  = RGB{R: 110, G: 110, B: 110}
	colWhite  = RGB{R: 255, G: 255, B: 255}
)

// sheet is the layout cursor: content flows top to bottom, page breaks move
// it back to the top margin of a fresh page. Continuation pages carry no
// header, only the footer added by the final stamping pass.
type sheet struct {
	doc  *Document
	page *Page
	y    float64
}

func newSheet() *sheet {
	doc := &Document{}
	s := &sheet{doc: doc}
	s.page = doc.addPage()
	s.y = margin
	return s
}

func (s *sheet) breakPage() {
	s.page = s.doc.addPage()
	s.y = margin
}

func (s *sheet) text(x, y float64, str, style string, size float64, color RGB, align Align) {
	s.page.Ops = append(s.page.Ops, Op{Kind: OpText, X: x, Y: y, Text: str, Style: style, Size: size, Color: color, Align: align})
}

func (s *sheet) rect(x, y, w, h float64, color RGB, filled bool) {
	op := Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Filled: filled}
	if filled {
		op.Fill = color
	} else {
		op.Color = color
	}
	s.page.Ops = append(s.page.Ops, op)
}

func (s *sheet) line(x1, y1, x2, y2 float64, color RGB) {
	s.page.Ops = append(s.page.Ops, Op{Kind: OpLine, X: x1, Y: y1, X2: x2, Y2: y2, Color: color})
}

func (s *sheet) image(data string, x, y, w, h float64) {
	s.page.Ops = append(s.page.Ops, Op{Kind: OpImage, X: x, Y: y, W: w, H: h, Image: data})
}

// textBlock draws str word-wrapped into width w starting at (x, y) and
// returns the y below the block.
func (s *sheet) textBlock(x, y, w float64, str string, size float64, color RGB) float64 {
	for _, ln := range wrapText(str, w, size) {
		s.text(x, y, ln, "", size, color, AlignLeft)
		y += lineH
	}
	return y
}

// Engine lays a structured report out into a Document. It never mutates its
// inputs and has no drawing-library dependency; see Write for the byte
// stream.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

// RenderFullReport produces the complete visit report: header, info grid,
// criteria table, optional order table, summary, signatures, footers.
func (e *Engine) RenderFullReport(r *models.Report, client models.Client, company models.CompanySettings) *Document {
	s := newSheet()
	e.drawHeader(s, company, "RELATÓRIO DE INTERVENÇÃO")
	e.drawInfoGrid(s, r, client)
	if len(r.Criteria) > 0 {
		e.drawCriteriaTable(s, r.Criteria)
	}
	if o := r.SalesOrder(); !o.IsEmpty() {
		e.drawOrderTable(s, o)
	}
	e.drawSummary(s, r)
	if r.TypeKey != models.TplVisitComercial {
		e.drawSignatureBlock(s, r, true)
	}
	stampFooters(s.doc)
	return s.doc
}

// RenderOrderOnly produces the standalone order sheet: same header and info
// grammar, no criteria table, and a simplified two-signature-line footer
// regardless of the report's template type.
func (e *Engine) RenderOrderOnly(r *models.Report, client models.Client, company models.CompanySettings) *Document {
	s := newSheet()
	e.drawHeader(s, company, "ENCOMENDA")
	e.drawInfoGrid(s, r, client)
	e.drawOrderTable(s, r.SalesOrder())
	e.drawSignatureBlock(s, r, false)
	stampFooters(s.doc)
	return s.doc
}

// drawHeader fills the fixed-position first-page header: logo top-left when
// present, company identity top-right, blue title bar at y=42. Continuation
// pages never repeat it.
func (e *Engine) drawHeader(s *sheet, company models.CompanySettings, title string) {
	if company.LogoData != "" {
		s.image(company.LogoData, margin, 8, 24, 24)
	}

	right := pageW - margin
	s.text(right, 14, company.Name, "B", 14, colText, AlignRight)
	s.text(right, 20, company.Address+" | NIF: "+company.TaxId, "", 9, colMuted, AlignRight)
	s.text(right, 25, company.Email+" | "+company.Phone, "", 9, colMuted, AlignRight)
	if company.Website != "" {
		s.text(right, 30, company.Website, "", 9, colMuted, AlignRight)
	}

	s.rect(0, titleBarY, pageW, titleBarH, colBlue, true)
	s.text(margin, titleBarY+7, title, "B", 14, colWhite, AlignLeft)

	s.y = titleBarY + titleBarH + 8
}

// drawInfoGrid renders the two side-by-side fixed-height boxes (client data,
// intervention data). Sub-fields word-wrap; the cursor advances past the
// taller of the two columns, never less than the box height.
func (e *Engine) drawInfoGrid(s *sheet, r *models.Report, client models.Client) {
	boxW := (contentW - infoGapX) / 2
	innerW := boxW - 6
	top := s.y

	s.rect(margin, top, boxW, infoBoxH, colBorder, false)
	s.rect(margin+boxW+infoGapX, top, boxW, infoBoxH, colBorder, false)

	s.text(margin+3, top+6, "DADOS DO CLIENTE", "B", 9, colText, AlignLeft)
	s.text(margin+boxW+infoGapX+3, top+6, "DADOS DA INTERVENÇÃO", "B", 9, colText, AlignLeft)

	taxID := client.TaxId
	if taxID == "" {
		taxID = "N/A"
	}
	left := []string{
		"Cliente: " + client.Name,
	}
	if client.ShopName != "" {
		left = append(left, "Loja: "+client.ShopName)
	}
	left = append(left,
		"Morada: "+client.Address,
		client.PostalCode+" "+client.Locality+", "+client.County,
		"NIF: "+taxID,
		"Responsável: "+r.ClientSignerName,
	)

	right := []string{
		"Data: " + r.Date,
		"Horário: " + r.StartTime + " - " + r.EndTime,
		"Técnico: " + r.AuditorName,
		"Tipo: " + r.TypeName,
	}
	if r.ContractNumber != "" {
		right = append(right, "Contrato: "+r.ContractNumber)
	}
	if r.RouteNumber != "" {
		right = append(right, "Rota: "+r.RouteNumber)
	}
	if p := r.Location(); p != nil {
		right = append(right, fmt.Sprintf("GPS: %.5f, %.5f", p.Lat, p.Lng))
	}

	yL := top + 12.0
	for _, f := range left {
		yL = s.textBlock(margin+3, yL, innerW, f, 9, colText)
	}
	yR := top + 12.0
	for _, f := range right {
		yR = s.textBlock(margin+boxW+infoGapX+3, yR, innerW, f, 9, colText)
	}

	bottom := top + infoBoxH
	if yL > bottom {
		bottom = yL
	}
	if yR > bottom {
		bottom = yR
	}
	s.y = bottom + 8
}

// Criteria table column layout.
const (
	critLabelW = 90.0
	critStateW = 20.0
	critNotesW = contentW - critLabelW - critStateW
	tableHeadH = 8.0
	cellPad    = 2.0
	minRowH    = 8.0
)

func (e *Engine) drawCriteriaHead(s *sheet) {
	s.rect(margin, s.y, contentW, tableHeadH, colBlue, true)
	base := s.y + 5.5
	s.text(margin+cellPad, base, "Critério de Avaliação", "B", 9, colWhite, AlignLeft)
	s.text(margin+critLabelW+critStateW/2, base, "Estado", "B", 9, colWhite, AlignCenter)
	s.text(margin+critLabelW+critStateW+cellPad, base, "Observações", "B", 9, colWhite, AlignLeft)
	s.y += tableHeadH
}

// drawCriteriaTable renders the three-column checklist grid with automatic
// row heights from wrapped notes. A row that would overflow the page starts
// a new page and repeats the header row: long checklists routinely exceed a
// single page.
func (e *Engine) drawCriteriaTable(s *sheet, criteria []models.AuditCriteria) {
	e.drawCriteriaHead(s)
	for _, c := range criteria {
		labelLines := wrapText(c.Label, critLabelW-2*cellPad, 9)
		notesLines := wrapText(c.Notes, critNotesW-2*cellPad, 9)
		n := len(labelLines)
		if len(notesLines) > n {
			n = len(notesLines)
		}
		rowH := float64(n)*lineH + 2*cellPad
		if rowH < minRowH {
			rowH = minRowH
		}

		if s.y+rowH > bottomLimit {
			s.breakPage()
			e.drawCriteriaHead(s)
		}

		top := s.y
		s.rect(margin, top, contentW, rowH, colBorder, false)

		y := top + cellPad + 3.5
		for _, ln := range labelLines {
			s.text(margin+cellPad, y, ln, "", 9, colText, AlignLeft)
			y += lineH
		}

		e.drawStatusBadge(s, margin+critLabelW, top, rowH, c.Status)

		y = top + cellPad + 3.5
		for _, ln := range notesLines {
			s.text(margin+critLabelW+critStateW+cellPad, y, ln, "", 9, colText, AlignLeft)
			y += lineH
		}

		s.y = top + rowH
	}
	s.y += 12
}

// drawStatusBadge draws the colored evaluation badge centered in the status
// column. Unset rows get the same gray as N/A.
func (e *Engine) drawStatusBadge(s *sheet, colX, rowTop, rowH float64, status models.CriteriaStatus) {
	var label string
	var color RGB
	switch status {
	case models.StatusPass:
		label, color = "OK", colGreen
	case models.StatusFail:
		label, color = "NOK", colRed
	default:
		label, color = "N/A", colGray
	}
	const bw, bh = 14.0, 6.0
	bx := colX + (critStateW-bw)/2
	by := rowTop + (rowH-bh)/2
	s.rect(bx, by, bw, bh, color, true)
	s.text(bx+bw/2, by+4.2, label, "B", 8, colWhite, AlignCenter)
}

// Order table column layout.
const (
	ordProdW  = 82.0
	ordQtyW   = 20.0
	ordPriceW = 25.0
	ordDiscW  = 20.0
	ordTotalW = contentW - ordProdW - ordQtyW - ordPriceW - ordDiscW
)

func (e *Engine) drawOrderHead(s *sheet) {
	s.rect(margin, s.y, contentW, tableHeadH, colBlue, true)
	base := s.y + 5.5
	x := margin
	s.text(x+cellPad, base, "Produto", "B", 9, colWhite, AlignLeft)
	x += ordProdW
	s.text(x+ordQtyW-cellPad, base, "Qtd.", "B", 9, colWhite, AlignRight)
	x += ordQtyW
	s.text(x+ordPriceW-cellPad, base, "Preço Unit.", "B", 9, colWhite, AlignRight)
	x += ordPriceW
	s.text(x+ordDiscW-cellPad, base, "Desc. %", "B", 9, colWhite, AlignRight)
	x += ordDiscW
	s.text(x+ordTotalW-cellPad, base, "Total", "B", 9, colWhite, AlignRight)
	s.y += tableHeadH
}

// drawOrderTable renders the sales-order lines with the same pagination rule
// as the criteria table, followed by the right-aligned total and, when
// filled in, the delivery-conditions and observations rows. The total value
// is always recomputed upstream; this only formats it.
func (e *Engine) drawOrderTable(s *sheet, o *models.Order) {
	e.drawOrderHead(s)

	var total float64
	if o != nil {
		total = o.TotalValue
		for _, item := range o.Items {
			prodLines := wrapText(item.ProductName, ordProdW-2*cellPad, 9)
			rowH := float64(len(prodLines))*lineH + 2*cellPad
			if rowH < minRowH {
				rowH = minRowH
			}

			if s.y+rowH > bottomLimit {
				s.breakPage()
				e.drawOrderHead(s)
			}

			top := s.y
			s.rect(margin, top, contentW, rowH, colBorder, false)

			y := top + cellPad + 3.5
			for _, ln := range prodLines {
				s.text(margin+cellPad, y, ln, "", 9, colText, AlignLeft)
				y += lineH
			}

			base := top + cellPad + 3.5
			x := margin + ordProdW
			s.text(x+ordQtyW-cellPad, base, strconv.FormatFloat(item.Quantity, 'f', -1, 64), "", 9, colText, AlignRight)
			x += ordQtyW
			s.text(x+ordPriceW-cellPad, base, fmt.Sprintf("%.2f", item.UnitPrice), "", 9, colText, AlignRight)
			x += ordPriceW
			s.text(x+ordDiscW-cellPad, base, fmt.Sprintf("%.0f", item.DiscountPercent), "", 9, colText, AlignRight)
			x += ordDiscW
			s.text(x+ordTotalW-cellPad, base, fmt.Sprintf("%.2f", item.LineTotal), "", 9, colText, AlignRight)

			s.y = top + rowH
		}
	}

	s.y += 6
	s.text(pageW-margin-24, s.y, "TOTAL:", "B", 10, colText, AlignRight)
	s.text(pageW-margin, s.y, fmt.Sprintf("%.2f€", total), "B", 10, colText, AlignRight)
	s.y += 8

	if o != nil && o.DeliveryConditions != "" {
		s.text(margin, s.y, "Condições de Entrega:", "B", 9, colText, AlignLeft)
		s.y += lineH
		s.y = s.textBlock(margin, s.y, contentW, o.DeliveryConditions, 9, colText)
		s.y += 3
	}
	if o != nil && o.Observations != "" {
		s.text(margin, s.y, "Observações:", "B", 9, colText, AlignLeft)
		s.y += lineH
		s.y = s.textBlock(margin, s.y, contentW, o.Observations, 9, colText)
		s.y += 3
	}
	s.y += 6
}

// drawSummary renders the free-text summary block and, when present, the
// client-observations block. A new page is forced when the remaining space
// is below the threshold so the signature anchor keeps some trailing
// context on the same page. The blocks themselves are never split: free
// text long enough to exceed a full page runs past the bottom margin.
func (e *Engine) drawSummary(s *sheet, r *models.Report) {
	if bottomLimit-s.y < summaryBreakMin {
		s.breakPage()
	}

	title := "RESUMO / CONCLUSÕES"
	if r.TypeKey == models.TplInterventionGeneral {
		title = "RELATÓRIO DA INTERVENÇÃO"
	}
	s.text(margin, s.y+4, title, "B", 10, colText, AlignLeft)
	s.y += 9

	summary := r.Summary
	if summary == "" {
		summary = "Sem observações."
	}
	s.y = s.textBlock(margin, s.y, contentW, summary, 9, colText)
	s.y += 8

	if r.ClientObservations != "" {
		s.text(margin, s.y+4, "OBSERVAÇÕES DO CLIENTE", "B", 10, colText, AlignLeft)
		s.y += 9
		s.y = s.textBlock(margin, s.y, contentW, r.ClientObservations, 9, colText)
		s.y += 8
	}
}

// drawSignatureBlock anchors the two signature regions a fixed distance from
// the page bottom, forcing a page break first when flowed content already
// reached the reserved zone. The boxed variant draws the signature images;
// the simplified variant (order sheet) draws only the rule lines and names.
func (e *Engine) drawSignatureBlock(s *sheet, r *models.Report, boxed bool) {
	sigTop := pageH - footerReserveH
	if s.y > sigTop-sigPad {
		s.breakPage()
	}

	type region struct {
		x       float64
		role    string
		image   string
		name    string
		caption string
	}
	regions := []region{
		{margin, "TÉCNICO RESPONSÁVEL", r.AuditorSignature, r.AuditorSignerName, "(Assinatura do Técnico)"},
		{col2X, "RESPONSÁVEL CLIENTE", r.ClientSignature, r.ClientSignerName, "(Assinatura do Cliente)"},
	}

	for _, reg := range regions {
		if boxed {
			s.rect(reg.x-3, sigTop-6, 80, 40, colBorder, false)
		}
		s.text(reg.x, sigTop, reg.role, "B", 8, colText, AlignLeft)
		if boxed && reg.image != "" {
			s.image(reg.image, reg.x, sigTop+2, sigImgW, sigImgH)
		}
		s.line(reg.x, sigTop+23, reg.x+70, sigTop+23, colText)
		s.text(reg.x, sigTop+28, reg.name, "", 9, colText, AlignLeft)
		s.text(reg.x, sigTop+32, reg.caption, "", 7, colMuted, AlignLeft)
	}
}

// stampFooters is the second render phase: once the page count is final it
// walks every page and appends the centered page caption. Interleaving this
// with content layout is impossible because the total is unknown until the
// last block lands.
func stampFooters(d *Document) {
	n := d.PageCount()
	for i, p := range d.Pages {
		p.Ops = append(p.Ops, Op{
			Kind:  OpText,
			X:     pageW / 2,
			Y:     footerY,
			Text:  fmt.Sprintf("Gerado por AuditPro 360 - Página %d/%d", i+1, n),
			Align: AlignCenter,
			Size:  8,
			Color: colMuted,
		})
	}
}
