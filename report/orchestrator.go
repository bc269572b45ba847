package report

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"auditpro-backend/config"
	"auditpro-backend/models"
	"auditpro-backend/pdf"
)

// Mode selects how an assembled report is being worked on. It propagates to
// the checklist and ledger as their read-only flag and to every form field.
type Mode int

const (
	// ModeCreate builds a brand-new report (Draft -> Finalized).
	ModeCreate Mode = iota
	// ModeEdit mutates an already finalized report; admin only, enforced at
	// the route layer. GPS capture and the finalize prompt never re-trigger.
	ModeEdit
	// ModeView is read-only; exports stay available, saving does not.
	ModeView
)

func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeEdit:
		return "edit"
	case ModeView:
		return "view"
	}
	return "unknown"
}

func (m Mode) ReadOnly() bool { return m == ModeView }

// ErrViewOnly is returned when a save is attempted in view mode.
var ErrViewOnly = errors.New("report is open in view mode, no save action available")

// Store persists report records. The REST layer provides the real one.
type Store interface {
	SaveReport(ctx context.Context, r *models.Report) error
}

// Orchestrator coordinates the save/view/edit lifecycle of one report and
// dispatches to the layout engine for the export actions. Exports are
// available in every mode and never require signatures; only finalize does.
type Orchestrator struct {
	mode     Mode
	store    Store
	engine   *pdf.Engine
	log      *logrus.Logger
	client   models.Client
	settings models.CompanySettings

	report    *models.Report
	checklist *Checklist
	ledger    *Ledger
}

func NewOrchestrator(mode Mode, store Store, client models.Client, settings models.CompanySettings) *Orchestrator {
	return &Orchestrator{
		mode:     mode,
		store:    store,
		engine:   pdf.NewEngine(),
		log:      config.GetLogger(),
		client:   client,
		settings: settings,
	}
}

// OpenNew starts a fresh report of the given type: checklist seeded from the
// template, empty ledger.
func (o *Orchestrator) OpenNew(tpl models.ReportTemplate) {
	o.report = nil
	o.checklist = NewChecklistFromTemplate(tpl)
	o.ledger = NewLedger()
	o.checklist.SetReadOnly(o.mode.ReadOnly())
	o.ledger.SetReadOnly(o.mode.ReadOnly())
}

// Open loads a stored report for viewing or editing.
func (o *Orchestrator) Open(r *models.Report) {
	o.report = r
	o.checklist = NewChecklistFromItems(r.Criteria, o.mode.ReadOnly())
	o.ledger = NewLedgerFromOrder(r.SalesOrder(), o.mode.ReadOnly())
}

func (o *Orchestrator) Mode() Mode              { return o.mode }
func (o *Orchestrator) Checklist() *Checklist   { return o.checklist }
func (o *Orchestrator) Ledger() *Ledger         { return o.ledger }
func (o *Orchestrator) Current() *models.Report { return o.report }

// Save adopts r as the current state and persists it. The local state is
// updated before the store call and deliberately kept when persistence
// fails: the failure is logged, not surfaced, and no rollback happens. This
// optimistic gap is the documented behavior of the field tool, not a bug.
func (o *Orchestrator) Save(ctx context.Context, r *models.Report) error {
	if o.mode == ModeView {
		return ErrViewOnly
	}
	o.report = r
	if o.store == nil {
		return nil
	}
	if err := o.store.SaveReport(ctx, r); err != nil {
		o.log.WithFields(logrus.Fields{
			"module": "report",
			"report": r.Id,
		}).Warnf("persist failed, keeping local state: %v", err)
	}
	return nil
}

// ExportReportPDF renders the full report and returns the download filename
// with the PDF bytes.
func (o *Orchestrator) ExportReportPDF() (string, []byte, error) {
	if o.report == nil {
		return "", nil, errors.New("no report open")
	}
	doc := o.engine.RenderFullReport(o.report, o.client, o.settings)
	data, err := pdf.Write(doc)
	if err != nil {
		return "", nil, err
	}
	return ReportFilename(o.report.ClientName, o.report.Date), data, nil
}

// ExportOrderPDF renders the standalone order sheet.
func (o *Orchestrator) ExportOrderPDF() (string, []byte, error) {
	if o.report == nil {
		return "", nil, errors.New("no report open")
	}
	doc := o.engine.RenderOrderOnly(o.report, o.client, o.settings)
	data, err := pdf.Write(doc)
	if err != nil {
		return "", nil, err
	}
	return OrderFilename(o.report.ClientName, o.report.Date), data, nil
}

// EmailIntent composes the mailto URL for sending the report to the client,
// plus the rendered PDF the user attaches manually (the intent cannot carry
// an attachment itself).
func (o *Orchestrator) EmailIntent() (string, string, []byte, error) {
	filename, data, err := o.ExportReportPDF()
	if err != nil {
		return "", "", nil, err
	}
	subject := "Relatório de Intervenção - " + o.client.Name
	body := fmt.Sprintf("Segue em anexo o relatório da intervenção realizada dia %s.\n\nCumprimentos,\n%s",
		o.report.Date, o.settings.Name)
	mailto := fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		o.client.Email, escapeMailto(subject), escapeMailto(body))
	return mailto, filename, data, nil
}

// escapeMailto percent-encodes a header value; mailto URLs want %20, not +.
func escapeMailto(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// sanitizeClientName collapses whitespace runs to single underscores for use
// in download filenames.
func sanitizeClientName(name string) string {
	return strings.Join(strings.Fields(name), "_")
}

// ReportFilename is the download name for a full report PDF.
func ReportFilename(clientName, date string) string {
	return fmt.Sprintf("Relatorio_%s_%s.pdf", sanitizeClientName(clientName), date)
}

// OrderFilename is the download name for an order-only PDF.
func OrderFilename(clientName, date string) string {
	return fmt.Sprintf("Encomenda_%s_%s.pdf", sanitizeClientName(clientName), date)
}
