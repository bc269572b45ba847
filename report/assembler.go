package report

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"auditpro-backend/config"
	"auditpro-backend/models"
)

// Action is what the user asked for when the form was submitted. Only the
// finalize action validates signatures; PDF/email previews of unsaved work
// are always allowed.
type Action string

const (
	ActionFinalize Action = "finalize"
	ActionPDF      Action = "pdf"
	ActionEmail    Action = "email"
)

// Locator acquires a device position. Implementations are best-effort: a
// request that never resolves simply never resolves, and finalize proceeds
// without a location.
type Locator interface {
	Locate(ctx context.Context) (models.GeoPoint, error)
}

// FormState carries the scalar form fields of the report screen.
type FormState struct {
	Client   models.Client
	Auditor  models.User
	Template models.ReportTemplate

	Date           string
	StartTime      string
	EndTime        string
	ContractNumber string
	RouteNumber    string

	Summary            string
	ClientObservations string
}

// Signatures carries the signer names and the signature pad images (base64
// data URIs, empty when not drawn).
type Signatures struct {
	AuditorName  string
	AuditorImage string
	ClientName   string
	ClientImage  string
}

// ValidationError blocks the save action with a user-facing message; the
// form state is preserved for correction.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Assembler builds the structured report record from form state, checklist,
// ledger and signatures, validating the finalize transition.
type Assembler struct {
	locator Locator
	log     *logrus.Logger
}

func NewAssembler(locator Locator) *Assembler {
	return &Assembler{locator: locator, log: config.GetLogger()}
}

// Build produces the report record for the requested action. prior is the
// stored report when editing, nil for a brand-new one.
//
// On the finalize path both signer names must be non-empty and, unless the
// template is the commercial-visit type, both signature images must be
// present; a violation returns a ValidationError and no report. GPS capture
// is attempted once, only on the first finalize of a new report, and its
// failure is non-fatal.
func (a *Assembler) Build(ctx context.Context, action Action, form FormState, checklist *Checklist, ledger *Ledger, sigs Signatures, prior *models.Report) (*models.Report, error) {
	if action == ActionFinalize {
		if strings.TrimSpace(sigs.AuditorName) == "" || strings.TrimSpace(sigs.ClientName) == "" {
			return nil, &ValidationError{Message: "Os nomes dos signatários são obrigatórios."}
		}
		if form.Template.RequiresSignatures() && (sigs.AuditorImage == "" || sigs.ClientImage == "") {
			return nil, &ValidationError{Message: "Ambas as assinaturas são obrigatórias."}
		}
	}

	r := &models.Report{
		ClientID:           form.Client.Id,
		ClientName:         form.Client.Name,
		ClientShopName:     form.Client.ShopName,
		AuditorID:          form.Auditor.Id,
		AuditorName:        form.Auditor.Name,
		Date:               form.Date,
		StartTime:          form.StartTime,
		EndTime:            form.EndTime,
		ContractNumber:     form.ContractNumber,
		RouteNumber:        form.RouteNumber,
		TypeKey:            form.Template.Key,
		TypeName:           form.Template.Label,
		Summary:            form.Summary,
		ClientObservations: form.ClientObservations,
		AuditorSignerName:  sigs.AuditorName,
		AuditorSignature:   sigs.AuditorImage,
		ClientSignerName:   sigs.ClientName,
		ClientSignature:    sigs.ClientImage,
		Status:             models.ReportDraft,
	}

	if prior != nil {
		r.Id = prior.Id
		r.Status = prior.Status
		r.SetLocation(prior.Location())
	} else {
		r.Id = "r-" + uuid.NewString()
	}

	if checklist != nil {
		r.Criteria = checklist.Items()
	}
	if ledger != nil {
		r.SetSalesOrder(ledger.Order())
	}

	if action == ActionFinalize {
		r.Status = models.ReportFinalized
		// A single best-effort capture for brand-new reports; an edit of an
		// already stamped report never re-captures.
		if prior == nil && a.locator != nil {
			if p, err := a.locator.Locate(ctx); err != nil {
				a.log.WithFields(logrus.Fields{
					"module": "report",
					"report": r.Id,
				}).Warnf("gps capture failed: %v", err)
			} else {
				r.SetLocation(&p)
			}
		}
	}

	return r, nil
}
