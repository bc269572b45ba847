package report

import (
	"fmt"

	"auditpro-backend/models"
)

// Checklist holds the pass/fail/NA grid of a report while it is being
// filled in. Mutations are silently ignored in read-only mode (view mode of
// an already finalized report); mutability is a presentation concern, not a
// stored property of the items.
type Checklist struct {
	items    []models.AuditCriteria
	readOnly bool
}

// NewChecklistFromTemplate seeds one unset item per template label. Ids are
// positional and stable for the lifetime of the report.
func NewChecklistFromTemplate(tpl models.ReportTemplate) *Checklist {
	items := make([]models.AuditCriteria, 0, len(tpl.DefaultCriteria))
	for i, label := range tpl.DefaultCriteria {
		items = append(items, models.AuditCriteria{
			Id:     fmt.Sprintf("crit-%d", i),
			Label:  label,
			Status: models.StatusUnset,
			Notes:  "",
		})
	}
	return &Checklist{items: items}
}

// NewChecklistFromItems wraps an existing criteria list, e.g. when opening a
// stored report for viewing or admin editing.
func NewChecklistFromItems(items []models.AuditCriteria, readOnly bool) *Checklist {
	copied := make([]models.AuditCriteria, len(items))
	copy(copied, items)
	return &Checklist{items: copied, readOnly: readOnly}
}

func (c *Checklist) SetReadOnly(ro bool) { c.readOnly = ro }

func (c *Checklist) ReadOnly() bool { return c.readOnly }

// SetStatus updates one item's evaluation. No-op when read-only or when the
// id is unknown; every item may independently stay unset.
func (c *Checklist) SetStatus(id string, status models.CriteriaStatus) {
	if c.readOnly {
		return
	}
	for i := range c.items {
		if c.items[i].Id == id {
			c.items[i].Status = status
			return
		}
	}
}

// SetNotes updates one item's freeform notes. No-op when read-only.
func (c *Checklist) SetNotes(id, notes string) {
	if c.readOnly {
		return
	}
	for i := range c.items {
		if c.items[i].Id == id {
			c.items[i].Notes = notes
			return
		}
	}
}

// Items returns a copy of the current grid.
func (c *Checklist) Items() []models.AuditCriteria {
	out := make([]models.AuditCriteria, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Checklist) Len() int { return len(c.items) }
