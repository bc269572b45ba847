package report

import (
	"testing"

	"auditpro-backend/models"
)

func TestChecklistSeedsUnsetItems(t *testing.T) {
	tpl, ok := models.TemplateByKey(models.TplAuditHACCP)
	if !ok {
		t.Fatal("missing haccp template")
	}

	c := NewChecklistFromTemplate(tpl)
	if c.Len() != len(tpl.DefaultCriteria) {
		t.Fatalf("seeded %d items, template has %d labels", c.Len(), len(tpl.DefaultCriteria))
	}
	for i, item := range c.Items() {
		if item.Status != models.StatusUnset {
			t.Errorf("item %d seeded with status %q, want unset", i, item.Status)
		}
		if item.Notes != "" {
			t.Errorf("item %d seeded with notes %q, want empty", i, item.Notes)
		}
		if item.Label != tpl.DefaultCriteria[i] {
			t.Errorf("item %d label = %q, want %q", i, item.Label, tpl.DefaultCriteria[i])
		}
	}
}

func TestChecklistEmptyTemplate(t *testing.T) {
	tpl, ok := models.TemplateByKey(models.TplInterventionGeneral)
	if !ok {
		t.Fatal("missing general intervention template")
	}
	c := NewChecklistFromTemplate(tpl)
	if c.Len() != 0 {
		t.Fatalf("general intervention checklist has %d items, want 0", c.Len())
	}
}

func TestChecklistSetStatusAndNotes(t *testing.T) {
	tpl, _ := models.TemplateByKey(models.TplAuditHACCP)
	c := NewChecklistFromTemplate(tpl)

	c.SetStatus("crit-0", models.StatusPass)
	c.SetStatus("crit-1", models.StatusFail)
	c.SetNotes("crit-1", "Câmara frigorífica a 9ºC")

	items := c.Items()
	if items[0].Status != models.StatusPass {
		t.Errorf("crit-0 status = %q, want pass", items[0].Status)
	}
	if items[1].Status != models.StatusFail || items[1].Notes != "Câmara frigorífica a 9ºC" {
		t.Errorf("crit-1 = %+v", items[1])
	}
	// Every other item may stay unset indefinitely.
	if items[2].Status != models.StatusUnset {
		t.Errorf("crit-2 status = %q, want unset", items[2].Status)
	}
}

func TestChecklistUnknownIdIgnored(t *testing.T) {
	tpl, _ := models.TemplateByKey(models.TplAuditHACCP)
	c := NewChecklistFromTemplate(tpl)

	c.SetStatus("crit-999", models.StatusPass)
	c.SetNotes("nope", "x")
	for i, item := range c.Items() {
		if item.Status != models.StatusUnset || item.Notes != "" {
			t.Errorf("item %d mutated by unknown id: %+v", i, item)
		}
	}
}

func TestChecklistReadOnlyIgnoresMutations(t *testing.T) {
	c := NewChecklistFromItems([]models.AuditCriteria{
		{Id: "crit-0", Label: "Zonas de armazenamento limpas", Status: models.StatusPass, Notes: "ok"},
	}, true)

	c.SetStatus("crit-0", models.StatusFail)
	c.SetNotes("crit-0", "alterado")

	got := c.Items()[0]
	if got.Status != models.StatusPass || got.Notes != "ok" {
		t.Errorf("read-only checklist mutated: %+v", got)
	}
}

func TestChecklistItemsReturnsCopy(t *testing.T) {
	tpl, _ := models.TemplateByKey(models.TplAuditHACCP)
	c := NewChecklistFromTemplate(tpl)

	items := c.Items()
	items[0].Status = models.StatusFail
	if c.Items()[0].Status != models.StatusUnset {
		t.Error("mutating the returned slice leaked into the checklist")
	}
}
