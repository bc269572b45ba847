package report

import (
	"context"
	"errors"
	"testing"

	"auditpro-backend/models"
)

type fakeLocator struct {
	point models.GeoPoint
	err   error
	calls int
}

func (f *fakeLocator) Locate(ctx context.Context) (models.GeoPoint, error) {
	f.calls++
	return f.point, f.err
}

func testForm(key models.TemplateKey) FormState {
	tpl, _ := models.TemplateByKey(key)
	return FormState{
		Client:   models.Client{Id: "c-1", Name: "Restaurante O Marisco", ShopName: "O Marisco"},
		Auditor:  models.User{Id: "u-1", Name: "Carlos Mendes"},
		Template: tpl,
		Date:     "2026-08-28",
		Summary:  "Tudo conforme.",
	}
}

func fullSigs() Signatures {
	return Signatures{
		AuditorName:  "Carlos Mendes",
		AuditorImage: "data:image/png;base64,AAAA",
		ClientName:   "Maria Santos",
		ClientImage:  "data:image/png;base64,BBBB",
	}
}

func TestFinalizeRequiresSignerNames(t *testing.T) {
	a := NewAssembler(nil)
	sigs := fullSigs()
	sigs.ClientName = "  "

	r, err := a.Build(context.Background(), ActionFinalize, testForm(models.TplAuditHACCP), nil, nil, sigs, nil)
	if r != nil {
		t.Fatal("expected no report on validation failure")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Message != "Os nomes dos signatários são obrigatórios." {
		t.Errorf("unexpected message %q", ve.Message)
	}
}

func TestFinalizeRequiresBothSignatureImages(t *testing.T) {
	a := NewAssembler(nil)
	sigs := fullSigs()
	sigs.ClientImage = ""

	r, err := a.Build(context.Background(), ActionFinalize, testForm(models.TplAuditHACCP), nil, nil, sigs, nil)
	if r != nil {
		t.Fatal("expected no report when a signature image is missing")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Message != "Ambas as assinaturas são obrigatórias." {
		t.Errorf("unexpected message %q", ve.Message)
	}
}

func TestCommercialVisitFinalizesWithoutImages(t *testing.T) {
	a := NewAssembler(nil)
	sigs := Signatures{AuditorName: "Carlos Mendes", ClientName: "Maria Santos"}

	r, err := a.Build(context.Background(), ActionFinalize, testForm(models.TplVisitComercial), nil, nil, sigs, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Status != models.ReportFinalized {
		t.Errorf("status = %q, want finalized", r.Status)
	}
}

func TestCommercialVisitStillRequiresNames(t *testing.T) {
	a := NewAssembler(nil)
	sigs := Signatures{AuditorName: "Carlos Mendes"}

	_, err := a.Build(context.Background(), ActionFinalize, testForm(models.TplVisitComercial), nil, nil, sigs, nil)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestPreviewActionsSkipValidation(t *testing.T) {
	a := NewAssembler(nil)
	for _, action := range []Action{ActionPDF, ActionEmail} {
		r, err := a.Build(context.Background(), action, testForm(models.TplAuditHACCP), nil, nil, Signatures{}, nil)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", action, err)
		}
		if r.Status != models.ReportDraft {
			t.Errorf("%s: status = %q, want draft", action, r.Status)
		}
	}
}

func TestFinalizeCapturesGPSOnce(t *testing.T) {
	loc := &fakeLocator{point: models.GeoPoint{Lat: 38.7223, Lng: -9.1393}}
	a := NewAssembler(loc)

	r, err := a.Build(context.Background(), ActionFinalize, testForm(models.TplAuditHACCP), nil, nil, fullSigs(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := r.Location()
	if p == nil || p.Lat != 38.7223 || p.Lng != -9.1393 {
		t.Fatalf("location = %+v, want stamped point", p)
	}
	if loc.calls != 1 {
		t.Errorf("locator called %d times, want 1", loc.calls)
	}

	// Re-finalizing an existing report never re-captures; the original stamp
	// is preserved.
	loc2 := &fakeLocator{point: models.GeoPoint{Lat: 0, Lng: 0}}
	a2 := NewAssembler(loc2)
	r2, err := a2.Build(context.Background(), ActionFinalize, testForm(models.TplAuditHACCP), nil, nil, fullSigs(), r)
	if err != nil {
		t.Fatalf("unexpected error on edit: %v", err)
	}
	if loc2.calls != 0 {
		t.Errorf("locator called %d times on edit, want 0", loc2.calls)
	}
	p2 := r2.Location()
	if p2 == nil || p2.Lat != 38.7223 {
		t.Errorf("edit lost prior location: %+v", p2)
	}
	if r2.Id != r.Id {
		t.Errorf("edit changed id %q -> %q", r.Id, r2.Id)
	}
}

func TestFinalizeSurvivesGPSFailure(t *testing.T) {
	loc := &fakeLocator{err: errors.New("timeout")}
	a := NewAssembler(loc)

	r, err := a.Build(context.Background(), ActionFinalize, testForm(models.TplAuditHACCP), nil, nil, fullSigs(), nil)
	if err != nil {
		t.Fatalf("gps failure must not block finalize: %v", err)
	}
	if r.Location() != nil {
		t.Errorf("location = %+v, want nil", r.Location())
	}
	if r.Status != models.ReportFinalized {
		t.Errorf("status = %q, want finalized", r.Status)
	}
}

func TestBuildAttachesChecklistAndOrder(t *testing.T) {
	a := NewAssembler(nil)

	tpl, _ := models.TemplateByKey(models.TplVisitComercial)
	checklist := NewChecklistFromTemplate(tpl)
	ledger := NewLedger()
	item := ledger.AddItem()
	ledger.UpdateItem(item.Id, FieldProductName, "Detergente industrial")
	ledger.UpdateItem(item.Id, FieldUnitPrice, "12.50")

	r, err := a.Build(context.Background(), ActionPDF, testForm(models.TplVisitComercial), checklist, ledger, Signatures{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Criteria) != checklist.Len() {
		t.Errorf("criteria count = %d, want %d", len(r.Criteria), checklist.Len())
	}
	o := r.SalesOrder()
	if o == nil || len(o.Items) != 1 || o.TotalValue != 12.50 {
		t.Errorf("sales order = %+v", o)
	}

	// An empty ledger attaches no order at all.
	r2, _ := a.Build(context.Background(), ActionPDF, testForm(models.TplVisitComercial), checklist, NewLedger(), Signatures{}, nil)
	if r2.SalesOrder() != nil {
		t.Error("empty ledger must not attach an order")
	}
}
