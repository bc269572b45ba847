package report

import (
	"math"
	"testing"

	"auditpro-backend/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLedgerAddItemDefaults(t *testing.T) {
	l := NewLedger()
	item := l.AddItem()

	if item.Quantity != 1 || item.UnitPrice != 0 || item.DiscountPercent != 0 || item.LineTotal != 0 {
		t.Fatalf("unexpected defaults: %+v", item)
	}
	if l.Len() != 1 {
		t.Fatalf("expected 1 item, got %d", l.Len())
	}
}

func TestLedgerLineTotals(t *testing.T) {
	l := NewLedger()
	a := l.AddItem()
	b := l.AddItem()
	c := l.AddItem()

	// 2 x 10.00 at 10% -> 18.00
	l.UpdateItem(a.Id, FieldQuantity, "2")
	l.UpdateItem(a.Id, FieldUnitPrice, "10.00")
	l.UpdateItem(a.Id, FieldDiscount, "10")

	// 1 x 5.00 at 0% -> 5.00
	l.UpdateItem(b.Id, FieldUnitPrice, "5.00")

	// 4 x 2.50 at 50% -> 5.00
	l.UpdateItem(c.Id, FieldQuantity, "4")
	l.UpdateItem(c.Id, FieldUnitPrice, "2.50")
	l.UpdateItem(c.Id, FieldDiscount, "50")

	items := l.Items()
	want := []float64{18.00, 5.00, 5.00}
	for i, w := range want {
		if !almostEqual(items[i].LineTotal, w) {
			t.Errorf("item %d: line total = %v, want %v", i, items[i].LineTotal, w)
		}
	}
	if !almostEqual(l.Total(), 28.00) {
		t.Errorf("total = %v, want 28.00", l.Total())
	}

	var sum float64
	for _, it := range items {
		sum += it.LineTotal
	}
	if !almostEqual(l.Total(), sum) {
		t.Errorf("total %v != sum of line totals %v", l.Total(), sum)
	}
}

func TestLedgerIdempotentRecompute(t *testing.T) {
	l := NewLedger()
	item := l.AddItem()
	l.UpdateItem(item.Id, FieldQuantity, "3")
	l.UpdateItem(item.Id, FieldUnitPrice, "7.50")

	first := l.Total()
	l.UpdateItem(item.Id, FieldQuantity, "3")
	l.UpdateItem(item.Id, FieldUnitPrice, "7.50")
	if l.Total() != first {
		t.Errorf("total changed on identical update: %v -> %v", first, l.Total())
	}
}

func TestLedgerCoercesBadInputToZero(t *testing.T) {
	l := NewLedger()
	item := l.AddItem()
	l.UpdateItem(item.Id, FieldUnitPrice, "9.99")

	l.UpdateItem(item.Id, FieldQuantity, "abc")
	if got := l.Items()[0].Quantity; got != 0 {
		t.Errorf("unparseable quantity = %v, want 0", got)
	}
	l.UpdateItem(item.Id, FieldUnitPrice, "")
	if got := l.Items()[0].UnitPrice; got != 0 {
		t.Errorf("empty unit price = %v, want 0", got)
	}
	if l.Total() != 0 {
		t.Errorf("total = %v, want 0", l.Total())
	}
}

func TestLedgerDiscountNotClamped(t *testing.T) {
	l := NewLedger()
	item := l.AddItem()
	l.UpdateItem(item.Id, FieldUnitPrice, "10")
	l.UpdateItem(item.Id, FieldDiscount, "150")

	if got := l.Items()[0].LineTotal; !almostEqual(got, -5.00) {
		t.Errorf("line total with 150%% discount = %v, want -5.00", got)
	}
}

func TestLedgerRemoveItem(t *testing.T) {
	l := NewLedger()
	a := l.AddItem()
	b := l.AddItem()
	l.UpdateItem(b.Id, FieldUnitPrice, "4")

	l.RemoveItem(a.Id)
	if l.Len() != 1 {
		t.Fatalf("expected 1 item after removal, got %d", l.Len())
	}
	if !almostEqual(l.Total(), 4.00) {
		t.Errorf("total after removal = %v, want 4.00", l.Total())
	}
}

func TestLedgerReadOnlyIgnoresMutations(t *testing.T) {
	l := NewLedgerFromOrder(&models.Order{
		Items: []models.OrderItem{{Id: "item-0", Quantity: 1, UnitPrice: 10}},
	}, true)

	l.AddItem()
	l.UpdateItem("item-0", FieldUnitPrice, "99")
	l.RemoveItem("item-0")

	if l.Len() != 1 {
		t.Fatalf("read-only ledger mutated: %d items", l.Len())
	}
	if got := l.Items()[0].UnitPrice; got != 10 {
		t.Errorf("read-only ledger price mutated: %v", got)
	}
}

func TestLedgerOrderMaterialization(t *testing.T) {
	l := NewLedger()
	if l.Order() != nil {
		t.Fatal("empty ledger must materialize no order")
	}

	item := l.AddItem()
	l.UpdateItem(item.Id, FieldProductName, "Cloro granulado 5kg")
	l.UpdateItem(item.Id, FieldQuantity, "2")
	l.UpdateItem(item.Id, FieldUnitPrice, "10")
	l.SetDeliveryConditions("Entrega em 48h")

	o := l.Order()
	if o == nil {
		t.Fatal("expected an order")
	}
	if !almostEqual(o.TotalValue, 20.00) {
		t.Errorf("order total = %v, want 20.00", o.TotalValue)
	}
	if o.DeliveryConditions != "Entrega em 48h" {
		t.Errorf("delivery conditions = %q", o.DeliveryConditions)
	}
}

func TestLedgerRehydrateKeepsIdsUnique(t *testing.T) {
	// A stored list that had a removal carries an id gap; a line added after
	// reload must not collide with a survivor, or later updates and removals
	// would address the wrong line.
	l := NewLedger()
	l.AddItem() // item-0
	l.AddItem() // item-1
	l.AddItem() // item-2
	l.RemoveItem("item-0")

	loaded := NewLedgerFromOrder(l.Order(), false)
	added := loaded.AddItem()

	seen := map[string]bool{}
	for _, it := range loaded.Items() {
		if seen[it.Id] {
			t.Fatalf("duplicate item id %q after rehydrate", it.Id)
		}
		seen[it.Id] = true
	}

	loaded.UpdateItem(added.Id, FieldUnitPrice, "7")
	for _, it := range loaded.Items() {
		if it.Id != added.Id && it.UnitPrice == 7 {
			t.Errorf("update of %q leaked into %q", added.Id, it.Id)
		}
	}
}

func TestLedgerRehydrateRecomputesLineTotals(t *testing.T) {
	// A stored blob with a stale line total must be corrected on load; the
	// persisted figure is never a source of truth.
	l := NewLedgerFromOrder(&models.Order{
		Items: []models.OrderItem{{Id: "item-0", Quantity: 2, UnitPrice: 10, DiscountPercent: 10, LineTotal: 999}},
	}, false)

	if got := l.Items()[0].LineTotal; !almostEqual(got, 18.00) {
		t.Errorf("rehydrated line total = %v, want 18.00", got)
	}
}
