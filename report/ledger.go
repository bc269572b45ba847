package report

import (
	"fmt"
	"strconv"
	"strings"

	"auditpro-backend/models"
	"auditpro-backend/utils"
)

// ItemField names a mutable column of an order line.
type ItemField string

const (
	FieldProductName ItemField = "product_name"
	FieldQuantity    ItemField = "quantity"
	FieldUnitPrice   ItemField = "unit_price"
	FieldDiscount    ItemField = "discount_percent"
)

// Ledger maintains the line items of the optional sales order attached to a
// commercial-visit report. Numeric input arrives as raw text from the form
// and is coerced, never rejected: an empty or unparseable value becomes 0.
// The discount is deliberately not clamped to [0,100]; the UI hints the
// range but the ledger accepts whatever was typed.
type Ledger struct {
	items              []models.OrderItem
	deliveryConditions string
	observations       string
	readOnly           bool
	seq                int
}

func NewLedger() *Ledger { return &Ledger{} }

// NewLedgerFromOrder rehydrates a ledger from a stored order blob. The id
// counter resumes past the highest suffix present, not at the item count: a
// list that ever had a removal carries gaps, and a fresh line must never
// reuse a surviving id.
func NewLedgerFromOrder(o *models.Order, readOnly bool) *Ledger {
	l := &Ledger{readOnly: readOnly}
	if o == nil {
		return l
	}
	l.items = make([]models.OrderItem, len(o.Items))
	copy(l.items, o.Items)
	l.deliveryConditions = o.DeliveryConditions
	l.observations = o.Observations
	l.seq = len(o.Items)
	for i := range l.items {
		if rest, ok := strings.CutPrefix(l.items[i].Id, "item-"); ok {
			if n, err := strconv.Atoi(rest); err == nil && n >= l.seq {
				l.seq = n + 1
			}
		}
		l.recompute(i)
	}
	return l
}

func (l *Ledger) SetReadOnly(ro bool) { l.readOnly = ro }

// AddItem appends a fresh zero-valued line (quantity 1, price 0, discount 0)
// and returns it. Returns a zero item in read-only mode.
func (l *Ledger) AddItem() models.OrderItem {
	if l.readOnly {
		return models.OrderItem{}
	}
	item := models.OrderItem{
		Id:       fmt.Sprintf("item-%d", l.seq),
		Quantity: 1,
	}
	l.seq++
	l.items = append(l.items, item)
	return item
}

// UpdateItem applies one raw form value to one field of one line and
// recomputes that line's total. Unknown ids and fields are ignored.
func (l *Ledger) UpdateItem(id string, field ItemField, raw string) {
	if l.readOnly {
		return
	}
	for i := range l.items {
		if l.items[i].Id != id {
			continue
		}
		switch field {
		case FieldProductName:
			l.items[i].ProductName = raw
		case FieldQuantity:
			l.items[i].Quantity = coerceNumber(raw)
		case FieldUnitPrice:
			l.items[i].UnitPrice = coerceNumber(raw)
		case FieldDiscount:
			l.items[i].DiscountPercent = coerceNumber(raw)
		}
		l.recompute(i)
		return
	}
}

// RemoveItem deletes a line. Remaining ids are untouched.
func (l *Ledger) RemoveItem(id string) {
	if l.readOnly {
		return
	}
	for i := range l.items {
		if l.items[i].Id == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

func (l *Ledger) SetDeliveryConditions(s string) {
	if !l.readOnly {
		l.deliveryConditions = s
	}
}

func (l *Ledger) SetObservations(s string) {
	if !l.readOnly {
		l.observations = s
	}
}

// Total sums the current line totals. It is recomputed from the items on
// every call; no independently cached aggregate exists.
func (l *Ledger) Total() float64 {
	var sum float64
	for i := range l.items {
		sum += l.items[i].LineTotal
	}
	return utils.Round2(sum)
}

// Items returns a copy of the current lines.
func (l *Ledger) Items() []models.OrderItem {
	out := make([]models.OrderItem, len(l.items))
	copy(out, l.items)
	return out
}

func (l *Ledger) Len() int { return len(l.items) }

// Order materializes the ledger as an order blob, or nil when no line was
// ever added. TotalValue is derived here and overwritten on every call.
func (l *Ledger) Order() *models.Order {
	if len(l.items) == 0 {
		return nil
	}
	return &models.Order{
		Items:              l.Items(),
		DeliveryConditions: l.deliveryConditions,
		Observations:       l.observations,
		TotalValue:         l.Total(),
	}
}

func (l *Ledger) recompute(i int) {
	item := &l.items[i]
	item.LineTotal = utils.Round2(item.Quantity * item.UnitPrice * (1 - item.DiscountPercent/100))
}

// coerceNumber parses a form value, treating anything unparseable as 0.
// Field entry must never fail on bad input.
func coerceNumber(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}
