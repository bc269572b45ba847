// Package pdf turns a structured visit report into a paginated, print-ready
// document. Rendering is two-phase: the layout engine emits a
// library-independent instruction Document (pages of draw ops, mm
// coordinates, A4 portrait), and the writer replays it onto the drawing
// library. Footer numbering is stamped over the finished Document once the
// page count is final.
package pdf

type OpKind int

const (
	OpText OpKind = iota
	OpRect
	OpLine
	OpImage
)

type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

type RGB struct {
	R, G, B int
}

// Op is one draw instruction. Which fields are meaningful depends on Kind:
// text uses X/Y (baseline), Text, Align, Style, Size, Color; rect uses
// X/Y/W/H plus Fill/Filled or Color for the stroke; line uses X/Y..X2/Y2;
// image uses X/Y/W/H and the Image data URI (stretched, never
// aspect-corrected).
type Op struct {
	Kind OpKind

	X, Y   float64
	W, H   float64
	X2, Y2 float64

	Text  string
	Align Align
	Style string // font style: "" regular, "B" bold
	Size  float64

	Color  RGB
	Fill   RGB
	Filled bool

	Image string
}

type Page struct {
	Ops []Op
}

// Texts returns the page's text op contents in draw order.
func (p *Page) Texts() []string {
	var out []string
	for _, op := range p.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Contains reports whether any text op on the page equals s.
func (p *Page) Contains(s string) bool {
	for _, op := range p.Ops {
		if op.Kind == OpText && op.Text == s {
			return true
		}
	}
	return false
}

type Document struct {
	Pages []*Page
}

func (d *Document) PageCount() int { return len(d.Pages) }

func (d *Document) addPage() *Page {
	p := &Page{}
	d.Pages = append(d.Pages, p)
	return p
}
