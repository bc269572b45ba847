package pdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/sirupsen/logrus"

	"auditpro-backend/config"
)

// Write replays a layout Document onto the drawing library and returns the
// finished PDF bytes. A malformed image op is skipped with a warning and
// never aborts the render; only the library itself failing to produce
// output is an error.
func Write(doc *Document) ([]byte, error) {
	log := config.GetLogger()

	f := fpdf.New("P", "mm", "A4", "")
	f.SetAutoPageBreak(false, 0)
	tr := f.UnicodeTranslatorFromDescriptor("")

	imgSeq := 0
	for _, page := range doc.Pages {
		f.AddPage()
		for _, op := range page.Ops {
			switch op.Kind {
			case OpText:
				f.SetFont("Helvetica", op.Style, op.Size)
				f.SetTextColor(op.Color.R, op.Color.G, op.Color.B)
				txt := tr(op.Text)
				x := op.X
				switch op.Align {
				case AlignCenter:
					x -= f.GetStringWidth(txt) / 2
				case AlignRight:
					x -= f.GetStringWidth(txt)
				}
				f.Text(x, op.Y, txt)

			case OpRect:
				if op.Filled {
					f.SetFillColor(op.Fill.R, op.Fill.G, op.Fill.B)
					f.Rect(op.X, op.Y, op.W, op.H, "F")
				} else {
					f.SetDrawColor(op.Color.R, op.Color.G, op.Color.B)
					f.Rect(op.X, op.Y, op.W, op.H, "D")
				}

			case OpLine:
				f.SetDrawColor(op.Color.R, op.Color.G, op.Color.B)
				f.Line(op.X, op.Y, op.X2, op.Y2)

			case OpImage:
				raw, format, err := decodeDataURI(op.Image)
				if err != nil {
					log.WithFields(logrus.Fields{"module": "pdf"}).Warnf("skipping image: %v", err)
					continue
				}
				imgSeq++
				name := fmt.Sprintf("img-%d", imgSeq)
				f.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: format}, bytes.NewReader(raw))
				// Stretched to the fixed box on purpose; signatures and
				// logos are never aspect-corrected.
				f.ImageOptions(name, op.X, op.Y, op.W, op.H, false, fpdf.ImageOptions{ImageType: format}, 0, "")
				if !f.Ok() {
					log.WithFields(logrus.Fields{"module": "pdf"}).Warnf("skipping image: %v", f.Error())
					f.ClearError()
				}
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

// decodeDataURI unpacks a base64 data URI ("data:image/png;base64,...") and
// verifies the payload actually decodes as the declared raster format.
func decodeDataURI(uri string) ([]byte, string, error) {
	const marker = ";base64,"
	idx := strings.Index(uri, marker)
	if !strings.HasPrefix(uri, "data:image/") || idx < 0 {
		return nil, "", fmt.Errorf("not an image data URI")
	}
	mime := uri[len("data:image/"):idx]
	raw, err := base64.StdEncoding.DecodeString(uri[idx+len(marker):])
	if err != nil {
		return nil, "", fmt.Errorf("base64 decode: %w", err)
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(raw)); err != nil {
		return nil, "", fmt.Errorf("image decode: %w", err)
	}
	var format string
	switch mime {
	case "png":
		format = "PNG"
	case "jpeg", "jpg":
		format = "JPG"
	default:
		return nil, "", fmt.Errorf("unsupported image type %q", mime)
	}
	return raw, format, nil
}
