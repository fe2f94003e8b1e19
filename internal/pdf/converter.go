// =============================================================================
// NFSe DANFSe Renderer - PDF Converter
// =============================================================================
//
// This module turns the rendered DANFSe markup into a PDF document. It is a
// flow-layout converter, not a browser: the markup is tokenized with
// golang.org/x/net/html and written to gofpdf as wrapped text.
//
// SUPPORTED MARKUP:
//   - Text, with entities decoded and whitespace collapsed
//   - <b>/<strong>/<th> switch to bold
//   - <br>, <p>, <div>, <tr>, <table>, <h1>-<h6>, <li> break lines
//   - <td>/<th> cells are separated by a gap
//   - <img src="data:image/png;base64,..."> is drawn inline
//   - <head>, <style>, <script>, <title> are skipped
//
// =============================================================================

package pdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Converter renders markup into PDF bytes.
type Converter interface {
	Convert(markup string) ([]byte, error)
}

// Options controls page setup and typography.
type Options struct {
	Orientation string  // "P" or "L"
	PageSize    string  // e.g. "A4"
	FontFamily  string  // one of the gofpdf core fonts
	FontSize    float64 // points
	Margin      float64 // millimetres
	ImageWidth  float64 // millimetres, for inline images
}

// DefaultOptions returns A4 portrait, Helvetica 9pt.
func DefaultOptions() Options {
	return Options{
		Orientation: "P",
		PageSize:    "A4",
		FontFamily:  "Helvetica",
		FontSize:    9,
		Margin:      10,
		ImageWidth:  28,
	}
}

// HTMLConverter is the gofpdf backed Converter.
type HTMLConverter struct {
	opts Options
}

// NewHTMLConverter returns a converter with opts; zero fields take defaults.
func NewHTMLConverter(opts Options) *HTMLConverter {
	def := DefaultOptions()
	if opts.Orientation == "" {
		opts.Orientation = def.Orientation
	}
	if opts.PageSize == "" {
		opts.PageSize = def.PageSize
	}
	if opts.FontFamily == "" {
		opts.FontFamily = def.FontFamily
	}
	if opts.FontSize <= 0 {
		opts.FontSize = def.FontSize
	}
	if opts.Margin <= 0 {
		opts.Margin = def.Margin
	}
	if opts.ImageWidth <= 0 {
		opts.ImageWidth = def.ImageWidth
	}
	return &HTMLConverter{opts: opts}
}

// Convert renders markup as a PDF.
func (c *HTMLConverter) Convert(markup string) ([]byte, error) {
	doc := gofpdf.New(c.opts.Orientation, "mm", c.opts.PageSize, "")
	doc.SetMargins(c.opts.Margin, c.opts.Margin, c.opts.Margin)
	doc.SetAutoPageBreak(true, c.opts.Margin)
	doc.AddPage()
	doc.SetFont(c.opts.FontFamily, "", c.opts.FontSize)

	w := &writer{
		doc:        doc,
		tr:         doc.UnicodeTranslatorFromDescriptor(""),
		family:     c.opts.FontFamily,
		size:       c.opts.FontSize,
		lineHeight: c.opts.FontSize * 0.5,
		imageWidth: c.opts.ImageWidth,
	}
	if err := w.run(html.NewTokenizer(strings.NewReader(markup))); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// =============================================================================
// TOKEN WRITER
// =============================================================================

type writer struct {
	doc        *gofpdf.Fpdf
	tr         func(string) string
	family     string
	size       float64
	lineHeight float64
	imageWidth float64

	skipDepth int
	boldDepth int
	images    int
	atLineEnd bool
}

func (w *writer) run(z *html.Tokenizer) error {
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return fmt.Errorf("failed to tokenize markup: %w", err)
			}
			return w.doc.Error()
		case html.TextToken:
			if w.skipDepth == 0 {
				w.text(string(z.Text()))
			}
		case html.StartTagToken:
			w.start(z, false)
		case html.SelfClosingTagToken:
			w.start(z, true)
		case html.EndTagToken:
			name, _ := z.TagName()
			w.end(atom.Lookup(name))
		}
		if err := w.doc.Error(); err != nil {
			return fmt.Errorf("failed to render PDF: %w", err)
		}
	}
}

func (w *writer) start(z *html.Tokenizer, selfClosing bool) {
	name, hasAttr := z.TagName()
	a := atom.Lookup(name)

	switch a {
	case atom.Head, atom.Style, atom.Script, atom.Title:
		if !selfClosing {
			w.skipDepth++
		}
		return
	}
	if w.skipDepth > 0 {
		return
	}

	switch a {
	case atom.B, atom.Strong, atom.Th:
		if !selfClosing {
			w.boldDepth++
			w.applyFont()
		}
	case atom.Br:
		w.newLine(true)
	case atom.P, atom.Div, atom.Table, atom.Tr, atom.Li,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		w.newLine(false)
	case atom.Img:
		if hasAttr {
			w.image(attributes(z)["src"])
		}
	}
}

func (w *writer) end(a atom.Atom) {
	switch a {
	case atom.Head, atom.Style, atom.Script, atom.Title:
		if w.skipDepth > 0 {
			w.skipDepth--
		}
		return
	}
	if w.skipDepth > 0 {
		return
	}

	switch a {
	case atom.B, atom.Strong:
		w.unbold()
	case atom.Th:
		w.unbold()
		w.doc.Write(w.lineHeight, "   ")
	case atom.Td:
		w.doc.Write(w.lineHeight, "   ")
	case atom.P, atom.Div, atom.Table, atom.Tr, atom.Li,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		w.newLine(false)
	}
}

func (w *writer) text(s string) {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return
	}
	w.doc.Write(w.lineHeight, w.tr(s+" "))
	w.atLineEnd = false
}

// newLine breaks the line. Block boundaries collapse; explicit <br> always
// breaks.
func (w *writer) newLine(force bool) {
	if w.atLineEnd && !force {
		return
	}
	w.doc.Ln(w.lineHeight)
	w.atLineEnd = true
}

func (w *writer) unbold() {
	if w.boldDepth > 0 {
		w.boldDepth--
		w.applyFont()
	}
}

func (w *writer) applyFont() {
	style := ""
	if w.boldDepth > 0 {
		style = "B"
	}
	w.doc.SetFont(w.family, style, w.size)
}

// image draws an inline data-URI PNG. Anything else is ignored.
func (w *writer) image(src string) {
	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(src, prefix) {
		return
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(src, prefix))
	if err != nil {
		return
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width <= 1 || cfg.Height <= 1 {
		// Placeholder pixels carry no content.
		return
	}

	w.images++
	name := fmt.Sprintf("img%d", w.images)
	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	w.doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))

	width := w.imageWidth
	height := width * float64(cfg.Height) / float64(cfg.Width)
	w.newLine(false)
	w.doc.ImageOptions(name, w.doc.GetX(), w.doc.GetY(), width, height, true, opts, 0, "")
	w.atLineEnd = true
}

func attributes(z *html.Tokenizer) map[string]string {
	attrs := make(map[string]string)
	for {
		key, val, more := z.TagAttr()
		attrs[string(key)] = string(val)
		if !more {
			return attrs
		}
	}
}
