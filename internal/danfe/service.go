// =============================================================================
// NFSe DANFSe Renderer - Service Module
// =============================================================================
//
// This module is the entry point used by the CLI and by library callers. It
// runs the whole pipeline for one document:
//
//   1. Decode the XML (text, stream or file) into the document model
//   2. Render the DANFSe markup
//   3. Convert the markup to PDF (optional)
//
// The result carries the markup, the PDF bytes and every warning produced
// along the way. Warnings never fail a document; errors always do.
//
// =============================================================================

package danfe

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/direction/nfse-danfe/internal/diagnostics"
	"github.com/direction/nfse-danfe/internal/nfse"
	"github.com/direction/nfse-danfe/internal/pdf"
	"github.com/direction/nfse-danfe/internal/render"
	"go.uber.org/zap"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result is the outcome of processing a single document.
type Result struct {
	// Environment the document was rendered for.
	Environment render.Environment

	// HTML is the rendered markup.
	HTML string

	// PDF holds the converted document. Nil when PDF output was skipped.
	PDF []byte

	// Warnings lists every recoverable problem, in emission order.
	Warnings []diagnostics.Warning

	// Version is the layout that was applied.
	Version string

	// AccessKey and Number identify the document.
	AccessKey string
	Number    string

	Stats ProcessingStats
}

// ProcessingStats contains statistics about one document.
type ProcessingStats struct {
	Warnings       int
	HTMLBytes      int
	PDFBytes       int
	ProcessingTime time.Duration
}

// Request selects the environment and output for one document.
type Request struct {
	Environment render.Environment
	Cancelled   bool

	// Version forces a layout. Empty means detect from the document.
	Version string

	// SkipPDF returns the markup only.
	SkipPDF bool
}

// =============================================================================
// SERVICE
// =============================================================================

// Service renders NFSe documents into DANFSe markup and PDF.
type Service struct {
	renderer  *render.Renderer
	converter pdf.Converter
	logger    *zap.Logger
}

// New creates a Service.
//
// PARAMETERS:
//   - renderer: The document renderer.
//   - converter: Markup to PDF converter; nil selects the gofpdf converter
//     with default options.
//   - logger: nil disables logging.
func New(renderer *render.Renderer, converter pdf.Converter, logger *zap.Logger) *Service {
	if converter == nil {
		converter = pdf.NewHTMLConverter(pdf.DefaultOptions())
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{renderer: renderer, converter: converter, logger: logger}
}

// RenderXML decodes XML text and processes it.
func (s *Service) RenderXML(text string, req Request) (*Result, error) {
	return s.RenderReader(strings.NewReader(text), req)
}

// RenderReader decodes an XML stream and processes it.
func (s *Service) RenderReader(r io.Reader, req Request) (*Result, error) {
	doc, err := nfse.Decode(r)
	if err != nil {
		return nil, err
	}
	return s.Render(doc, req)
}

// RenderFile decodes an XML file and processes it.
func (s *Service) RenderFile(path string, req Request) (*Result, error) {
	doc, err := nfse.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	result, err := s.Render(doc, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return result, nil
}

// Render processes an already decoded document.
//
// RETURNS:
//   - The Result, with PDF unset when req.SkipPDF is true.
//   - Render errors (see render.Renderer.Render) or a PDF conversion error.
func (s *Service) Render(doc *nfse.NFSe, req Request) (*Result, error) {
	start := time.Now()

	out, err := s.renderer.Render(doc, render.Request{
		Environment: req.Environment,
		Cancelled:   req.Cancelled,
		Version:     req.Version,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render document: %w", err)
	}

	result := &Result{
		Environment: req.Environment,
		HTML:        out.HTML,
		Warnings:    out.Warnings,
		Version:     out.Version,
		AccessKey:   out.AccessKey,
		Number:      out.Number,
	}

	if !req.SkipPDF {
		data, err := s.converter.Convert(out.HTML)
		if err != nil {
			return nil, fmt.Errorf("failed to convert document %s to PDF: %w", out.AccessKey, err)
		}
		result.PDF = data
	}

	result.Stats = ProcessingStats{
		Warnings:       len(result.Warnings),
		HTMLBytes:      len(result.HTML),
		PDFBytes:       len(result.PDF),
		ProcessingTime: time.Since(start),
	}

	s.logger.Info("document rendered",
		zap.String("access_key", result.AccessKey),
		zap.String("numero", result.Number),
		zap.String("version", result.Version),
		zap.Stringer("environment", result.Environment),
		zap.Int("warnings", result.Stats.Warnings),
		zap.Duration("elapsed", result.Stats.ProcessingTime),
	)
	return result, nil
}
