// =============================================================================
// NFSe DANFSe Renderer - Document Renderer
// =============================================================================
//
// This module converts an NFSe document into DANFSe markup. A render is a
// pure, synchronous transform that runs through a fixed sequence of states:
//
//   Validating   -> mandatory nodes present, layout version resolved
//   Deriving     -> access key, QR code, municipalities, tax aggregates
//   Mapping      -> one value per Placeholder, with fallbacks and warnings
//   Substituting -> tokens replaced in a single pass over the template
//   Done         -> markup and warnings returned together
//
// Fatal problems (invalid document, unsupported version, registry or QR
// failures) abort the render with an error and no markup. Everything else
// becomes a warning.
//
// A Renderer is safe for concurrent use once constructed; each call owns its
// warning collector and value map.
//
// =============================================================================

package render

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/direction/nfse-danfe/internal/diagnostics"
	"github.com/direction/nfse-danfe/internal/municipio"
	"github.com/direction/nfse-danfe/internal/nfse"
	"github.com/direction/nfse-danfe/internal/qrcode"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:embed templates/danfe.html
var defaultTemplate string

// DefaultTemplate returns the markup template compiled into the binary.
func DefaultTemplate() string {
	return defaultTemplate
}

// Errors returned by Render. They are wrapped with context; use errors.Is.
var (
	ErrInvalidDocument    = errors.New("invalid NFSe document")
	ErrUnsupportedVersion = errors.New("unsupported schema version")
)

// TransparentPixel is a base64 1x1 transparent PNG, used for absent logos.
const TransparentPixel = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR4nGNgYAAAAAMAASsJTYQAAAAASUVORK5CYII="

// =============================================================================
// ENVIRONMENT
// =============================================================================

// Environment is the tax authority environment a document belongs to.
type Environment int

const (
	// Production documents have legal validity.
	Production Environment = iota
	// Homologation is the restricted test environment.
	Homologation
)

func (e Environment) String() string {
	if e == Production {
		return "production"
	}
	return "homologation"
}

// ParseEnvironment accepts "production"/"producao"/"1" and
// "homologation"/"homologacao"/"restricted"/"2", case-insensitively.
func ParseEnvironment(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "production", "producao", "produção", "prod", "1":
		return Production, nil
	case "homologation", "homologacao", "homologação", "restricted", "producaorestrita", "2":
		return Homologation, nil
	default:
		return Production, fmt.Errorf("unknown environment %q", s)
	}
}

// =============================================================================
// OPTIONS, REQUEST AND OUTPUT
// =============================================================================

// Options configures a Renderer.
type Options struct {
	// Template is inline template markup. Takes precedence over TemplatePath.
	Template string

	// TemplatePath is a template file. Empty means the embedded template.
	TemplatePath string

	// NFSeLogoPath is the national NFSe logo. Missing files render a
	// transparent pixel.
	NFSeLogoPath string

	// LogoBaseDir resolves relative municipality logo paths.
	LogoBaseDir string

	FontFamily     string
	FontSize       string
	FontSizeHeader string
	FontSizeQRCode string
}

// DefaultOptions returns the typography defaults and the embedded template.
func DefaultOptions() Options {
	return Options{
		FontFamily:     "Verdana, Helvetica, sans-serif;",
		FontSize:       "12px;",
		FontSizeHeader: "14px;",
		FontSizeQRCode: "11px;",
	}
}

// Request carries the per-call inputs that are not part of the document.
type Request struct {
	Environment Environment
	Cancelled   bool

	// Version forces a layout. Empty means detect from the document.
	Version string
}

// Output is a successful render.
type Output struct {
	HTML     string
	Warnings []diagnostics.Warning

	// Version is the layout that was applied.
	Version string

	// AccessKey and Number identify the document for file naming.
	AccessKey string
	Number    string
}

// =============================================================================
// RENDERER
// =============================================================================

// Renderer turns NFSe documents into DANFSe markup.
type Renderer struct {
	opts     Options
	template string
	nfseLogo string
	registry *municipio.Registry
	qr       qrcode.Encoder
	logger   *zap.Logger

	logos sync.Map // path -> base64 PNG
}

// New builds a Renderer. The template and NFSe logo are read once here.
//
// PARAMETERS:
//   - opts: Template source, logos and typography. Blank font settings take
//     the defaults.
//   - registry: Municipality lookup; must be initialized before Render.
//   - qr: QR code encoder; nil selects the go-qrcode encoder.
//   - logger: nil disables logging.
func New(opts Options, registry *municipio.Registry, qr qrcode.Encoder, logger *zap.Logger) (*Renderer, error) {
	if registry == nil {
		return nil, errors.New("municipality registry is required")
	}
	if qr == nil {
		qr = qrcode.NewPNGEncoder(qrcode.DefaultSize)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	def := DefaultOptions()
	if opts.FontFamily == "" {
		opts.FontFamily = def.FontFamily
	}
	if opts.FontSize == "" {
		opts.FontSize = def.FontSize
	}
	if opts.FontSizeHeader == "" {
		opts.FontSizeHeader = def.FontSizeHeader
	}
	if opts.FontSizeQRCode == "" {
		opts.FontSizeQRCode = def.FontSizeQRCode
	}

	tmpl, err := loadTemplate(opts)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		opts:     opts,
		template: tmpl,
		registry: registry,
		qr:       qr,
		logger:   logger,
	}
	r.nfseLogo = r.logoBase64(opts.NFSeLogoPath)
	return r, nil
}

// Template returns the template markup in use.
func (r *Renderer) Template() string {
	return r.template
}

func loadTemplate(opts Options) (string, error) {
	if opts.Template != "" {
		return opts.Template, nil
	}
	if opts.TemplatePath == "" {
		return defaultTemplate, nil
	}
	data, err := os.ReadFile(opts.TemplatePath)
	if err != nil {
		return "", fmt.Errorf("failed to read template: %w", err)
	}
	return string(data), nil
}

// Render converts doc into markup.
//
// RETURNS:
//   - The markup, the warnings in emission order and the applied layout.
//   - ErrInvalidDocument when a mandatory node is missing.
//   - ErrUnsupportedVersion when the layout version is unknown.
//   - Registry or QR encoder errors, wrapped.
func (r *Renderer) Render(doc *nfse.NFSe, req Request) (*Output, error) {
	run := &renderRun{
		r:   r,
		doc: doc,
		req: req,
		w:   diagnostics.NewCollector(),
		log: r.logger.With(zap.String("render_id", uuid.NewString())),
	}

	steps := []struct {
		state state
		fn    func() error
	}{
		{stateValidating, run.validate},
		{stateDeriving, run.derive},
		{stateMapping, run.mapValues},
		{stateSubstituting, run.substitute},
	}
	for _, step := range steps {
		run.log.Debug("render state", zap.Stringer("state", step.state))
		if err := step.fn(); err != nil {
			run.log.Debug("render failed", zap.Stringer("state", step.state), zap.Error(err))
			return nil, err
		}
	}
	run.log.Debug("render state", zap.Stringer("state", stateDone), zap.Int("warnings", run.w.Len()))

	warnings := run.w.Warnings()
	for _, w := range warnings {
		run.log.Debug("render warning", zap.String("code", w.Kind.Code()), zap.String("message", w.Message), zap.String("path", w.Path))
	}

	return &Output{
		HTML:      run.html,
		Warnings:  warnings,
		Version:   run.layout.Version,
		AccessKey: run.d.accessKey,
		Number:    nfse.Str(run.inf.GetNNFSe()),
	}, nil
}

// =============================================================================
// STATE MACHINE
// =============================================================================

type state int

const (
	stateValidating state = iota
	stateDeriving
	stateMapping
	stateSubstituting
	stateDone
)

func (s state) String() string {
	switch s {
	case stateValidating:
		return "validating"
	case stateDeriving:
		return "deriving"
	case stateMapping:
		return "mapping"
	case stateSubstituting:
		return "substituting"
	case stateDone:
		return "done"
	default:
		return "unknown"
	}
}

// renderRun is the working state of a single Render call.
type renderRun struct {
	r   *Renderer
	doc *nfse.NFSe
	req Request
	w   *diagnostics.Collector
	log *zap.Logger

	inf    *nfse.InfNFSe
	infDPS *nfse.InfDPS
	layout Layout

	d      derived
	values Values
	html   string
}

// validate checks the mandatory nodes and resolves the layout.
func (run *renderRun) validate() error {
	switch {
	case run.doc == nil:
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	case run.doc.InfNFSe == nil:
		return fmt.Errorf("%w: NFSe.infNFSe is missing", ErrInvalidDocument)
	case run.doc.InfNFSe.DPS == nil:
		return fmt.Errorf("%w: NFSe.infNFSe.DPS is missing", ErrInvalidDocument)
	case run.doc.InfNFSe.DPS.InfDPS == nil:
		return fmt.Errorf("%w: NFSe.infNFSe.DPS.infDPS is missing", ErrInvalidDocument)
	case nfse.Str(run.doc.InfNFSe.ID) == "":
		return fmt.Errorf("%w: NFSe.infNFSe.Id is blank", ErrInvalidDocument)
	}

	run.inf = run.doc.InfNFSe
	run.infDPS = run.inf.DPS.InfDPS

	version := strings.TrimSpace(run.req.Version)
	if version == "" {
		version = run.doc.SchemaVersion()
	}
	if version == "" {
		version = DefaultVersion
	}
	layout, err := LayoutFor(version)
	if err != nil {
		return err
	}
	run.layout = layout
	return nil
}
