package render

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/direction/nfse-danfe/internal/diagnostics"
	"github.com/direction/nfse-danfe/internal/municipio"
	"github.com/direction/nfse-danfe/internal/nfse"
	"github.com/direction/nfse-danfe/internal/qrcode"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const samplePath = "../../testdata/nfse_completa.xml"

const sampleKey = "35503082212345678000195000000000000125010000000123"

const estadosCSV = `codigo_uf,uf,nome
35,SP,São Paulo
`

const municipiosCSV = `codigo_ibge,nome,latitude,longitude,capital,codigo_uf,siafi_id,ddd,fuso_horario,logo,logo_name
3550308,São Paulo,-23.5329,-46.6395,1,35,7107,11,America/Sao_Paulo,sp.png,Prefeitura de <São Paulo>
3509502,Campinas,-22.9053,-47.0659,0,35
`

// stubEncoder records the QR contents and returns a fixed payload.
type stubEncoder struct {
	mu       sync.Mutex
	contents []string
	err      error
}

func (s *stubEncoder) EncodePNG(content string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contents = append(s.contents, content)
	if s.err != nil {
		return nil, s.err
	}
	return []byte("png"), nil
}

type fixture struct {
	dir      string
	registry *municipio.Registry
	qr       *stubEncoder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	estados := filepath.Join(dir, "estados.csv")
	municipios := filepath.Join(dir, "municipios.csv")
	require.NoError(t, os.WriteFile(estados, []byte(estadosCSV), 0o644))
	require.NoError(t, os.WriteFile(municipios, []byte(municipiosCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sp.png"), []byte("sp-logo"), 0o644))

	registry := municipio.NewRegistry()
	require.NoError(t, registry.Initialize(estados, municipios))
	return &fixture{dir: dir, registry: registry, qr: &stubEncoder{}}
}

func (f *fixture) renderer(t *testing.T, template string) *Renderer {
	t.Helper()
	r, err := New(Options{Template: template, LogoBaseDir: f.dir}, f.registry, f.qr, zaptest.NewLogger(t))
	require.NoError(t, err)
	return r
}

func loadSample(t *testing.T) *nfse.NFSe {
	t.Helper()
	doc, err := nfse.DecodeFile(samplePath)
	require.NoError(t, err)
	return doc
}

func ptr[T any](v T) *T { return &v }

func paths(warnings []diagnostics.Warning, kind diagnostics.Kind) []string {
	var out []string
	for _, w := range warnings {
		if w.Kind == kind {
			out = append(out, w.Path)
		}
	}
	return out
}

func countPath(warnings []diagnostics.Warning, path string) int {
	n := 0
	for _, w := range warnings {
		if w.Path == path {
			n++
		}
	}
	return n
}

// =============================================================================
// VALUES
// =============================================================================

func TestRender_SampleValues(t *testing.T) {
	f := newFixture(t)
	r := f.renderer(t, "")

	out, err := r.Render(loadSample(t), Request{Environment: Homologation})
	require.NoError(t, err)

	assert.Equal(t, V101, out.Version)
	assert.Equal(t, sampleKey, out.AccessKey)
	assert.Equal(t, "123", out.Number)
	assert.Empty(t, paths(out.Warnings, diagnostics.TemplatePlaceholderEmpty))
	assert.NotContains(t, out.HTML, "{{")

	tests := []struct {
		name string
		want string
	}{
		{"access key", sampleKey},
		{"provider name escaped", "Tech &amp; Code Ltda"},
		{"provider CNPJ", "12.345.678/0001-95"},
		{"recipient CPF first", "123.456.789-09"},
		{"recipient municipality", "Campinas - SP"},
		{"provision municipality", "São Paulo - SP"},
		{"national tax", "01.01.01 - Análise e desenvolvimento de sistemas."},
		{"municipal tax", "101 - Desenvolvimento de software"},
		{"service value", "R$ 1.000,00"},
		{"net value", "R$ 950,00"},
		{"aliquot", "5,00%"},
		{"federal total", "R$ 61,50"},
		{"federal retained", "R$ 25,00"},
		{"pis cofins retained", "R$ 13,00"},
		{"emission date keeps wall clock", "10/03/2025 14:05:09"},
		{"competence", "01/03/2025"},
		{"description line breaks", "Desenvolvimento de sistema<br/>Fase 1 &lt;entrega&gt;"},
		{"complementary info", "Identificador de Responsabilidade Técnica: ART-99 | <b>Inf Cont:</b> Pedido 77 | <b>NBS:</b> 115013000"},
		{"validity notice", legalValidityNotice},
		{"city hall logo", base64.StdEncoding.EncodeToString([]byte("sp-logo"))},
		{"city hall name escaped once", "Prefeitura de &lt;São Paulo&gt;"},
		{"qr code", qrcode.DataURI([]byte("png"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, out.HTML, tt.want)
		})
	}
}

func TestRender_MissingServiceValue(t *testing.T) {
	f := newFixture(t)
	r := f.renderer(t, "{{VALOR_SERVICO}}")

	doc := loadSample(t)
	doc.InfNFSe.DPS.InfDPS.Valores.VServPrest.VServ = nil

	out, err := r.Render(doc, Request{})
	require.NoError(t, err)
	assert.Equal(t, "R$ 0,00", out.HTML)
	assert.Equal(t, 1, countPath(out.Warnings, "infNFSe.DPS.infDPS.valores.vServPrest.vServ"))
}

func TestRender_UnknownMunicipality(t *testing.T) {
	f := newFixture(t)
	r := f.renderer(t, "{{SERV_LOCAL}}|{{PREFEITURA_LOGO}}")

	doc := loadSample(t)
	doc.InfNFSe.DPS.InfDPS.Serv.LocPrest.CLocPrestacao = ptr("1234567")

	out, err := r.Render(doc, Request{})
	require.NoError(t, err)
	assert.Equal(t, "-|"+TransparentPixel, out.HTML)
	assert.Equal(t, []string{"infNFSe.DPS.infDPS.serv.locPrest.cLocPrestacao"},
		paths(out.Warnings, diagnostics.MunicipalityNotFound))
}

func TestRender_NonNumericMunicipality(t *testing.T) {
	f := newFixture(t)
	r := f.renderer(t, "{{ISS_MUN_INC}}")

	doc := loadSample(t)
	doc.InfNFSe.CLocIncid = ptr("abc")

	out, err := r.Render(doc, Request{})
	require.NoError(t, err)
	assert.Equal(t, "-", out.HTML)
	assert.Equal(t, []string{"infNFSe.cLocIncid"}, paths(out.Warnings, diagnostics.MunicipalityNotFound))
}

func TestRender_AbsentMunicipalityCode(t *testing.T) {
	f := newFixture(t)
	r := f.renderer(t, "{{SERV_LOCAL}}|{{ISS_MUN_INC}}")

	doc := loadSample(t)
	doc.InfNFSe.DPS.InfDPS.Serv.LocPrest.CLocPrestacao = nil
	doc.InfNFSe.CLocIncid = nil

	out, err := r.Render(doc, Request{})
	require.NoError(t, err)
	assert.Equal(t, "-|-", out.HTML)

	missing := paths(out.Warnings, diagnostics.FieldMissing)
	assert.Contains(t, missing, "infNFSe.DPS.infDPS.serv.locPrest.cLocPrestacao")
	assert.Contains(t, missing, "infNFSe.cLocIncid")
	assert.Empty(t, paths(out.Warnings, diagnostics.MunicipalityNotFound))
}

func TestRender_FederalTotal(t *testing.T) {
	tests := []struct {
		name      string
		aggregate *decimal.Decimal
		want      string
	}{
		{"aggregate wins over the sum", ptr(decimal.RequireFromString("120.00")), "R$ 120,00"},
		{"zero aggregate uses the sum", ptr(decimal.Zero), "R$ 61,50"},
		{"absent aggregate uses the sum", nil, "R$ 61,50"},
	}

	f := newFixture(t)
	r := f.renderer(t, "{{FED_TOTAL}}")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := loadSample(t)
			doc.InfNFSe.DPS.InfDPS.Valores.Trib.TotTrib.VTotTrib = &nfse.VTotTrib{VTotTribFed: tt.aggregate}

			out, err := r.Render(doc, Request{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.HTML)
		})
	}
}

func TestRender_NationalTaxDescription(t *testing.T) {
	f := newFixture(t)
	r := f.renderer(t, "{{SERV_CTRIBNAC}}")

	t.Run("code and description", func(t *testing.T) {
		doc := loadSample(t)
		doc.InfNFSe.DPS.InfDPS.Serv.CServ.CTribNac = ptr("010203")
		doc.InfNFSe.XTribNac = ptr("Serviço X")

		out, err := r.Render(doc, Request{})
		require.NoError(t, err)
		assert.Equal(t, "01.02.03 - Serviço X", out.HTML)
	})

	t.Run("both absent", func(t *testing.T) {
		doc := loadSample(t)
		doc.InfNFSe.DPS.InfDPS.Serv.CServ.CTribNac = nil
		doc.InfNFSe.XTribNac = nil

		out, err := r.Render(doc, Request{})
		require.NoError(t, err)
		assert.Equal(t, "-", out.HTML)
		assert.Equal(t, 1, countPath(out.Warnings, "infNFSe.DPS.infDPS.serv.cServ.cTribNac | infNFSe.xTribNac"))
	})
}

func TestRender_PartyIDPrecedence(t *testing.T) {
	f := newFixture(t)
	r := f.renderer(t, "{{TOMA_CNPJ}}")

	tests := []struct {
		version string
		want    string
	}{
		{V100, "98.765.432/0001-10"},
		{V101, "123.456.789-09"},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			out, err := r.Render(loadSample(t), Request{Version: tt.version})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.HTML)
			assert.Equal(t, tt.version, out.Version)
		})
	}
}

func TestRender_CancelledBanner(t *testing.T) {
	f := newFixture(t)
	r := f.renderer(t, "{{NFSE_CANCELADA_DIV}}")

	out, err := r.Render(loadSample(t), Request{Version: V100, Cancelled: true})
	require.NoError(t, err)
	assert.Equal(t, simpleCancelledBanner, out.HTML)

	out, err = r.Render(loadSample(t), Request{Version: V101, Cancelled: true})
	require.NoError(t, err)
	assert.Equal(t, rotatedCancelledBanner, out.HTML)

	out, err = r.Render(loadSample(t), Request{Cancelled: false})
	require.NoError(t, err)
	assert.Empty(t, out.HTML)
}

func TestRender_EnvironmentURLAndValidity(t *testing.T) {
	f := newFixture(t)
	r := f.renderer(t, "{{VALIDADE_JURIDICA}}")

	out, err := r.Render(loadSample(t), Request{Environment: Production})
	require.NoError(t, err)
	assert.Empty(t, out.HTML)

	out, err = r.Render(loadSample(t), Request{Environment: Homologation})
	require.NoError(t, err)
	assert.Equal(t, legalValidityNotice, out.HTML)

	require.Len(t, f.qr.contents, 2)
	assert.Equal(t, "https://www.nfse.gov.br/ConsultaPublica/?tpc=1&chave="+sampleKey, f.qr.contents[0])
	assert.Equal(t, "https://www.producaorestrita.nfse.gov.br/ConsultaPublica/?tpc=1&chave="+sampleKey, f.qr.contents[1])
}

func TestRender_IsDeterministic(t *testing.T) {
	f := newFixture(t)
	r := f.renderer(t, "")

	first, err := r.Render(loadSample(t), Request{})
	require.NoError(t, err)
	second, err := r.Render(loadSample(t), Request{})
	require.NoError(t, err)

	assert.Equal(t, first.HTML, second.HTML)
	assert.Equal(t, first.Warnings, second.Warnings)
}

func TestRender_ConcurrentCalls(t *testing.T) {
	f := newFixture(t)
	r, err := New(Options{LogoBaseDir: f.dir}, f.registry, nil, nil)
	require.NoError(t, err)

	want, err := r.Render(loadSample(t), Request{})
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		doc := loadSample(t)
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := r.Render(doc, Request{})
			if err == nil {
				results[i] = out.HTML
			}
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want.HTML, got)
	}
}

// =============================================================================
// SUBSTITUTION
// =============================================================================

func TestRender_UnknownTokensRemoved(t *testing.T) {
	f := newFixture(t)
	r := f.renderer(t, "a{{UNUSED}}b{{UNUSED}}c{{OTHER}}")

	out, err := r.Render(loadSample(t), Request{})
	require.NoError(t, err)
	assert.Equal(t, "abc", out.HTML)
	assert.Equal(t, []string{"{{UNUSED}}", "{{OTHER}}"}, paths(out.Warnings, diagnostics.TemplatePlaceholderEmpty))
}

func TestRender_ValuesAreNotRescanned(t *testing.T) {
	f := newFixture(t)
	r := f.renderer(t, "{{TOMA_RAZAO}}")

	doc := loadSample(t)
	doc.InfNFSe.DPS.InfDPS.Toma.XNome = ptr("{{CHAVE_ACESSO}} <b>")

	out, err := r.Render(doc, Request{})
	require.NoError(t, err)
	assert.Equal(t, "{{CHAVE_ACESSO}} &lt;b&gt;", out.HTML)
}

func TestSubstitute_RawAndEscaped(t *testing.T) {
	w := diagnostics.NewCollector()
	got := Substitute("{{TOMA_RAZAO}}/{{SERV_DESC_HTML}}/{{NUMERO_NFSE}}", Values{
		TomaRazao:    "<i>",
		ServDescHTML: "<br/>",
	}, w)

	assert.Equal(t, "&lt;i&gt;/<br/>/", got)
	assert.Equal(t, []string{"{{NUMERO_NFSE}}"}, paths(w.Warnings(), diagnostics.TemplatePlaceholderEmpty))
}

func TestSubstitute_EmptyValueDoesNotWarn(t *testing.T) {
	w := diagnostics.NewCollector()
	got := Substitute("[{{VALIDADE_JURIDICA}}]", Values{ValidadeJuridica: ""}, w)

	assert.Equal(t, "[]", got)
	assert.Zero(t, w.Len())
}

func TestDefaultTemplate_ReferencesEveryPlaceholder(t *testing.T) {
	known, unknown := TemplateTokens(DefaultTemplate())
	assert.Empty(t, unknown)
	assert.ElementsMatch(t, AllPlaceholders(), known)
}

func TestLookupPlaceholder(t *testing.T) {
	for _, p := range AllPlaceholders() {
		got, ok := LookupPlaceholder(p.Name())
		require.True(t, ok, p.Name())
		assert.Equal(t, p, got)
		assert.Equal(t, "{{"+p.Name()+"}}", p.Token())
	}

	_, ok := LookupPlaceholder("chave_acesso")
	assert.False(t, ok)
}

// =============================================================================
// ERRORS
// =============================================================================

func TestRender_InvalidDocument(t *testing.T) {
	f := newFixture(t)
	r := f.renderer(t, "x")

	tests := []struct {
		name   string
		mutate func(doc *nfse.NFSe) *nfse.NFSe
	}{
		{"nil document", func(*nfse.NFSe) *nfse.NFSe { return nil }},
		{"no infNFSe", func(doc *nfse.NFSe) *nfse.NFSe { doc.InfNFSe = nil; return doc }},
		{"no DPS", func(doc *nfse.NFSe) *nfse.NFSe { doc.InfNFSe.DPS = nil; return doc }},
		{"no infDPS", func(doc *nfse.NFSe) *nfse.NFSe { doc.InfNFSe.DPS.InfDPS = nil; return doc }},
		{"blank Id", func(doc *nfse.NFSe) *nfse.NFSe { doc.InfNFSe.ID = ptr(" "); return doc }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Render(tt.mutate(loadSample(t)), Request{})
			assert.ErrorIs(t, err, ErrInvalidDocument)
			assert.Nil(t, out)
		})
	}
}

func TestRender_UnsupportedVersion(t *testing.T) {
	f := newFixture(t)
	r := f.renderer(t, "x")

	_, err := r.Render(loadSample(t), Request{Version: "9.99"})
	assert.ErrorIs(t, err, ErrUnsupportedVersion)

	doc := loadSample(t)
	doc.Versao = ptr("0.50")
	doc.InfNFSe.DPS.Versao = ptr("0.50")
	_, err = r.Render(doc, Request{})
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestRender_QREncoderFailure(t *testing.T) {
	f := newFixture(t)
	f.qr.err = errors.New("boom")
	r := f.renderer(t, "x")

	out, err := r.Render(loadSample(t), Request{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Nil(t, out)
}

func TestRender_RegistryNotInitialized(t *testing.T) {
	r, err := New(Options{Template: "x"}, municipio.NewRegistry(), &stubEncoder{}, nil)
	require.NoError(t, err)

	_, err = r.Render(loadSample(t), Request{})
	assert.ErrorIs(t, err, municipio.ErrNotInitialized)
}

func TestNew_Errors(t *testing.T) {
	_, err := New(Options{}, nil, nil, nil)
	assert.Error(t, err)

	_, err = New(Options{TemplatePath: filepath.Join(t.TempDir(), "missing.html")}, municipio.NewRegistry(), nil, nil)
	assert.Error(t, err)
}

func TestNew_TemplatePathAndFonts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.html")
	require.NoError(t, os.WriteFile(path, []byte("{{FONT_SIZE_HEADER}}{{FONT_SIZE_QRCODE}}{{NFSE_LOGO}}"), 0o644))

	f := newFixture(t)
	r, err := New(Options{TemplatePath: path, FontSizeHeader: "20px;"}, f.registry, f.qr, nil)
	require.NoError(t, err)

	out, err := r.Render(loadSample(t), Request{})
	require.NoError(t, err)
	assert.Equal(t, "20px;"+DefaultOptions().FontSizeQRCode+TransparentPixel, out.HTML)
}

// =============================================================================
// RULES
// =============================================================================

func TestParseEnvironment(t *testing.T) {
	for _, s := range []string{"production", "Producao", "1", " prod "} {
		env, err := ParseEnvironment(s)
		require.NoError(t, err, s)
		assert.Equal(t, Production, env)
	}
	for _, s := range []string{"homologation", "HOMOLOGACAO", "2", "restricted"} {
		env, err := ParseEnvironment(s)
		require.NoError(t, err, s)
		assert.Equal(t, Homologation, env)
	}
	_, err := ParseEnvironment("staging")
	assert.Error(t, err)
}

func TestJoinCodeDescription(t *testing.T) {
	assert.Equal(t, "01.02.03 - X", NationalTaxDescription("010203", "X"))
	assert.Equal(t, "01.02.03", NationalTaxDescription("010203", ""))
	assert.Equal(t, "X", NationalTaxDescription("", "X"))
	assert.Equal(t, "", NationalTaxDescription("", ""))
	assert.Equal(t, "101 - Y", MunicipalTaxDescription("101", "Y"))
}

func TestAccessKey(t *testing.T) {
	assert.Equal(t, "123", accessKey("NFS123"))
	assert.Equal(t, "", accessKey("NFS"))
	assert.True(t, strings.HasPrefix(VerificationURL(Homologation, "k"), "https://www.producaorestrita."))
}
