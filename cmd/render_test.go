package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/direction/nfse-danfe/internal/danfe"
	"github.com/direction/nfse-danfe/internal/municipio"
	"github.com/direction/nfse-danfe/internal/render"
	"github.com/direction/nfse-danfe/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const samplePath = "../testdata/nfse_completa.xml"

type stubConverter struct{}

func (stubConverter) Convert(markup string) ([]byte, error) {
	return []byte("%PDF " + markup), nil
}

func newRegistry(t *testing.T) *municipio.Registry {
	t.Helper()
	dir := t.TempDir()
	estados := filepath.Join(dir, "estados.csv")
	municipios := filepath.Join(dir, "municipios.csv")
	require.NoError(t, os.WriteFile(estados, []byte("35,SP,São Paulo\n"), 0o644))
	require.NoError(t, os.WriteFile(municipios, []byte("3550308,São Paulo,0,0,1,35\n3509502,Campinas,0,0,0,35\n"), 0o644))

	registry := municipio.NewRegistry()
	require.NoError(t, registry.Initialize(estados, municipios))
	return registry
}

type batchFixture struct {
	svc  *danfe.Service
	opts batchOptions
	in   string
	out  string
	arch string
}

func newBatchFixture(t *testing.T) *batchFixture {
	t.Helper()
	registry := newRegistry(t)
	renderer, err := render.New(render.Options{Template: "<p>{{NUMERO_NFSE}}</p>"}, registry, nil, nil)
	require.NoError(t, err)

	root := t.TempDir()
	f := &batchFixture{
		svc:  danfe.New(renderer, stubConverter{}, nil),
		in:   filepath.Join(root, "input"),
		out:  filepath.Join(root, "output"),
		arch: filepath.Join(root, "archive"),
	}
	require.NoError(t, os.MkdirAll(f.in, 0o755))
	f.opts = batchOptions{
		files:       utils.NewFileManager(f.in, f.out, f.arch),
		nameFormat:  "Danfe_{numero}.pdf",
		concurrency: 2,
	}
	return f
}

func copySample(t *testing.T, dst string) {
	t.Helper()
	data, err := os.ReadFile(samplePath)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(dst, data, 0o644))
}

func TestRunBatch_InputDirectory(t *testing.T) {
	f := newBatchFixture(t)
	copySample(t, filepath.Join(f.in, "nota.xml"))
	require.NoError(t, os.WriteFile(filepath.Join(f.in, "broken.xml"), []byte("<NFSe>"), 0o644))
	f.opts.writeHTML = true

	var out bytes.Buffer
	summary, err := runBatch(context.Background(), f.svc, f.opts, nil, &out, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalFiles)
	assert.Equal(t, 1, summary.SuccessfulFiles)
	assert.Equal(t, 1, summary.FailedFiles)
	assert.Equal(t, filepath.Join(f.in, "broken.xml"), summary.FailedFilesList[0].InputFile)

	pdf, err := os.ReadFile(filepath.Join(f.out, "Danfe_123.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF <p>123</p>", string(pdf))
	assert.FileExists(t, filepath.Join(f.out, "Danfe_123.html"))

	assert.FileExists(t, filepath.Join(f.arch, "nota.xml"))
	assert.NoFileExists(t, filepath.Join(f.in, "nota.xml"))
	assert.FileExists(t, filepath.Join(f.in, "broken.xml"))

	assert.Contains(t, out.String(), "✓ nota.xml")
	assert.Contains(t, out.String(), "✗ broken.xml")

	summaries, err := filepath.Glob(filepath.Join(f.out, "processing_summary_*.txt"))
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
}

func TestRunBatch_ExplicitFilesAreNotArchived(t *testing.T) {
	f := newBatchFixture(t)
	doc := filepath.Join(t.TempDir(), "nota.xml")
	copySample(t, doc)

	var out bytes.Buffer
	summary, err := runBatch(context.Background(), f.svc, f.opts, []string{doc}, &out, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.SuccessfulFiles)
	assert.FileExists(t, doc)
	assert.FileExists(t, filepath.Join(f.out, "Danfe_123.pdf"))
}

func TestRunBatch_SameNumberKeepsBothDocuments(t *testing.T) {
	f := newBatchFixture(t)
	f.opts.concurrency = 1
	copySample(t, filepath.Join(f.in, "a.xml"))

	data, err := os.ReadFile(samplePath)
	require.NoError(t, err)
	const otherID = "NFS35503082212345678000195000000000000125010000000999"
	other := strings.Replace(string(data), "NFS35503082212345678000195000000000000125010000000123", otherID, 1)
	require.NoError(t, os.WriteFile(filepath.Join(f.in, "b.xml"), []byte(other), 0o644))

	var out bytes.Buffer
	summary, err := runBatch(context.Background(), f.svc, f.opts, nil, &out, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.SuccessfulFiles)

	first := filepath.Join(f.out, "Danfe_123.pdf")
	second := filepath.Join(f.out, "Danfe_123_"+otherID[3:]+".pdf")
	assert.FileExists(t, first)
	assert.FileExists(t, second)
	assert.Equal(t, first, summary.ProcessedFiles[0].OutputFile)
	assert.Equal(t, second, summary.ProcessedFiles[1].OutputFile)
}

func TestOutputNames_Claim(t *testing.T) {
	names := newOutputNames()
	result := &danfe.Result{Number: "7", AccessKey: "KEY"}

	name, err := names.claim("Danfe_{numero}.pdf", "a.xml", result)
	require.NoError(t, err)
	assert.Equal(t, "Danfe_7.pdf", name)

	name, err = names.claim("Danfe_{numero}.pdf", "b.xml", result)
	require.NoError(t, err)
	assert.Equal(t, "Danfe_7_KEY.pdf", name)

	_, err = names.claim("Danfe_{numero}.pdf", "c.xml", result)
	assert.ErrorContains(t, err, "a.xml")
}

func TestRunBatch_DryRun(t *testing.T) {
	f := newBatchFixture(t)
	copySample(t, filepath.Join(f.in, "nota.xml"))
	f.opts.dryRun = true
	f.opts.request.SkipPDF = true

	var out bytes.Buffer
	summary, err := runBatch(context.Background(), f.svc, f.opts, nil, &out, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.SuccessfulFiles)
	assert.NoDirExists(t, f.out)
	assert.FileExists(t, filepath.Join(f.in, "nota.xml"))
	assert.Contains(t, out.String(), "(dry run)")
}

func TestRunBatch_Empty(t *testing.T) {
	f := newBatchFixture(t)

	var out bytes.Buffer
	summary, err := runBatch(context.Background(), f.svc, f.opts, nil, &out, zap.NewNop())
	require.NoError(t, err)
	assert.Zero(t, summary.TotalFiles)
	assert.Contains(t, out.String(), "No XML documents found.")
}

func TestRunBatch_Cancelled(t *testing.T) {
	f := newBatchFixture(t)
	copySample(t, filepath.Join(f.in, "nota.xml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runBatch(ctx, f.svc, f.opts, nil, &bytes.Buffer{}, zap.NewNop())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPrintMunicipios(t *testing.T) {
	registry := newRegistry(t)

	var out bytes.Buffer
	require.NoError(t, printMunicipios(&out, registry, []string{"3550308", "1", "x"}))
	assert.Contains(t, out.String(), "3550308: São Paulo - SP")
	assert.Contains(t, out.String(), "1: not found")
	assert.Contains(t, out.String(), "x: not a numeric IBGE code")

	assert.Error(t, printMunicipios(&bytes.Buffer{}, registry, []string{"1"}))
}

func TestCheckTemplate(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, checkTemplate(&out, render.DefaultTemplate(), filepath.Join(t.TempDir(), "none.png")))
	assert.NotContains(t, out.String(), "not referenced")
	assert.Contains(t, out.String(), "Warning: NFSe logo")

	err := checkTemplate(&bytes.Buffer{}, "{{NOPE}}", "")
	assert.ErrorContains(t, err, "{{NOPE}}")
}
