package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/direction/nfse-danfe/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "danfe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMainConfig_Defaults(t *testing.T) {
	path := writeConfig(t, "{}\n")
	base := filepath.Dir(path)

	cfg, err := LoadMainConfig(path)
	require.NoError(t, err)

	assert.Equal(t, base, cfg.BaseDir)
	assert.Equal(t, "", cfg.TemplatePath)
	assert.Equal(t, filepath.Join(base, "assets", "estados.csv"), cfg.EstadosCSVPath)
	assert.Equal(t, filepath.Join(base, "assets", "municipios.csv"), cfg.MunicipiosCSVPath)
	assert.Equal(t, filepath.Join(base, "assets", "logos", "nfse.png"), cfg.LogoNFSePath)
	assert.Equal(t, filepath.Join(base, "input"), cfg.InputDir)
	assert.Equal(t, filepath.Join(base, "output"), cfg.OutputDir)
	assert.Equal(t, "", cfg.InputArchiveDir)
	assert.Equal(t, "UTF-8", cfg.ReferenceEncoding)
	assert.Equal(t, "Verdana, Helvetica, sans-serif;", cfg.FontFamily)
	assert.Equal(t, "12px;", cfg.FontSize)
	assert.Equal(t, "14px;", cfg.FontSizeHeader)
	assert.Equal(t, "11px;", cfg.FontSizeQRCode)
	assert.Equal(t, "Danfe_{numero}.pdf", cfg.OutputNameFormat)
	assert.Equal(t, 4, cfg.MaxConcurrency)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "", cfg.LogFile)
	assert.False(t, cfg.WriteHTML)
	assert.Equal(t, render.Production, cfg.DefaultEnvironment())
}

func TestLoadMainConfig_Overrides(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "tables", "municipios.xlsx")
	path := writeConfig(t, `
base_dir: /srv/danfe
municipios_csv_path: `+abs+`
reference_encoding: ISO-8859-1
environment: homologacao
input_archive_dir: archive
write_html: true
max_concurrency: 8
log_level: debug
log_format: json
font_size: 10px;
`)

	cfg, err := LoadMainConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/danfe", cfg.BaseDir)
	assert.Equal(t, abs, cfg.MunicipiosCSVPath)
	assert.Equal(t, filepath.Join("/srv/danfe", "assets", "estados.csv"), cfg.EstadosCSVPath)
	assert.Equal(t, filepath.Join("/srv/danfe", "archive"), cfg.InputArchiveDir)
	assert.Equal(t, render.Homologation, cfg.DefaultEnvironment())
	assert.True(t, cfg.WriteHTML)
	assert.Equal(t, 8, cfg.MaxConcurrency)

	opts := cfg.RendererOptions()
	assert.Equal(t, filepath.Dir(abs), opts.LogoBaseDir)
	assert.Equal(t, "10px;", opts.FontSize)
	assert.Equal(t, "14px;", opts.FontSizeHeader)
}

func TestLoadMainConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"log level", "log_level: verbose", "log_level"},
		{"log format", "log_format: xml", "log_format"},
		{"environment", "environment: staging", "environment"},
		{"encoding", "reference_encoding: EBCDIC", "reference_encoding"},
		{"concurrency", "max_concurrency: -1", "max_concurrency"},
		{"name format", "output_name_format: danfe.pdf", "output_name_format"},
		{"yaml", "log_level: [", "failed to parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadMainConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadMainConfig_MissingFile(t *testing.T) {
	_, err := LoadMainConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMainConfig_NoDefaultFile(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadMainConfig("")
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.BaseDir)
	assert.Equal(t, filepath.Join("assets", "estados.csv"), cfg.EstadosCSVPath)
}

func TestEnsureDirectories(t *testing.T) {
	cfg := Default(t.TempDir())
	cfg.InputArchiveDir = cfg.Resolve("archive")

	require.NoError(t, cfg.EnsureDirectories())
	assert.DirExists(t, cfg.OutputDir)
	assert.DirExists(t, cfg.InputArchiveDir)
}
