// =============================================================================
// NFSe DANFSe Renderer - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file. Every key
// is optional; relative paths are resolved against base_dir, which itself
// defaults to the directory holding the configuration file.
//
// CONFIGURATION FILE (danfe.yaml):
//
//   base_dir: /srv/danfe
//   estados_csv_path: assets/estados.csv
//   municipios_csv_path: assets/municipios.xlsx
//   environment: homologation
//   max_concurrency: 8
//   log_level: debug
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/direction/nfse-danfe/internal/csvparser"
	"github.com/direction/nfse-danfe/internal/render"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the file looked up when no path is given.
const DefaultConfigFile = "danfe.yaml"

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the application configuration.
type MainConfig struct {
	// =========================================================================
	// PATHS
	// =========================================================================

	// BaseDir resolves every relative path below.
	// Default: the directory of the configuration file, else "."
	BaseDir string `yaml:"base_dir"`

	// TemplatePath overrides the embedded DANFSe template.
	// Default: "" (embedded template)
	TemplatePath string `yaml:"template_path"`

	// EstadosCSVPath is the state reference table (.csv or .xlsx).
	// Default: "{base}/assets/estados.csv"
	EstadosCSVPath string `yaml:"estados_csv_path"`

	// MunicipiosCSVPath is the municipality reference table (.csv or .xlsx).
	// Municipality logo paths in it are relative to its directory.
	// Default: "{base}/assets/municipios.csv"
	MunicipiosCSVPath string `yaml:"municipios_csv_path"`

	// ReferenceEncoding is the character set of CSV reference tables.
	// Valid values: "UTF-8", "ISO-8859-1", "Windows-1252"
	// Default: "UTF-8"
	ReferenceEncoding string `yaml:"reference_encoding"`

	// LogoNFSePath is the national NFSe logo.
	// Default: "{base}/assets/logos/nfse.png"
	LogoNFSePath string `yaml:"logo_nfse_path"`

	// =========================================================================
	// TYPOGRAPHY
	// =========================================================================

	// Font values are CSS fragments and keep their trailing ";".
	FontFamily     string `yaml:"font_family"`
	FontSize       string `yaml:"font_size"`
	FontSizeHeader string `yaml:"font_size_header"`
	FontSizeQRCode string `yaml:"font_size_qrcode"`

	// =========================================================================
	// RENDERING
	// =========================================================================

	// Environment is the default tax environment.
	// Valid values: "production", "homologation"
	// Default: "production"
	Environment string `yaml:"environment"`

	// =========================================================================
	// BATCH PROCESSING
	// =========================================================================

	// InputDir is scanned for *.xml documents.
	// Default: "{base}/input"
	InputDir string `yaml:"input_dir"`

	// OutputDir receives the generated PDF and HTML files.
	// Default: "{base}/output"
	OutputDir string `yaml:"output_dir"`

	// InputArchiveDir receives processed documents. Empty disables archival.
	InputArchiveDir string `yaml:"input_archive_dir"`

	// OutputNameFormat names the PDF files.
	// Placeholders:
	//   {numero}    - NFSe number
	//   {chave}     - Access key
	//   {uuid}      - A random UUID
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
	// Default: "Danfe_{numero}.pdf"
	OutputNameFormat string `yaml:"output_name_format"`

	// WriteHTML also writes the markup next to each PDF.
	WriteHTML bool `yaml:"write_html"`

	// MaxConcurrency bounds the number of documents rendered at once.
	// Default: 4
	MaxConcurrency int `yaml:"max_concurrency"`

	// =========================================================================
	// LOGGING
	// =========================================================================

	// LogLevel: "debug", "info", "warn", "error". Default: "info"
	LogLevel string `yaml:"log_level"`

	// LogFormat: "console" or "json". Default: "console"
	LogFormat string `yaml:"log_format"`

	// LogFile is an extra log destination. Default: "" (stderr only)
	LogFile string `yaml:"log_file"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// LoadMainConfig loads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The configuration file. Empty means DefaultConfigFile in the
//     working directory; if that file does not exist, defaults are used.
//
// RETURNS:
//   - The configuration with defaults applied and paths resolved.
//   - An error if an explicitly named file cannot be read, the YAML is
//     invalid, or Validate fails.
func LoadMainConfig(configPath string) (*MainConfig, error) {
	explicit := configPath != ""
	if !explicit {
		configPath = DefaultConfigFile
	}

	var config MainConfig
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		if config.BaseDir == "" {
			config.BaseDir = filepath.Dir(configPath)
		}
	case !explicit && errors.Is(err, os.ErrNotExist):
		config.BaseDir = "."
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	applyMainConfigDefaults(&config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

// Default returns the configuration used when no file exists, rooted at
// baseDir.
func Default(baseDir string) *MainConfig {
	config := &MainConfig{BaseDir: baseDir}
	applyMainConfigDefaults(config)
	return config
}

// applyMainConfigDefaults sets default values for any unset option and
// resolves relative paths against BaseDir.
func applyMainConfigDefaults(config *MainConfig) {
	if config.BaseDir == "" {
		config.BaseDir = "."
	}

	defaults := render.DefaultOptions()
	setDefault(&config.EstadosCSVPath, filepath.Join("assets", "estados.csv"))
	setDefault(&config.MunicipiosCSVPath, filepath.Join("assets", "municipios.csv"))
	setDefault(&config.ReferenceEncoding, "UTF-8")
	setDefault(&config.LogoNFSePath, filepath.Join("assets", "logos", "nfse.png"))
	setDefault(&config.FontFamily, defaults.FontFamily)
	setDefault(&config.FontSize, defaults.FontSize)
	setDefault(&config.FontSizeHeader, defaults.FontSizeHeader)
	setDefault(&config.FontSizeQRCode, defaults.FontSizeQRCode)
	setDefault(&config.Environment, render.Production.String())
	setDefault(&config.InputDir, "input")
	setDefault(&config.OutputDir, "output")
	setDefault(&config.OutputNameFormat, "Danfe_{numero}.pdf")
	setDefault(&config.LogLevel, "info")
	setDefault(&config.LogFormat, "console")
	if config.MaxConcurrency == 0 {
		config.MaxConcurrency = 4
	}

	for _, p := range []*string{
		&config.TemplatePath,
		&config.EstadosCSVPath,
		&config.MunicipiosCSVPath,
		&config.LogoNFSePath,
		&config.InputDir,
		&config.OutputDir,
		&config.InputArchiveDir,
		&config.LogFile,
	} {
		*p = config.Resolve(*p)
	}
}

func setDefault(field *string, value string) {
	if strings.TrimSpace(*field) == "" {
		*field = value
	}
}

// Resolve makes path absolute against BaseDir. Empty and absolute paths are
// returned unchanged.
func (c *MainConfig) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.BaseDir, path)
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the enumerated settings. Paths are not checked here;
// missing reference tables surface when the registry is initialized.
func (c *MainConfig) Validate() error {
	var errs []error

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level %q must be one of debug, info, warn, error", c.LogLevel))
	}

	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log_format %q must be console or json", c.LogFormat))
	}

	if _, err := render.ParseEnvironment(c.Environment); err != nil {
		errs = append(errs, fmt.Errorf("environment: %w", err))
	}

	if !csvparser.SupportedEncoding(c.ReferenceEncoding) {
		errs = append(errs, fmt.Errorf("reference_encoding %q is not supported", c.ReferenceEncoding))
	}

	if c.MaxConcurrency < 1 {
		errs = append(errs, fmt.Errorf("max_concurrency must be at least 1, got %d", c.MaxConcurrency))
	}

	if !strings.Contains(c.OutputNameFormat, "{") {
		errs = append(errs, fmt.Errorf("output_name_format %q has no placeholder; every document would overwrite the last", c.OutputNameFormat))
	}

	return errors.Join(errs...)
}

// =============================================================================
// DERIVED SETTINGS
// =============================================================================

// DefaultEnvironment returns the parsed Environment setting.
func (c *MainConfig) DefaultEnvironment() render.Environment {
	env, _ := render.ParseEnvironment(c.Environment)
	return env
}

// RendererOptions returns the render.Options described by the configuration.
// Municipality logos resolve relative to the municipality table.
func (c *MainConfig) RendererOptions() render.Options {
	return render.Options{
		TemplatePath:   c.TemplatePath,
		NFSeLogoPath:   c.LogoNFSePath,
		LogoBaseDir:    filepath.Dir(c.MunicipiosCSVPath),
		FontFamily:     c.FontFamily,
		FontSize:       c.FontSize,
		FontSizeHeader: c.FontSizeHeader,
		FontSizeQRCode: c.FontSizeQRCode,
	}
}

// EnsureDirectories creates the output and archive directories.
func (c *MainConfig) EnsureDirectories() error {
	for _, dir := range []string{c.OutputDir, c.InputArchiveDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
