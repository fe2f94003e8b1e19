package render

import (
	"encoding/base64"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// logoBase64 reads an image file as base64. Blank paths and unreadable files
// yield the transparent pixel.
func (r *Renderer) logoBase64(path string) string {
	if path == "" {
		return TransparentPixel
	}
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		r.logger.Debug("logo not available", zap.String("path", path), zap.Error(err))
		return TransparentPixel
	}
	return base64.StdEncoding.EncodeToString(data)
}

// municipioLogo returns the city hall logo for a registry logo path, relative
// to LogoBaseDir. Results are cached per path.
func (r *Renderer) municipioLogo(logoPath string) string {
	if logoPath == "" {
		return TransparentPixel
	}
	path := logoPath
	if !filepath.IsAbs(path) && r.opts.LogoBaseDir != "" {
		path = filepath.Join(r.opts.LogoBaseDir, path)
	}
	if cached, ok := r.logos.Load(path); ok {
		return cached.(string)
	}
	logo := r.logoBase64(path)
	r.logos.Store(path, logo)
	return logo
}
