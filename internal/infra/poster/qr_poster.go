// Package poster renders printable QR posters for published storefronts.
package poster

import (
	"fmt"

	"bizvistar/config"
	"bizvistar/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultPosterSize = 512

type qrPosterService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRPosterService creates a new QR poster service instance
func NewQRPosterService(cfg *config.Config) service.PosterService {
	size := defaultPosterSize
	levelName := ""
	if cfg != nil && cfg.Poster != nil {
		if cfg.Poster.Size > 0 {
			size = cfg.Poster.Size
		}
		levelName = cfg.Poster.ErrorCorrectionLevel
	}

	// Set error correction level
	var level qrcode.RecoveryLevel
	switch levelName {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrPosterService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePoster renders a PNG QR poster encoding the storefront URL.
func (s *qrPosterService) GeneratePoster(siteURL string) ([]byte, error) {
	if siteURL == "" {
		return nil, fmt.Errorf("site URL must not be empty")
	}

	qrCode, err := qrcode.New(siteURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
