// Package qrcode renders share QR codes for public place lists.
package qrcode

import (
	"fmt"
	"strings"

	"kuliner/config"
	"kuliner/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	level := qrcode.Medium
	baseURL := ""

	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = parseRecoveryLevel(cfg.QRCode.ErrorCorrectionLevel)
		baseURL = cfg.QRCode.BaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GeneratePlaceListQR generates a QR code PNG pointing at the public share
// URL of a place list.
func (s *qrcodeService) GeneratePlaceListQR(listID string) ([]byte, error) {
	shareURL := fmt.Sprintf("%s/placelist/%s", s.baseURL, listID)

	// Generate QR code
	qrCode, err := qrcode.New(shareURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// parseRecoveryLevel maps the configured letter to a recovery level.
func parseRecoveryLevel(errorCorrectionLevel string) qrcode.RecoveryLevel {
	switch errorCorrectionLevel {
	case "L":
		return qrcode.Low
	case "M":
		return qrcode.Medium
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}
