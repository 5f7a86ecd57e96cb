package qrcode

import (
	"net/url"
	"strings"

	"bizease/config"
	"bizease/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	statusPathRoot = "/api/status/"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.QRCodeConfig) service.QRCodeService {
	size, levelName, baseURL := defaultSize, "M", ""
	if cfg != nil {
		if cfg.Size > 0 {
			size = cfg.Size
		}
		levelName = cfg.ErrorCorrectionLevel
		baseURL = cfg.BaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(levelName),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func recoveryLevel(name string) qrcode.RecoveryLevel {
	switch strings.ToUpper(name) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// TrackingURL returns the public status URL of an application number.
func (s *qrcodeService) TrackingURL(applicationNumber string) string {
	return s.baseURL + statusPathRoot + url.PathEscape(applicationNumber)
}

// GenerateTrackingQR renders the tracking URL as a PNG QR code.
func (s *qrcodeService) GenerateTrackingQR(applicationNumber string) ([]byte, error) {
	if applicationNumber == "" {
		return nil, errors.New("application number is required")
	}

	qrCode, err := qrcode.New(s.TrackingURL(applicationNumber), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
