package services

import (
	"strings"

	"github.com/skip2/go-qrcode"

	"github.com/electoscope/electoscope/internal/errors"
)

// ShareService produces scannable links to the dashboard for other devices
// on the same network.
type ShareService struct {
	baseURL string
}

// NewShareService creates a share service for the given dashboard base URL.
func NewShareService(baseURL string) *ShareService {
	return &ShareService{baseURL: strings.TrimSuffix(baseURL, "/")}
}

// DashboardURL returns the URL the QR image encodes.
func (s *ShareService) DashboardURL() string {
	return s.baseURL
}

// QRImage renders the dashboard URL as a PNG QR code.
func (s *ShareService) QRImage() ([]byte, error) {
	if s.baseURL == "" {
		return nil, errors.Unavailable("dashboard URL not configured")
	}
	png, err := qrcode.Encode(s.baseURL, qrcode.Medium, 256)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "encode QR image")
	}
	return png, nil
}
