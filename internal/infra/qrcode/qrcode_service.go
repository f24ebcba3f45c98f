package qrcode

import (
	"fmt"
	"regexp"
	"strings"

	"canteen/internal/domain/entity"
	"canteen/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

// pickupScheme prefixes the content of every pickup QR code so foreign codes are rejected.
const pickupScheme = "canteen:pickup:"

var orderCodePattern = regexp.MustCompile(`^` + entity.OrderCodePrefix + `[0-9A-Z]{9}$`)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
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

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePickupQR renders orderCode as a PNG.
func (s *qrcodeService) GeneratePickupQR(orderCode string) ([]byte, error) {
	if !orderCodePattern.MatchString(orderCode) {
		return nil, fmt.Errorf("invalid order code: %q", orderCode)
	}

	qrCode, err := qrcode.New(pickupScheme+orderCode, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParsePickupQR extracts the order code from scanned content. A bare order code typed in by
// hand is accepted too.
func (s *qrcodeService) ParsePickupQR(qrData string) (string, error) {
	code := strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(qrData), pickupScheme))
	if !orderCodePattern.MatchString(code) {
		return "", fmt.Errorf("invalid pickup code: %q", qrData)
	}

	return code, nil
}
