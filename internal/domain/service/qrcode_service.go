package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePickupQR encodes an order code into a PNG shown at the pickup counter.
	GeneratePickupQR(orderCode string) ([]byte, error)

	// ParsePickupQR extracts the order code from scanned QR content.
	ParsePickupQR(qrData string) (string, error)
}
