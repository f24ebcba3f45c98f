package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GeneratePickupQR(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")

			qrBytes, err := service.GeneratePickupQR("ORDER_ABC123XYZ")
			require.NoError(t, err)

			// PNG magic number
			require.Greater(t, len(qrBytes), 4)
			assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
		})
	}
}

func TestQRCodeService_GeneratePickupQR_InvalidCode(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GeneratePickupQR("ABC123")
	assert.ErrorContains(t, err, "invalid order code")
}

func TestQRCodeService_ParsePickupQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	tests := []struct {
		name    string
		data    string
		want    string
		wantErr bool
	}{
		{name: "scanned content", data: "canteen:pickup:ORDER_ABC123XYZ", want: "ORDER_ABC123XYZ"},
		{name: "typed code", data: " order_abc123xyz ", want: "ORDER_ABC123XYZ"},
		{name: "foreign QR code", data: "https://example.com", wantErr: true},
		{name: "short code", data: "canteen:pickup:ORDER_ABC", wantErr: true},
		{name: "empty", data: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := service.ParsePickupQR(tt.data)
			if tt.wantErr {
				assert.ErrorContains(t, err, "invalid pickup code")

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, code)
		})
	}
}
