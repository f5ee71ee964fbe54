package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"directory/config"
)

func qrConfig(size int, level, baseURL string) *config.Config {
	return &config.Config{
		QRCode: &config.QRCodeConfig{
			Size:                 size,
			ErrorCorrectionLevel: level,
			BaseURL:              baseURL,
		},
	}
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(qrConfig(256, tt.errorCorrectionLevel, "https://example.com"))
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateBusinessQR(t *testing.T) {
	service := NewQRCodeService(qrConfig(256, "M", "https://example.com/"))

	qrBytes, err := service.GenerateBusinessQR("great-coffee-roasters")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateBusinessQR_DifferentSizes(t *testing.T) {
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
			service := NewQRCodeService(qrConfig(tt.size, "M", "https://example.com"))

			qrBytes, err := service.GenerateBusinessQR("some-business")
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_DefaultsWithoutConfig(t *testing.T) {
	service := NewQRCodeService(nil)

	qrBytes, err := service.GenerateBusinessQR("some-business")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)
}
