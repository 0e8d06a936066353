package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"album/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		in   string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"M", qrcode.Medium},
		{"q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
		{"", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.in))
		})
	}
}

func TestQRCodeService_GenerateShareQR(t *testing.T) {
	sizes := []int{128, 256, 512}

	for _, size := range sizes {
		svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: size, ErrorCorrectionLevel: "M"}})

		pngBytes, err := svc.GenerateShareQR("https://album.test/image/example.com/daniel/1709294400000.jpg")
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(pngBytes))
		require.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
	}
}

func TestQRCodeService_Defaults(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	assert.Equal(t, defaultSize, svc.(*qrcodeService).size)

	_, err := svc.GenerateShareQR("")
	assert.Error(t, err)
}
