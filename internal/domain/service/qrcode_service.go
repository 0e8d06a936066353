package service

// QRCodeService renders share codes for published items.
type QRCodeService interface {
	// GenerateShareQR renders url as a PNG QR code
	GenerateShareQR(url string) ([]byte, error)
}
