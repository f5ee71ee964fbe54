package service

// QRCodeService generates QR codes for public business pages.
type QRCodeService interface {
	// GenerateBusinessQR renders a PNG QR code pointing at the public page
	// for the given business slug.
	GenerateBusinessQR(slug string) ([]byte, error)
}
