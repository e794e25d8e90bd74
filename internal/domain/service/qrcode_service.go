package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GeneratePlaceListQR renders a QR code PNG pointing at the public
	// share URL of a place list.
	GeneratePlaceListQR(listID string) ([]byte, error)
}
