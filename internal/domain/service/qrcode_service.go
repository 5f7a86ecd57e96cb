package service

// QRCodeService renders tracking QR codes for applications.
type QRCodeService interface {
	// GenerateTrackingQR returns a PNG encoding the public status URL of the application number.
	GenerateTrackingQR(applicationNumber string) ([]byte, error)

	// TrackingURL returns the public status URL encoded in the QR code.
	TrackingURL(applicationNumber string) string
}
