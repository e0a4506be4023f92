package service

import (
	"github.com/google/uuid"
)

// DeliverySlip identifies the supplier-scoped part of an order encoded on a delivery slip
type DeliverySlip struct {
	OrderID    uuid.UUID
	SupplierID uuid.UUID
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateDeliverySlipQR generates a PNG QR code for a supplier's share of an order
	GenerateDeliverySlipQR(slip DeliverySlip) ([]byte, error)

	// ParseDeliverySlipQR parses QR code data back into the slip it encodes
	ParseDeliverySlipQR(qrData string) (*DeliverySlip, error)
}
