// Package qrcode renders delivery slip QR codes.
package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"supplyhub/config"
	"supplyhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	slipType    = "delivery_slip"
	defaultSize = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// SlipData is the JSON payload encoded in a delivery slip QR code
type SlipData struct {
	OrderID    string `json:"order_id"`
	SupplierID string `json:"supplier_id"`
	Type       string `json:"type"`
}

// New builds the QR service from configuration, using defaults when the section is absent
func New(cfg *config.Config) service.QRCodeService {
	if cfg == nil || cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToLower(errorCorrectionLevel) {
	case "l", "low":
		level = qrcode.Low
	case "q", "high":
		level = qrcode.High
	case "h", "highest":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateDeliverySlipQR renders the slip payload as a PNG
func (s *qrcodeService) GenerateDeliverySlipQR(slip service.DeliverySlip) ([]byte, error) {
	jsonData, err := json.Marshal(SlipData{
		OrderID:    slip.OrderID.String(),
		SupplierID: slip.SupplierID.String(),
		Type:       slipType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseDeliverySlipQR decodes a scanned slip payload
func (s *qrcodeService) ParseDeliverySlipQR(qrData string) (*service.DeliverySlip, error) {
	var data SlipData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != slipType {
		return nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	orderID, err := uuid.Parse(data.OrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse order ID: %w", err)
	}

	supplierID, err := uuid.Parse(data.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse supplier ID: %w", err)
	}

	return &service.DeliverySlip{OrderID: orderID, SupplierID: supplierID}, nil
}
