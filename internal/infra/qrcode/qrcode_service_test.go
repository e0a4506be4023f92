package qrcode

import (
	"bytes"
	"encoding/json"
	"image/png"
	"testing"

	"supplyhub/config"
	"supplyhub/internal/domain/service"

	"github.com/google/uuid"
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
		{"Medium error correction", 256, "medium"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "highest"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, NewQRCodeService(tt.size, tt.errorCorrectionLevel))
		})
	}
}

func TestNew_WithoutConfigSection(t *testing.T) {
	svc, ok := New(&config.Config{}).(*qrcodeService)
	require.True(t, ok)
	assert.Equal(t, defaultSize, svc.size)
}

func TestQRCodeService_GenerateDeliverySlipQR(t *testing.T) {
	svc := NewQRCodeService(128, "M")

	pngBytes, err := svc.GenerateDeliverySlipQR(service.DeliverySlip{OrderID: uuid.New(), SupplierID: uuid.New()})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestQRCodeService_ParseDeliverySlipQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	orderID := uuid.New()
	supplierID := uuid.New()

	valid, err := json.Marshal(SlipData{OrderID: orderID.String(), SupplierID: supplierID.String(), Type: slipType})
	require.NoError(t, err)

	slip, err := svc.ParseDeliverySlipQR(string(valid))
	require.NoError(t, err)
	assert.Equal(t, orderID, slip.OrderID)
	assert.Equal(t, supplierID, slip.SupplierID)

	tests := []struct {
		name string
		data string
	}{
		{"invalid JSON", "not json"},
		{"wrong type", `{"order_id":"` + orderID.String() + `","supplier_id":"` + supplierID.String() + `","type":"subscription"}`},
		{"bad order id", `{"order_id":"nope","supplier_id":"` + supplierID.String() + `","type":"delivery_slip"}`},
		{"bad supplier id", `{"order_id":"` + orderID.String() + `","supplier_id":"nope","type":"delivery_slip"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseDeliverySlipQR(tt.data)
			assert.Error(t, err)
		})
	}
}
