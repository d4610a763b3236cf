package order

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRGenerator renders the pickup reference shown at the collection counter.
type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(orderID string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/orders/%s/collect", g.BaseURL, orderID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
