package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

// TrackingQRGenerator encodes the public tracking URL of an order so a
// printed receipt can be scanned.
type TrackingQRGenerator struct {
	BaseURL string
}

func (g TrackingQRGenerator) Generate(orderID string) ([]byte, error) {
	return qrcode.Encode(fmt.Sprintf("%s/track/%s", g.BaseURL, orderID), qrcode.Medium, 256)
}

var _ QRGenerator = TrackingQRGenerator{}
