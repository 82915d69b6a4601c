package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(restaurantID int) ([]byte, error)
}

// DefaultQRGenerator encodes a link to the restaurant's allergen view,
// printed on table cards.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Link(restaurantID int) string {
	return fmt.Sprintf("%s/menu.html?restaurant_id=%d", g.BaseURL, restaurantID)
}

func (g DefaultQRGenerator) Generate(restaurantID int) ([]byte, error) {
	return qrcode.Encode(g.Link(restaurantID), qrcode.Medium, 256)
}
