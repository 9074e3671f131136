package services

import (
	"fmt"
	"net/url"

	"github.com/ArmanNagariya-Developer/azhari-attar/models"
)

// ShareLink is the outbound share hand-off: a prebuilt plain-text message and
// the WhatsApp deep link that carries it. Opening the link is the view's job;
// nothing comes back.
type ShareLink struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

// BuildProductShare formats the single-product enquiry message.
func BuildProductShare(p models.Product, phone, baseURL string) ShareLink {
	message := fmt.Sprintf("*%s*\n\n", p.Name) +
		fmt.Sprintf("*Price:* ₹%g\n", p.PriceINR) +
		fmt.Sprintf("*Category:* %s\n", p.Category) +
		fmt.Sprintf("*Fragrance Type:* %s\n", p.FragranceType) +
		fmt.Sprintf("*Size:* %d ML\n", p.ML) +
		fmt.Sprintf("*Description:* %s\n\n", p.Description) +
		fmt.Sprintf("*Product Image:* %s\n\n", p.Image) +
		fmt.Sprintf("*Shop Link:* %s/product/%d\n\n", baseURL, p.ID) +
		"I'm interested in this product! Please provide more details."

	return ShareLink{
		Message: message,
		URL:     fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(message)),
	}
}
