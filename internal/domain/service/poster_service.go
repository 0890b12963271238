package service

// PosterService defines the interface for generating printable QR posters
// that link to a published storefront.
type PosterService interface {
	// GeneratePoster renders a PNG QR poster for the given site URL.
	GeneratePoster(siteURL string) ([]byte, error)
}
