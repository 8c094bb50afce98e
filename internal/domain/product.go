package domain

// Seller represents the storefront that lists a product
type Seller struct {
	Name          string `json:"name"`
	ID            string `json:"id"` // shop domain, derived from URL
	URL           string `json:"url"`
	City          string `json:"city"`
	IsOfficial    bool   `json:"isOfficial"`
	HasPowerBadge bool   `json:"hasPowerBadge"`
}

// Product is a single normalized search hit
type Product struct {
	Seller    Seller `json:"seller"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	Price     string `json:"price"` // formatted by the provider, e.g. "Rp150.000"
	Thumbnail string `json:"thumbnail"`
	Category  string `json:"category"`
	ID        string `json:"id"`
}

// SearchResult is the outcome of a keyword search
type SearchResult struct {
	Success    bool      `json:"success"`
	Keyword    string    `json:"keyword"`
	Suggestion string    `json:"suggestion"`
	Results    []Product `json:"results"`
}

// ProductDetail is the outcome of a product lookup
type ProductDetail struct {
	Success     bool   `json:"success"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       uint64 `json:"price"`
	Stock       uint64 `json:"stock"`
	StoreName   string `json:"storeName"`
	OriginalURL string `json:"originalUrl"`
	CreatedAt   string `json:"createdAt"`
}
