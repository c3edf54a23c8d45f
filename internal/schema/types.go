// Package schema produces schema.org JSON-LD documents for the page
// rendering layer. Property names and nesting follow schema.org exactly
// because the consumer is search-engine crawlers, not our own code: renaming
// a field here silently breaks rich results.
package schema

// Context is the JSON-LD @context value on every top-level document.
const Context = "https://schema.org"

type PostalAddress struct {
	Type            string `json:"@type"`
	StreetAddress   string `json:"streetAddress,omitempty"`
	AddressLocality string `json:"addressLocality,omitempty"`
	AddressRegion   string `json:"addressRegion,omitempty"`
	PostalCode      string `json:"postalCode,omitempty"`
	AddressCountry  string `json:"addressCountry,omitempty"`
}

type GeoCoordinates struct {
	Type      string  `json:"@type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AggregateRating carries its numbers as strings. That is deliberate: the
// established structured-data consumers of this site expect string-typed
// rating values, so the typing is part of the output contract.
type AggregateRating struct {
	Type        string `json:"@type"`
	RatingValue string `json:"ratingValue"`
	ReviewCount string `json:"reviewCount"`
	BestRating  string `json:"bestRating"`
}

type Organization struct {
	Context         string          `json:"@context"`
	Type            string          `json:"@type"`
	ID              string          `json:"@id"`
	Name            string          `json:"name"`
	URL             string          `json:"url"`
	Logo            string          `json:"logo"`
	Description     string          `json:"description,omitempty"`
	Telephone       string          `json:"telephone,omitempty"`
	Email           string          `json:"email,omitempty"`
	Address         PostalAddress   `json:"address"`
	AreaServed      string          `json:"areaServed"`
	PriceRange      string          `json:"priceRange"`
	AggregateRating AggregateRating `json:"aggregateRating"`
}

type OpeningHoursSpecification struct {
	Type      string   `json:"@type"`
	DayOfWeek []string `json:"dayOfWeek"`
	Opens     string   `json:"opens"`
	Closes    string   `json:"closes"`
}

type LocalBusiness struct {
	Context                   string                      `json:"@context"`
	Type                      string                      `json:"@type"`
	ID                        string                      `json:"@id"`
	Name                      string                      `json:"name"`
	URL                       string                      `json:"url"`
	Telephone                 string                      `json:"telephone,omitempty"`
	Email                     string                      `json:"email,omitempty"`
	Image                     string                      `json:"image,omitempty"`
	Address                   PostalAddress               `json:"address"`
	Geo                       *GeoCoordinates             `json:"geo,omitempty"`
	AreaServed                string                      `json:"areaServed"`
	PriceRange                string                      `json:"priceRange,omitempty"`
	OpeningHoursSpecification []OpeningHoursSpecification `json:"openingHoursSpecification"`
}

// OrganizationRef is an @id reference to the organization node.
type OrganizationRef struct {
	ID string `json:"@id"`
}

type Service struct {
	Context     string          `json:"@context"`
	Type        string          `json:"@type"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	URL         string          `json:"url"`
	Provider    OrganizationRef `json:"provider"`
	AreaServed  string          `json:"areaServed"`
}

type Person struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// Rating keeps ratingValue numeric but the bounds as string literals,
// matching the existing pages field for field.
type Rating struct {
	Type        string `json:"@type"`
	RatingValue int    `json:"ratingValue"`
	BestRating  string `json:"bestRating"`
	WorstRating string `json:"worstRating"`
}

type ReviewedItem struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type Review struct {
	Context      string       `json:"@context"`
	Type         string       `json:"@type"`
	Author       Person       `json:"author"`
	ReviewRating Rating       `json:"reviewRating"`
	ReviewBody   string       `json:"reviewBody"`
	ItemReviewed ReviewedItem `json:"itemReviewed"`
}

type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

type FAQPage struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

type BreadcrumbList struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}
