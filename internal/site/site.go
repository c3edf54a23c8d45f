// Package site holds the static content configuration for the Northline
// Decorators website: the business profile, the service and area lists, FAQs
// and the review seed list. The value built by Default is loaded once at
// startup and shared read-only; nothing mutates it afterwards.
package site

import "strings"

// BusinessProfile is the single source of business facts used by the
// structured data generator and the notification email.
type BusinessProfile struct {
	Name            string
	LegalName       string
	Phone           string
	Email           string
	ServiceArea     string
	StreetAddress   string // often blank; omitted from schema output when empty
	Locality        string
	Region          string
	Postcode        string // often blank
	Country         string
	Description     string
	LogoPath        string
	AverageRating   float64
	ReviewCount     int
	YearsExperience int
	PriceRange      string
}

// ServiceDescriptor describes one of the six offered services. Slice order
// is the navigation display order.
type ServiceDescriptor struct {
	Slug  string
	Name  string
	Short string
	Icon  string
}

// LocationDescriptor describes one of the six served North London areas.
type LocationDescriptor struct {
	Slug     string
	Name     string
	Postcode string
	Lat      float64
	Lng      float64
}

type FAQEntry struct {
	Question string
	Answer   string
}

// FAQCategory groups FAQ entries for display; schema output flattens the
// groups in category order.
type FAQCategory struct {
	Name    string
	Entries []FAQEntry
}

// ReviewRecord is a seeded customer review. Ratings in the seed list are
// always within [1,5]; the schema generator relies on that.
type ReviewRecord struct {
	ID      string
	Author  string
	Area    string
	JobType string
	Rating  int
	Quote   string
}

// OpeningHours is one openingHoursSpecification entry.
type OpeningHours struct {
	Days   []string
	Opens  string
	Closes string
}

type Site struct {
	URL       string
	Business  BusinessProfile
	Services  []ServiceDescriptor
	Locations []LocationDescriptor
	FAQs      []FAQCategory
	Reviews   []ReviewRecord
	Hours     []OpeningHours
}

// AbsoluteURL joins a site-relative path onto the canonical site URL.
func (s *Site) AbsoluteURL(path string) string {
	if path == "" {
		return s.URL
	}
	return strings.TrimSuffix(s.URL, "/") + "/" + strings.TrimPrefix(path, "/")
}

// ServiceBySlug returns the service with the given slug, or nil.
func (s *Site) ServiceBySlug(slug string) *ServiceDescriptor {
	for i := range s.Services {
		if s.Services[i].Slug == slug {
			return &s.Services[i]
		}
	}
	return nil
}

// LocationBySlug returns the location with the given slug, or nil.
func (s *Site) LocationBySlug(slug string) *LocationDescriptor {
	for i := range s.Locations {
		if s.Locations[i].Slug == slug {
			return &s.Locations[i]
		}
	}
	return nil
}

// AllFAQs flattens the FAQ categories into a single ordered list.
func (s *Site) AllFAQs() []FAQEntry {
	out := make([]FAQEntry, 0)
	for _, cat := range s.FAQs {
		out = append(out, cat.Entries...)
	}
	return out
}

// Default builds the production content configuration.
func Default() *Site {
	return &Site{
		URL: "https://www.northlinedecorators.co.uk",
		Business: BusinessProfile{
			Name:            "Northline Decorators",
			LegalName:       "Northline Decorators Ltd",
			Phone:           "020 8340 1122",
			Email:           "info@northlinedecorators.co.uk",
			ServiceArea:     "North London",
			Locality:        "London",
			Region:          "Greater London",
			Country:         "GB",
			Description:     "Professional painters and decorators serving North London. Interior and exterior painting, wallpapering, plastering and commercial decorating with a 15-year track record.",
			LogoPath:        "/images/logo.png",
			AverageRating:   4.9,
			ReviewCount:     87,
			YearsExperience: 15,
			PriceRange:      "££",
		},
		Services: []ServiceDescriptor{
			{Slug: "interior-painting", Name: "Interior Painting", Short: "Walls, ceilings and feature finishes with full room preparation and dust-sheeted protection.", Icon: "🖌️"},
			{Slug: "exterior-painting", Name: "Exterior Painting", Short: "Render, masonry, fascias and front doors, weather-sealed for London conditions.", Icon: "🏠"},
			{Slug: "wallpapering", Name: "Wallpapering", Short: "Hanging, pattern matching and removal, including lining and feature walls.", Icon: "📐"},
			{Slug: "plastering-repairs", Name: "Plastering & Repairs", Short: "Skimming, patching and crack repair to leave a paint-ready surface.", Icon: "🧱"},
			{Slug: "woodwork-finishing", Name: "Woodwork & Joinery Finishing", Short: "Doors, skirting, sashes and staircases, primed, filled and finished.", Icon: "🚪"},
			{Slug: "commercial-decorating", Name: "Commercial Decorating", Short: "Shops, offices and communal areas, scheduled around your opening hours.", Icon: "🏢"},
		},
		Locations: []LocationDescriptor{
			{Slug: "crouch-end", Name: "Crouch End", Postcode: "N8", Lat: 51.5796, Lng: -0.1231},
			{Slug: "muswell-hill", Name: "Muswell Hill", Postcode: "N10", Lat: 51.5908, Lng: -0.1439},
			{Slug: "highgate", Name: "Highgate", Postcode: "N6", Lat: 51.5717, Lng: -0.1459},
			{Slug: "east-finchley", Name: "East Finchley", Postcode: "N2", Lat: 51.5874, Lng: -0.1650},
			{Slug: "finchley-central", Name: "Finchley Central", Postcode: "N3", Lat: 51.6010, Lng: -0.1932},
			{Slug: "north-finchley", Name: "North Finchley", Postcode: "N12", Lat: 51.6132, Lng: -0.1765},
		},
		FAQs: []FAQCategory{
			{
				Name: "Pricing & Quotes",
				Entries: []FAQEntry{
					{Question: "How much does it cost to paint a room?", Answer: "A standard double bedroom typically costs between £350 and £550 including materials, depending on the condition of the walls and the finish you choose. Every quote is fixed before we start."},
					{Question: "Are your quotes free?", Answer: "Yes. We visit, measure up and send a written fixed-price quote within 24 hours. There is no obligation and no call-out charge."},
					{Question: "Do you charge a deposit?", Answer: "No deposit for jobs under a week. Longer projects are invoiced in stages, agreed in writing before work begins."},
				},
			},
			{
				Name: "Process",
				Entries: []FAQEntry{
					{Question: "How long does a typical job take?", Answer: "A single room is usually finished in one to two days. A full three-bedroom house interior takes around two weeks including preparation and drying time."},
					{Question: "Do I need to move my furniture?", Answer: "No. We move furniture to the centre of each room and cover everything with clean dust sheets before any preparation starts."},
					{Question: "Are you insured?", Answer: "We carry £5 million public liability insurance and all work is guaranteed for two years."},
				},
			},
			{
				Name: "Materials",
				Entries: []FAQEntry{
					{Question: "Which paint brands do you use?", Answer: "We work with trade ranges from Dulux, Crown and Farrow & Ball as standard, and are happy to use any brand you specify."},
					{Question: "Can you help me choose colours?", Answer: "Yes. We bring sample pots to the quote visit and can paint test patches so you can see colours in your own light before deciding."},
				},
			},
		},
		Reviews: []ReviewRecord{
			{ID: "rev-001", Author: "Sarah M.", Area: "Crouch End", JobType: "Interior Painting", Rating: 5, Quote: "The team painted our entire ground floor in three days. Spotless finish and they left the house cleaner than they found it."},
			{ID: "rev-002", Author: "James T.", Area: "Muswell Hill", JobType: "Exterior Painting", Rating: 5, Quote: "Our Edwardian front was flaking badly. They stripped, repaired and repainted it and it looks brand new."},
			{ID: "rev-003", Author: "Priya K.", Area: "Highgate", JobType: "Wallpapering", Rating: 5, Quote: "Perfect pattern matching on a tricky William Morris print. Genuinely skilled decorators."},
			{ID: "rev-004", Author: "David L.", Area: "East Finchley", JobType: "Plastering & Repairs", Rating: 4, Quote: "Skimmed two ceilings and repaired cracked walls throughout. Tidy, punctual and fairly priced."},
			{ID: "rev-005", Author: "Emma W.", Area: "Finchley Central", JobType: "Interior Painting", Rating: 5, Quote: "Second time we've used Northline. Same high standard both times, and the quote was exactly what we paid."},
			{ID: "rev-006", Author: "Ols R.", Area: "North Finchley", JobType: "Commercial Decorating", Rating: 5, Quote: "They redecorated our cafe overnight across four nights so we never closed. Brilliant planning and finish."},
		},
		Hours: []OpeningHours{
			{Days: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}, Opens: "08:00", Closes: "18:00"},
			{Days: []string{"Saturday"}, Opens: "09:00", Closes: "15:00"},
			// Sunday closed: no entry.
		},
	}
}
