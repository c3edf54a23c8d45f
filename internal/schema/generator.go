package schema

import (
	"fmt"
	"net/url"
	"strconv"

	"northline-decorators/internal/site"
)

// Generator builds JSON-LD documents from the site content configuration.
// All methods are pure: same input, same output, no I/O.
type Generator struct {
	site *site.Site
}

func New(s *site.Site) *Generator {
	return &Generator{site: s}
}

// Organization returns the sitewide PaintingCompany node. Blank address
// fields are omitted rather than emitted as empty strings.
func (g *Generator) Organization() Organization {
	b := g.site.Business
	return Organization{
		Context:     Context,
		Type:        "PaintingCompany",
		ID:          g.site.URL + "#organization",
		Name:        b.Name,
		URL:         g.site.URL,
		Logo:        g.site.AbsoluteURL(b.LogoPath),
		Description: b.Description,
		Telephone:   b.Phone,
		Email:       b.Email,
		Address:     g.address(),
		AreaServed:  b.ServiceArea,
		PriceRange:  b.PriceRange,
		AggregateRating: AggregateRating{
			Type:        "AggregateRating",
			RatingValue: strconv.FormatFloat(b.AverageRating, 'f', -1, 64),
			ReviewCount: strconv.Itoa(b.ReviewCount),
			BestRating:  "5",
		},
	}
}

// LocalBusiness returns the generic business node with the two opening-hours
// entries (weekdays and Saturday). Sunday is closed and therefore absent.
// Callers needing an area-specific record compose it via BuildLocalBusiness.
func (g *Generator) LocalBusiness() LocalBusiness {
	b := g.site.Business
	hours := make([]OpeningHoursSpecification, 0, len(g.site.Hours))
	for _, h := range g.site.Hours {
		hours = append(hours, OpeningHoursSpecification{
			Type:      "OpeningHoursSpecification",
			DayOfWeek: h.Days,
			Opens:     h.Opens,
			Closes:    h.Closes,
		})
	}
	return LocalBusiness{
		Context:                   Context,
		Type:                      "LocalBusiness",
		ID:                        g.site.URL + "#localbusiness",
		Name:                      b.Name,
		URL:                       g.site.URL,
		Telephone:                 b.Phone,
		Email:                     b.Email,
		Image:                     g.site.AbsoluteURL(b.LogoPath),
		Address:                   g.address(),
		AreaServed:                b.ServiceArea,
		PriceRange:                b.PriceRange,
		OpeningHoursSpecification: hours,
	}
}

// LocalBusinessOverrides names the fields an area page may replace on the
// base LocalBusiness node. Nil/empty fields leave the base value in place.
type LocalBusinessOverrides struct {
	Name       string
	Address    *PostalAddress
	Geo        *GeoCoordinates
	AreaServed string
}

// BuildLocalBusiness applies overrides to a copy of base. base is passed by
// value, so the generic node is never mutated.
func BuildLocalBusiness(base LocalBusiness, o LocalBusinessOverrides) LocalBusiness {
	if o.Name != "" {
		base.Name = o.Name
	}
	if o.Address != nil {
		base.Address = *o.Address
	}
	if o.Geo != nil {
		base.Geo = o.Geo
	}
	if o.AreaServed != "" {
		base.AreaServed = o.AreaServed
	}
	return base
}

// LocalBusinessFor returns the per-postcode business node for an area page.
func (g *Generator) LocalBusinessFor(loc site.LocationDescriptor) LocalBusiness {
	b := g.site.Business
	return BuildLocalBusiness(g.LocalBusiness(), LocalBusinessOverrides{
		Name: fmt.Sprintf("%s - %s", b.Name, loc.Name),
		Address: &PostalAddress{
			Type:            "PostalAddress",
			AddressLocality: loc.Name,
			AddressRegion:   b.Region,
			PostalCode:      loc.Postcode,
			AddressCountry:  b.Country,
		},
		Geo: &GeoCoordinates{
			Type:      "GeoCoordinates",
			Latitude:  loc.Lat,
			Longitude: loc.Lng,
		},
		AreaServed: loc.Name,
	})
}

// ServiceInput is the per-page input to Service. URL must be absolute.
type ServiceInput struct {
	Name        string
	Description string
	URL         string
}

// Service returns the Service node for a service page, referencing the
// organization node by @id.
func (g *Generator) Service(in ServiceInput) (Service, error) {
	u, err := url.Parse(in.URL)
	if err != nil || !u.IsAbs() {
		return Service{}, fmt.Errorf("service url must be absolute, got %q", in.URL)
	}
	return Service{
		Context:     Context,
		Type:        "Service",
		Name:        in.Name,
		Description: in.Description,
		URL:         in.URL,
		Provider:    OrganizationRef{ID: g.site.URL + "#organization"},
		AreaServed:  g.site.Business.ServiceArea,
	}, nil
}

// Review maps one seeded review record. The rating range is the seed list's
// responsibility; no clamping happens here.
func (g *Generator) Review(r site.ReviewRecord) Review {
	return Review{
		Context: Context,
		Type:    "Review",
		Author:  Person{Type: "Person", Name: r.Author},
		ReviewRating: Rating{
			Type:        "Rating",
			RatingValue: r.Rating,
			BestRating:  "5",
			WorstRating: "1",
		},
		ReviewBody:   r.Quote,
		ItemReviewed: ReviewedItem{Type: "Service", Name: r.JobType},
	}
}

// FAQ maps the ordered entry list 1:1 onto an FAQPage. An empty input yields
// mainEntity: [] rather than null.
func (g *Generator) FAQ(faqs []site.FAQEntry) FAQPage {
	entities := make([]Question, 0, len(faqs))
	for _, f := range faqs {
		entities = append(entities, Question{
			Type: "Question",
			Name: f.Question,
			AcceptedAnswer: Answer{
				Type: "Answer",
				Text: f.Answer,
			},
		})
	}
	return FAQPage{
		Context:    Context,
		Type:       "FAQPage",
		MainEntity: entities,
	}
}

// BreadcrumbItem is one trail entry; URL must be absolute and the caller
// supplies items in crawl order.
type BreadcrumbItem struct {
	Name string
	URL  string
}

// Breadcrumbs returns a BreadcrumbList with 1-indexed contiguous positions.
// The input order is preserved; no sorting.
func (g *Generator) Breadcrumbs(items []BreadcrumbItem) BreadcrumbList {
	elements := make([]ListItem, 0, len(items))
	for i, it := range items {
		elements = append(elements, ListItem{
			Type:     "ListItem",
			Position: i + 1,
			Name:     it.Name,
			Item:     it.URL,
		})
	}
	return BreadcrumbList{
		Context:         Context,
		Type:            "BreadcrumbList",
		ItemListElement: elements,
	}
}

func (g *Generator) address() PostalAddress {
	b := g.site.Business
	return PostalAddress{
		Type:            "PostalAddress",
		StreetAddress:   b.StreetAddress,
		AddressLocality: b.Locality,
		AddressRegion:   b.Region,
		PostalCode:      b.Postcode,
		AddressCountry:  b.Country,
	}
}
