package leads

// QuoteRequest is the contact-form payload. It lives for exactly one
// request: parsed, validated, turned into an email, then discarded. Nothing
// persists it.
type QuoteRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Postcode      string `json:"postcode"`
	PropertyType  string `json:"propertyType"`
	Rooms         string `json:"rooms,omitempty"`
	PreferredDate string `json:"preferredDate,omitempty"`
	Message       string `json:"message,omitempty"`
}

// Result is the success response body for a submitted quote request.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	LeadID  string `json:"leadId,omitempty"`
}

// Property type options offered by the form.
const (
	PropertyFlat         = "Flat/Apartment"
	PropertyTerraced     = "Terraced House"
	PropertySemiDetached = "Semi-Detached House"
	PropertyDetached     = "Detached House"
	PropertyCommercial   = "Commercial Property"
	PropertyOther        = "Other"
)

// PropertyTypes in form display order.
var PropertyTypes = []string{
	PropertyFlat,
	PropertyTerraced,
	PropertySemiDetached,
	PropertyDetached,
	PropertyCommercial,
	PropertyOther,
}
