// Package industry holds the fixed per-industry lookup tables. The tables
// are read-only and injected into the components that consult them.
package industry

// Site is a known business website worth scanning for an industry.
type Site struct {
	Name string
	URL  string
}

// Config describes one supported industry vertical.
type Config struct {
	SearchQuery   string   // template; {location} is substituted at scan time
	Keywords      []string
	RealWebsites  []Site
	NameTemplates []string // plausible business names for demo leads
}

// configs is the canonical industry table.
var configs = map[string]Config{
	"dental": {
		SearchQuery: "best dental {location}",
		Keywords:    []string{"dental implants", "teeth whitening", "cosmetic dentistry"},
		RealWebsites: []Site{
			{Name: "Aspen Dental", URL: "https://www.aspendental.com"},
			{Name: "Western Dental", URL: "https://www.westerndental.com"},
			{Name: "Coast Dental", URL: "https://www.coastdental.com"},
		},
		NameTemplates: []string{
			"Smile Perfect Dental", "Bright Now Dentistry", "Family Dental Care",
			"Modern Dental Solutions", "Elite Dental Group",
		},
	},
	"mortgage": {
		SearchQuery: "mortgage lenders {location}",
		Keywords:    []string{"home loan", "refinance", "mortgage rates"},
		RealWebsites: []Site{
			{Name: "Rocket Mortgage", URL: "https://www.rocketmortgage.com"},
			{Name: "LoanDepot", URL: "https://www.loandepot.com"},
			{Name: "Better Mortgage", URL: "https://www.better.com"},
		},
		NameTemplates: []string{
			"Premier Mortgage Solutions", "Home Loan Experts",
			"First Rate Mortgage", "Capital Lending Group",
		},
	},
	"lawyer": {
		SearchQuery: "best attorneys {location}",
		Keywords:    []string{"personal injury lawyer", "divorce attorney", "legal defense"},
		RealWebsites: []Site{
			{Name: "Morgan & Morgan", URL: "https://www.forthepeople.com"},
			{Name: "LegalZoom", URL: "https://www.legalzoom.com"},
			{Name: "Avvo", URL: "https://www.avvo.com"},
		},
		NameTemplates: []string{
			"Justice Law Partners", "Elite Legal Defense",
			"Premier Law Group", "City Law Associates",
		},
	},
	"realestate": {
		SearchQuery: "real estate agents {location}",
		Keywords:    []string{"realtor", "property agents", "home sales"},
		RealWebsites: []Site{
			{Name: "Zillow", URL: "https://www.zillow.com"},
			{Name: "Realtor.com", URL: "https://www.realtor.com"},
			{Name: "Redfin", URL: "https://www.redfin.com"},
		},
		NameTemplates: []string{
			"Premier Properties", "Elite Realty Group",
			"Dream Home Realty", "City Real Estate Partners",
		},
	},
	"insurance": {
		SearchQuery: "insurance companies {location}",
		Keywords:    []string{"auto insurance", "home insurance", "life insurance"},
		RealWebsites: []Site{
			{Name: "Geico", URL: "https://www.geico.com"},
			{Name: "State Farm", URL: "https://www.statefarm.com"},
			{Name: "Progressive", URL: "https://www.progressive.com"},
		},
		NameTemplates: []string{
			"Secure Insurance Solutions", "Trusted Coverage Inc",
			"Premier Protection", "Family Insurance Group",
		},
	},
}

// Lookup returns the configuration for an industry key.
func Lookup(key string) (Config, bool) {
	cfg, ok := configs[key]
	return cfg, ok
}

// Keys lists the supported industry keys.
func Keys() []string {
	return []string{"dental", "mortgage", "lawyer", "realestate", "insurance"}
}
