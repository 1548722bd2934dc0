package sourcetrust

// Source holds the transparency data tracked for a news outlet
type Source struct {
	Name        string
	Bias        string
	Credibility string
	Description string
}

type entry struct {
	domain string
	source Source
}

var unknownSource = Source{
	Name:        "Unknown Source",
	Bias:        "unknown",
	Credibility: "unknown",
	Description: "Source credibility not yet evaluated",
}

// registry is ordered so partial matches resolve the same way every time
var registry = []entry{
	// major international sources
	{"bbc.com", Source{"BBC News", "center", "high", "British public broadcaster known for factual reporting"}},
	{"reuters.com", Source{"Reuters", "center", "high", "International wire service with strict editorial standards"}},
	{"apnews.com", Source{"Associated Press", "center", "high", "Non-profit news cooperative, highly factual"}},
	{"npr.org", Source{"NPR", "center-left", "high", "US public radio network with strong fact-checking"}},
	{"theguardian.com", Source{"The Guardian", "center-left", "high", "UK broadsheet with investigative journalism focus"}},
	{"nytimes.com", Source{"The New York Times", "center-left", "high", "Major US newspaper with extensive fact-checking"}},
	{"washingtonpost.com", Source{"Washington Post", "center-left", "high", "US newspaper known for political coverage"}},
	{"wsj.com", Source{"Wall Street Journal", "center-right", "high", "Business-focused US newspaper"}},
	{"economist.com", Source{"The Economist", "center", "high", "UK news magazine with global perspective"}},
	{"cnn.com", Source{"CNN", "center-left", "medium", "24-hour US news network"}},
	{"foxnews.com", Source{"Fox News", "right", "medium", "US cable news with conservative perspective"}},
	{"msnbc.com", Source{"MSNBC", "left", "medium", "US cable news with progressive perspective"}},
	{"aljazeera.com", Source{"Al Jazeera", "center-left", "high", "Qatar-based international news network"}},

	// Indian news sources
	{"thehindu.com", Source{"The Hindu", "center-left", "high", "Major Indian English-language newspaper"}},
	{"indianexpress.com", Source{"Indian Express", "center", "high", "Indian English-language daily newspaper"}},
	{"timesofindia.indiatimes.com", Source{"Times of India", "center", "medium", "Largest-selling English newspaper in India"}},
	{"hindustantimes.com", Source{"Hindustan Times", "center", "medium", "Major Indian English-language newspaper"}},
	{"ndtv.com", Source{"NDTV", "center-left", "high", "Indian television news network"}},
	{"indiatoday.in", Source{"India Today", "center", "medium", "Indian news magazine and website"}},
	{"news18.com", Source{"News18", "center-right", "medium", "Indian news network"}},
	{"zeenews.india.com", Source{"Zee News", "center-right", "medium", "Indian Hindi news channel"}},
	{"aajtak.in", Source{"Aaj Tak", "center-right", "medium", "Indian Hindi news channel"}},
	{"livemint.com", Source{"Mint", "center", "high", "Indian business newspaper"}},
	{"economictimes.indiatimes.com", Source{"Economic Times", "center", "high", "Indian financial newspaper"}},
	{"scroll.in", Source{"Scroll.in", "center-left", "high", "Indian digital news publication"}},
	{"thewire.in", Source{"The Wire", "center-left", "high", "Indian non-profit news publication"}},
	{"opindia.com", Source{"OpIndia", "right", "low", "Indian right-wing news website"}},
	{"swarajyamag.com", Source{"Swarajya", "right", "medium", "Indian right-wing magazine"}},

	// Marathi news sources
	{"lokmat.com", Source{"Lokmat", "center", "medium", "Marathi language newspaper from Maharashtra"}},
	{"loksatta.com", Source{"Loksatta", "center", "high", "Marathi daily newspaper"}},
	{"maharashtratimes.com", Source{"Maharashtra Times", "center", "medium", "Marathi language newspaper"}},
	{"divyamarathi.bhaskar.com", Source{"Divya Marathi", "center", "medium", "Marathi language newspaper"}},
	{"abpmajha.abplive.in", Source{"ABP Majha", "center", "medium", "Marathi news channel"}},

	// fact-checking sources
	{"snopes.com", Source{"Snopes", "center", "high", "Fact-checking website"}},
	{"politifact.com", Source{"PolitiFact", "center", "high", "Political fact-checking website"}},
	{"factcheck.org", Source{"FactCheck.org", "center", "high", "Non-partisan fact-checking organization"}},
	{"altnews.in", Source{"Alt News", "center", "high", "Indian fact-checking website"}},
	{"boomlive.in", Source{"BOOM", "center", "high", "Indian fact-checking organization"}},
}

var biasColors = map[string]string{
	"left":         "#3b82f6",
	"center-left":  "#06b6d4",
	"center":       "#10b981",
	"center-right": "#f59e0b",
	"right":        "#ef4444",
	"unknown":      "#6b7280",
}

var credibilityColors = map[string]string{
	"high":    "#10b981",
	"medium":  "#f59e0b",
	"low":     "#ef4444",
	"unknown": "#6b7280",
}

var biasLabels = map[string]string{
	"left":         "Left-Leaning",
	"center-left":  "Center-Left",
	"center":       "Centrist",
	"center-right": "Center-Right",
	"right":        "Right-Leaning",
	"unknown":      "Unknown Bias",
}

var credibilityLabels = map[string]string{
	"high":    "High Credibility",
	"medium":  "Medium Credibility",
	"low":     "Low Credibility",
	"unknown": "Unverified",
}
