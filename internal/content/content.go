// Package content holds the copy and data tables the pages are built from.
package content

// Company is the contact and identity block shown in the footer and on
// the contact page
type Company struct {
	Name     string `json:"name" yaml:"name"`
	Short    string `json:"short" yaml:"short"`
	Tagline  string `json:"tagline" yaml:"tagline"`
	Address  string `json:"address" yaml:"address"`
	City     string `json:"city" yaml:"city"`
	Email    string `json:"email" yaml:"email"`
	Phone    string `json:"phone" yaml:"phone"`
	WhatsApp string `json:"whatsapp" yaml:"whatsapp"`
	Founded  int    `json:"founded" yaml:"founded"`
}

// WhatsAppURL is the chat deep link for the company number
func (c Company) WhatsAppURL() string {
	digits := make([]byte, 0, len(c.WhatsApp))
	for i := 0; i < len(c.WhatsApp); i++ {
		if ch := c.WhatsApp[i]; ch >= '0' && ch <= '9' {
			digits = append(digits, ch)
		}
	}
	return "https://wa.me/" + string(digits)
}

// NavLink is an entry in the navbar and the footer's Explore column
type NavLink struct {
	Label string `json:"label" yaml:"label"`
	Path  string `json:"path" yaml:"path"`
}

// Service is a home page service card
type Service struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon" yaml:"icon"`
}

// Capability is a row on the services page
type Capability struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Tags        []string `json:"tags" yaml:"tags"`
	Image       string   `json:"image" yaml:"image"`
	Icon        string   `json:"icon" yaml:"icon"`
}

// Graphic names the decoration drawn beside an accordion item
type Graphic string

const (
	GraphicGlobe   Graphic = "globe"
	GraphicScanner Graphic = "scanner"
	GraphicChip    Graphic = "chip"
)

// Feature is an item in the home page accordion
type Feature struct {
	ID          int     `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Subtitle    string  `json:"subtitle" yaml:"subtitle"`
	Description string  `json:"description" yaml:"description"`
	Icon        string  `json:"icon" yaml:"icon"`
	Graphic     Graphic `json:"graphic" yaml:"graphic"`
}

// Highlight is a small icon + caption pair
type Highlight struct {
	Icon  string
	Title string
	Note  string
}

// Card is one tile of the about page grid
type Card struct {
	Title  string
	Body   string
	Icon   string
	Accent bool
	Wide   bool
}

// Stat is a headline number
type Stat struct {
	Label string
	Value string
}

// About is the about page copy. Story is rendered HTML.
type About struct {
	Eyebrow    string
	Headline   string
	Accent     string
	Lead       string
	Section    string
	Story      string
	Highlights []Highlight
	Image      string
	ImageAlt   string
	Location   string
	Cards      []Card
	Stats      []Stat
}

// Social is a footer profile link
type Social struct {
	Label string
	URL   string
	Icon  string
}

// Footer is the footer copy beyond the company block
type Footer struct {
	Badge    string
	Headline []string
	CTA      NavLink
	Blurb    string
	Socials  []Social
	Legal    []NavLink
	Status   string
}

// Site is every table the pages read
type Site struct {
	Company      Company
	Nav          []NavLink
	Services     []Service
	Capabilities []Capability
	Features     []Feature
	About        About
	Footer       Footer
}

// Link returns the nav entry for path
func (s *Site) Link(path string) (NavLink, bool) {
	for _, l := range s.Nav {
		if l.Path == path {
			return l, true
		}
	}
	return NavLink{}, false
}

// DefaultFeature is the accordion item open on first render
const DefaultFeature = 1

func unsplash(id, width string) string {
	return "https://images.unsplash.com/" + id + "?q=80&w=" + width + "&auto=format&fit=crop"
}

// Default returns the built-in copy with the about story left unrendered.
// Use Load for a ready site.
func Default() *Site {
	company := Company{
		Name:     "Korden Technologies",
		Short:    "KORDEN",
		Tagline:  "Bridging the gap between global innovation and local manufacturing.",
		Address:  "1204, Tech Park, Andheri East, Mumbai, Maharashtra 400093",
		City:     "Mumbai, IN",
		Email:    "connect@korden.tech",
		Phone:    "+91 98765 43210",
		WhatsApp: "+91 98765 43210",
		Founded:  2024,
	}

	nav := []NavLink{
		{Label: "Home", Path: "/"},
		{Label: "About", Path: "/about"},
		{Label: "Services", Path: "/services"},
		{Label: "Products", Path: "/products"},
		{Label: "Contact", Path: "/contact"},
	}

	return &Site{
		Company: company,
		Nav:     nav,
		Services: []Service{
			{ID: "s1", Title: "Global Sourcing", Icon: "globe",
				Description: "We leverage a vast network of authorized distributors across Asia and Europe to procure hard-to-find electronic components."},
			{ID: "s2", Title: "PCB Assembly", Icon: "layers",
				Description: "End-to-end manufacturing solutions from prototype to mass production with state-of-the-art SMT lines."},
			{ID: "s3", Title: "Supply Chain Management", Icon: "factory",
				Description: "Just-in-time delivery systems designed to optimize your inventory costs and reduce production downtime."},
			{ID: "s4", Title: "Quality Testing", Icon: "search",
				Description: "Rigorous counterfeit detection and functional testing in our Mumbai lab ensuring 100% authentic components."},
		},
		Capabilities: []Capability{
			{Title: "Global Sourcing", Icon: "globe",
				Description: "We navigate the chaos of global supply chains. Access verified stockpiles across Asia and Europe, delivering obsolete and hard-to-find components.",
				Tags:        []string{"LOGISTICS", "ASIA_EU", "NETWORK"},
				Image:       unsplash("photo-1614064641938-3e8212d07141", "2070")},
			{Title: "PCB Fabrication", Icon: "layers",
				Description: "From rapid prototyping to mass production. IPC Class 2 & 3 standards ensuring every board is engineered for absolute reliability under extreme conditions.",
				Tags:        []string{"IPC_CLASS_3", "SMT", "ASSEMBLY"},
				Image:       unsplash("photo-1624378439575-d8705ad7ae80", "2070")},
			{Title: "QA Laboratory", Icon: "shield-check",
				Description: "Trust is good, verification is non-negotiable. Our in-house lab performs X-ray inspection and heated chemical testing to ensure 100% authenticity.",
				Tags:        []string{"X-RAY", "TESTING", "ISO_9001"},
				Image:       unsplash("photo-1576086213369-97a306d36557", "2070")},
			{Title: "Rapid Prototyping", Icon: "zap",
				Description: "Speed is the currency of the future. 72-hour turnaround for critical component kits and initial board layouts to help you beat the competition.",
				Tags:        []string{"FAST_TRACK", "R&D", "SPRINT"},
				Image:       unsplash("photo-1550751827-4bd374c3f58b", "2070")},
		},
		Features: []Feature{
			{ID: 1, Title: "Global Network", Subtitle: "Borderless Sourcing", Icon: "globe", Graphic: GraphicGlobe,
				Description: "Access a vast, resilient network of tier-1 manufacturers across Asia and Europe. We eliminate regional bottlenecks and ensure continuous supply even in volatile markets."},
			{ID: 2, Title: "Quality Assured", Subtitle: "Zero Compromise", Icon: "shield-check", Graphic: GraphicScanner,
				Description: "Rigorous anti-counterfeit testing in our certified labs guarantees 100% authenticity. From microscopic inspection to functional testing, we verify everything."},
			{ID: 3, Title: "Tech Expertise", Subtitle: "Engineering First", Icon: "cpu", Graphic: GraphicChip,
				Description: "Our engineers assist with design-in integration, optimizing your BOM costs. We don't just supply parts; we help you build better products."},
		},
		About: About{
			Eyebrow:  "The Engine of Innovation",
			Headline: "We aren't just distributing",
			Accent:   "we are architecting.",
			Lead:     "Architecting the supply chain for India's technological renaissance. From Mumbai to the world.",
			Section:  "Beyond Distribution",
			Highlights: []Highlight{
				{Icon: "cpu", Title: "Authentic Parts", Note: "100% Verified Sourcing"},
				{Icon: "globe", Title: "Global Network", Note: "Asian Market Access"},
			},
			Image:    unsplash("photo-1570168007204-dfb528c6958f", "1935"),
			ImageAlt: "Mumbai Skyline Architecture",
			Location: "Andheri East, Mumbai",
			Cards: []Card{
				{Title: "Our Mission", Icon: "target", Accent: true, Wide: true,
					Body: "To accelerate electronic hardware development in India by eliminating friction in component procurement."},
				{Title: "Vision 2030", Icon: "trending-up",
					Body: "Becoming the most trusted digitally-integrated supply chain partner in the Asian ecosystem."},
				{Title: "Expert Team", Icon: "users",
					Body: "Engineers & logistics pros working 24/7 to solve your procurement challenges."},
				{Title: "Agile Logistics", Icon: "zap", Accent: true,
					Body: "Custom bonded warehousing networks and express delivery."},
			},
			Stats: []Stat{
				{Label: "Components Shipped", Value: "5M+"},
				{Label: "Happy Clients", Value: "500+"},
				{Label: "Global Partners", Value: "12"},
				{Label: "Support Active", Value: "24/7"},
			},
		},
		Footer: Footer{
			Badge:    "Future Ready",
			Headline: []string{"Scale Your", "VISION"},
			CTA:      NavLink{Label: "Start a Project", Path: "/contact"},
			Blurb:    company.Tagline,
			Socials: []Social{
				{Label: "LinkedIn", URL: "https://www.linkedin.com", Icon: "linkedin"},
				{Label: "Twitter", URL: "https://twitter.com", Icon: "twitter"},
				{Label: "Instagram", URL: "https://www.instagram.com", Icon: "instagram"},
			},
			Legal: []NavLink{
				{Label: "Privacy Policy", Path: "#"},
				{Label: "Terms of Service", Path: "#"},
				{Label: "Cookie Settings", Path: "#"},
			},
			Status: "Systems Nominal",
		},
	}
}
