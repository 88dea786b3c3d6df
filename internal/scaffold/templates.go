package scaffold

// Template describes one project type offered by the create command.
type Template struct {
	Key         string
	Name        string
	Description string
	Features    []string
	Estimate    string
}

// Catalog returns the built-in project templates in display order.
func Catalog() []Template {
	return []Template{
		{
			Key:         "ecommerce",
			Name:        "E-commerce",
			Description: "Complete online store with catalog, cart, and checkout",
			Features:    []string{"Product catalog", "Shopping cart", "Payment flow", "Admin panel"},
			Estimate:    "2-3 weeks",
		},
		{
			Key:         "landing",
			Name:        "Landing Page",
			Description: "Modern, responsive landing page",
			Features:    []string{"Hero section", "Services", "Testimonials", "Contact form"},
			Estimate:    "3-5 days",
		},
		{
			Key:         "dashboard",
			Name:        "Dashboard",
			Description: "Admin panel with data management",
			Features:    []string{"Authentication", "Full CRUD", "Charts", "Reports"},
			Estimate:    "1-2 weeks",
		},
		{
			Key:         "api",
			Name:        "REST API",
			Description: "Robust, scalable backend API",
			Features:    []string{"REST endpoints", "JWT authentication", "Documentation", "Rate limiting"},
			Estimate:    "1 week",
		},
	}
}

// Lookup finds a template by key.
func Lookup(key string) (Template, bool) {
	for _, t := range Catalog() {
		if t.Key == key {
			return t, true
		}
	}
	return Template{}, false
}
