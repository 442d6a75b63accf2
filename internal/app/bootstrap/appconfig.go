// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level and format, CORS, and request body limits.
// AppConfig is everything specific to LessonHub.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// BootstrapAdminEmail names the one account treated as admin before its
	// record exists. Created/promoted at startup and honored by the admin
	// gate, so a fresh deployment is never locked out. Blank disables it.
	BootstrapAdminEmail string

	// SiteDomain is the frontend origin used for payment redirect URLs
	// (e.g., "https://lessonhub.app").
	SiteDomain string

	// Stripe configuration for the premium upgrade flow.
	StripeSecret       string // Stripe secret API key
	PremiumPriceAmount int64  // Lifetime premium price in BDT paisa
}
