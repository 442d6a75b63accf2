// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for LessonHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, site_domain, etc.
//   - Environment variables: LESSONHUB_MONGO_URI, LESSONHUB_SITE_DOMAIN, etc.
//   - Command-line flags: --mongo_uri, --site_domain, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "lesson_database", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Admin bootstrap
	{Name: "bootstrap_admin_email", Default: "", Desc: "Email of the bootstrap admin user (promotes/creates on startup)"},

	// Payments
	{Name: "site_domain", Default: "http://localhost:3000", Desc: "Frontend origin for payment redirect URLs"},
	{Name: "stripe_secret", Default: "", Desc: "Stripe secret API key"},
	{Name: "premium_price_amount", Default: 150000, Desc: "Lifetime premium price in BDT paisa"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, LESSONHUB_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "LESSONHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		BootstrapAdminEmail: appValues.String("bootstrap_admin_email"),

		SiteDomain:         appValues.String("site_domain"),
		StripeSecret:       appValues.String("stripe_secret"),
		PremiumPriceAmount: int64(appValues.Int("premium_price_amount")),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// LessonHub validates the MongoDB URI format to catch configuration errors
// early, before attempting to connect. The Stripe secret is allowed to be
// blank: checkout-session creation then fails per-request, which keeps the
// rest of the API usable in environments without payments.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.PremiumPriceAmount <= 0 {
		return fmt.Errorf("premium_price_amount must be positive, got %d", appCfg.PremiumPriceAmount)
	}

	if appCfg.StripeSecret == "" {
		logger.Warn("stripe_secret is not set; checkout-session creation will fail")
	}

	return nil
}
