// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	userstore "github.com/hridoylabs/lessonhub/internal/app/store/users"
	"github.com/hridoylabs/lessonhub/internal/app/system/identity"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return ensureBootstrapAdmin(ctx, deps, appCfg.BootstrapAdminEmail, logger)
}

// ensureBootstrapAdmin creates or promotes the configured bootstrap admin
// account so admin routes are reachable on a fresh database. A blank email
// disables the bootstrap.
func ensureBootstrapAdmin(ctx context.Context, deps DBDeps, email string, logger *zap.Logger) error {
	if email == "" {
		logger.Info("no bootstrap_admin_email configured; skipping admin bootstrap")
		return nil
	}

	resolver := identity.NewResolver(userstore.New(deps.LessonHubMongoDatabase), email)
	if err := resolver.EnsureBootstrapAdmin(ctx); err != nil {
		logger.Error("bootstrap admin setup failed", zap.Error(err))
		return err
	}

	logger.Info("bootstrap admin ensured", zap.String("email", email))
	return nil
}
