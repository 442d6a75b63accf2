// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	adminfeature "github.com/hridoylabs/lessonhub/internal/app/features/admin"
	billsfeature "github.com/hridoylabs/lessonhub/internal/app/features/bills"
	commentsfeature "github.com/hridoylabs/lessonhub/internal/app/features/comments"
	healthfeature "github.com/hridoylabs/lessonhub/internal/app/features/health"
	homefeature "github.com/hridoylabs/lessonhub/internal/app/features/home"
	lessonsfeature "github.com/hridoylabs/lessonhub/internal/app/features/lessons"
	lessonusersfeature "github.com/hridoylabs/lessonhub/internal/app/features/lessonusers"
	moderationfeature "github.com/hridoylabs/lessonhub/internal/app/features/moderation"
	paymentsfeature "github.com/hridoylabs/lessonhub/internal/app/features/payments"
	statsfeature "github.com/hridoylabs/lessonhub/internal/app/features/stats"
	userstore "github.com/hridoylabs/lessonhub/internal/app/store/users"
	"github.com/hridoylabs/lessonhub/internal/app/system/identity"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The router is flat: the frontend's API
// paths predate this service, so feature routers register absolute paths on
// the root router rather than mounting under per-feature prefixes.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	client := deps.LessonHubMongoClient
	db := deps.LessonHubMongoDatabase

	resolver := identity.NewResolver(userstore.New(db), appCfg.BootstrapAdminEmail)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(client, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	homefeature.NewHandler().MountRoutes(r)

	lessonusersfeature.NewHandler(db, resolver, logger).MountRoutes(r)
	lessonsfeature.NewHandler(client, db, logger).MountRoutes(r)
	commentsfeature.NewHandler(db, resolver, logger).MountRoutes(r)
	statsfeature.NewHandler(db, logger).MountRoutes(r)
	billsfeature.NewHandler(db, logger).MountRoutes(r)

	paymentsHandler := paymentsfeature.NewHandler(db, appCfg.StripeSecret, appCfg.SiteDomain, appCfg.PremiumPriceAmount, logger)
	paymentsHandler.MountRoutes(r)

	adminfeature.NewHandler(client, db, logger).MountRoutes(r, resolver, logger)
	moderationfeature.NewHandler(client, db, logger).MountRoutes(r, resolver, logger)

	return r, nil
}
