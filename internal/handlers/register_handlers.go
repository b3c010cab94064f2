package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
	portssvc "github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/ports/services"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/middleware"
	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services.Auth)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	// Delegate route registration to specific handlers, passing required services
	registerUserRoutes(v1, services.User)
	registerLocationRoutes(v1, services.Location)
	registerStreamRoutes(v1, services.Stream)
	registerBudgetRoutes(v1, services.Budget)
	registerCollectionRoutes(v1, services.Collection)
	registerAssignmentRoutes(v1, services.Assignment)
	registerDashboardRoutes(v1, services.Dashboard)
	registerReportingRoutes(v1, cfg, services.Reporting)
}

// registerValidators installs the custom binding validators used by the
// request DTOs. The yearmonth tag accepts periods in the YYYY-MM form.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("yearmonth", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01", fl.Field().String())
		return err == nil
	})
}

// adminOnly gates a route group to administrators.
func adminOnly() gin.HandlerFunc {
	return middleware.RequireRoles(domain.RoleAdmin)
}

// adminOrMDA gates a route group to administrators and MDA users.
func adminOrMDA() gin.HandlerFunc {
	return middleware.RequireRoles(domain.RoleAdmin, domain.RoleMDAUser)
}

// officerOnly gates a route group to field officers.
func officerOnly() gin.HandlerFunc {
	return middleware.RequireRoles(domain.RoleOfficer)
}
