package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hosteed/internal/domain/user"
	"hosteed/internal/handler/api"
	"hosteed/internal/handler/middleware"
	"hosteed/internal/handler/validation"
	"hosteed/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Availability *api.AvailabilityHandler
	Booking      *api.BookingHandler
	Property     *api.PropertyHandler
	Promotion    *api.PromotionHandler
	Commission   *api.CommissionHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) error {
	if err := validation.Register(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	hostOnly := []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleHost)}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/availability/check", Handler: h.Availability.Check},
			{Method: http.MethodPost, Path: "/bookings/cost", Handler: h.Booking.Cost},
			{Method: http.MethodPost, Path: "/pricing/quote", Handler: h.Booking.Quote},
			{Method: http.MethodDelete, Path: "/blackouts/:id", Handler: h.Availability.DeleteBlackout, Mw: hostOnly},
			{Method: http.MethodPost, Path: "/extras", Handler: h.Property.CreateExtra, Mw: hostOnly},
		})

		properties := apiGroup.Group("/properties")
		{
			addRoutes(properties, []route{
				{Method: http.MethodGet, Path: "/nearby", Handler: h.Property.Nearby},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Property.Get},
				{Method: http.MethodGet, Path: "/:id/promotions", Handler: h.Promotion.ListByProperty},
				{Method: http.MethodGet, Path: "/:id/calendar.ics", Handler: h.Availability.ExportCalendar},
				{Method: http.MethodPost, Path: "/:id/blackouts", Handler: h.Availability.CreateBlackout, Mw: hostOnly},
				{Method: http.MethodPost, Path: "/:id/calendar/import", Handler: h.Availability.ImportCalendar, Mw: hostOnly},
				{Method: http.MethodPost, Path: "/:id/extras", Handler: h.Property.AttachExtra, Mw: hostOnly},
			})
		}

		promotions := apiGroup.Group("/promotions")
		{
			addRoutes(promotions, []route{
				{Method: http.MethodPost, Path: "/validate-commission", Handler: h.Promotion.ValidateCommission},
				{Method: http.MethodPost, Path: "", Handler: h.Promotion.Create, Mw: hostOnly},
				{Method: http.MethodPost, Path: "/confirm-overlap", Handler: h.Promotion.ConfirmOverlap, Mw: hostOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Promotion.Cancel, Mw: hostOnly},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/commission-rules", Handler: h.Commission.Create},
				{Method: http.MethodPut, Path: "/commission-rules/:id", Handler: h.Commission.Update},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
