package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"deals-engine/internal/domain/user"
	"deals-engine/internal/handler/api"
	reqdto "deals-engine/internal/handler/dto/request"
	"deals-engine/internal/handler/middleware"
	"deals-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler mounted by NewRouter.
type Handlers struct {
	Claim        *api.ClaimHandler
	Membership   *api.MembershipHandler
	Verification *api.VerificationHandler
	Transaction  *api.TransactionHandler
	Deal         *api.DealHandler
	Commission   *api.CommissionHandler
	Payout       *api.PayoutHandler
	POS          *api.POSHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter middleware.RateLimiter) error {
	if err := reqdto.RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, h, authMiddleware, limiter)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())

	customer := apiGroup.Group("")
	customer.Use(authMiddleware.RequireRole(user.RoleCustomer))
	{
		addRoutes(customer, []route{
			{Method: http.MethodPost, Path: "/claims", Handler: h.Claim.Issue},
			{Method: http.MethodGet, Path: "/claims", Handler: h.Claim.ListMine},
			{Method: http.MethodGet, Path: "/claims/:id", Handler: h.Claim.GetMine},
			{Method: http.MethodPost, Path: "/membership/token", Handler: h.Membership.IssueToken},
		})
	}

	vendor := apiGroup.Group("")
	vendor.Use(authMiddleware.RequireRole(user.RoleVendor))
	{
		verifyLimit := []gin.HandlerFunc{middleware.VerifyRateLimit(limiter, cfg.RateLimit)}
		addRoutes(vendor, []route{
			{Method: http.MethodPost, Path: "/verify/claim", Handler: h.Verification.VerifyClaim, Mw: verifyLimit},
			{Method: http.MethodPost, Path: "/verify/token", Handler: h.Verification.VerifyToken, Mw: verifyLimit},
			{Method: http.MethodPost, Path: "/verify/pin", Handler: h.Verification.VerifyPIN, Mw: verifyLimit},
			{Method: http.MethodPost, Path: "/transactions", Handler: h.Transaction.Complete},
			{Method: http.MethodPost, Path: "/transactions/pin", Handler: h.Transaction.PINCheckout},
			{Method: http.MethodPost, Path: "/deals", Handler: h.Deal.Create},
			{Method: http.MethodPost, Path: "/pos/sessions", Handler: h.POS.Open},
			{Method: http.MethodPost, Path: "/pos/sessions/:id/close", Handler: h.POS.Close},
			{Method: http.MethodGet, Path: "/pos/sessions/:id", Handler: h.POS.Get},
		})
	}

	clicks := apiGroup.Group("/commissions")
	clicks.Use(authMiddleware.RequireRole(user.RoleCustomer, user.RoleVendor))
	{
		addRoutes(clicks, []route{
			{Method: http.MethodPost, Path: "/clicks", Handler: h.Commission.RecordClick},
		})
	}

	admin := apiGroup.Group("/admin")
	admin.Use(authMiddleware.RequireRole(user.RoleAdmin))
	{
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "/commissions/:id/confirm", Handler: h.Commission.ConfirmConversion},
			{Method: http.MethodGet, Path: "/commissions/overview", Handler: h.Commission.Overview},
			{Method: http.MethodGet, Path: "/commissions/vendors", Handler: h.Commission.VendorPerformance},
			{Method: http.MethodGet, Path: "/vendors/:id/commissions", Handler: h.Commission.ListVendorEvents},
			{Method: http.MethodPost, Path: "/payouts", Handler: h.Payout.CreateBatch},
			{Method: http.MethodPost, Path: "/payouts/:id/pay", Handler: h.Payout.MarkPaid},
			{Method: http.MethodGet, Path: "/payouts/:id", Handler: h.Payout.GetBatch},
			{Method: http.MethodGet, Path: "/vendors/:id/payouts", Handler: h.Payout.ListVendorBatches},
		})
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
			h = chainHandlers(append(r.Mw, r.Handler)...)
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
