//go:build unit

package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"deals-engine/internal/domain/user"
	"deals-engine/internal/handler/api"
	"deals-engine/internal/handler/middleware"
	"deals-engine/internal/pkg/config"
	"deals-engine/internal/pkg/errs"
	"deals-engine/internal/pkg/jwt"
	"deals-engine/internal/usecase"
	"deals-engine/internal/usecase/queries"
	"deals-engine/tests/common/httptest"
	commandsmock "deals-engine/tests/mock/commands"
	queriesmock "deals-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type denyLimiter struct{}

func (denyLimiter) Allow(context.Context, string, int, time.Duration) (bool, error) {
	return false, nil
}

type RouterTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	jwt     *jwt.Service
	payouts *queriesmock.MockPayoutQueries
	clicks  *commandsmock.MockCommissionCommands
	verify  *commandsmock.MockVerificationCommands
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.jwt = jwt.NewService("router-test-secret", time.Hour)
	s.payouts = queriesmock.NewMockPayoutQueries(s.ctrl)
	s.clicks = commandsmock.NewMockCommissionCommands(s.ctrl)
	s.verify = commandsmock.NewMockVerificationCommands(s.ctrl)
}

func (s *RouterTestSuite) newEngine(cfg config.Config, limiter middleware.RateLimiter) *gin.Engine {
	membership := commandsmock.NewMockMembershipCommands(s.ctrl)
	h := Handlers{
		Claim:        api.NewClaimHandler(commandsmock.NewMockClaimCommands(s.ctrl), queriesmock.NewMockClaimQueries(s.ctrl)),
		Membership:   api.NewMembershipHandler(membership),
		Verification: api.NewVerificationHandler(s.verify, membership),
		Transaction:  api.NewTransactionHandler(commandsmock.NewMockTransactionCommands(s.ctrl)),
		Deal:         api.NewDealHandler(commandsmock.NewMockDealCommands(s.ctrl)),
		Commission:   api.NewCommissionHandler(s.clicks, queriesmock.NewMockCommissionQueries(s.ctrl)),
		Payout:       api.NewPayoutHandler(commandsmock.NewMockPayoutCommands(s.ctrl), s.payouts),
		POS:          api.NewPOSHandler(commandsmock.NewMockPOSCommands(s.ctrl), queriesmock.NewMockPOSQueries(s.ctrl)),
	}

	engine := gin.New()
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(s.jwt))
	s.Require().NoError(NewRouter(engine, cfg, h, auth, limiter))
	return engine
}

func (s *RouterTestSuite) token(role user.Role) string {
	tok, err := s.jwt.GenerateToken(uuid.New(), role.String())
	s.Require().NoError(err)
	return tok
}

func (s *RouterTestSuite) TestHealth() {
	engine := s.newEngine(config.NewTestConfig(), nil)

	rec := httptest.PerformRequest(s.T(), engine, http.MethodGet, "/health", nil, "")

	var body map[string]string
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("ok", body["status"])
	s.NotEmpty(rec.Header().Get("X-Request-ID"))
}

func (s *RouterTestSuite) TestRoleGates() {
	engine := s.newEngine(config.NewTestConfig(), nil)

	testCases := []struct {
		name   string
		method string
		path   string
		role   user.Role
		status int
	}{
		{"claims need a token", http.MethodGet, "/api/claims", "", http.StatusUnauthorized},
		{"vendors cannot claim", http.MethodPost, "/api/claims", user.RoleVendor, http.StatusForbidden},
		{"customers cannot verify", http.MethodPost, "/api/verify/claim", user.RoleCustomer, http.StatusForbidden},
		{"customers cannot settle", http.MethodPost, "/api/transactions", user.RoleCustomer, http.StatusForbidden},
		{"vendors cannot batch payouts", http.MethodPost, "/api/admin/payouts", user.RoleVendor, http.StatusForbidden},
		{"admins do not record clicks", http.MethodPost, "/api/commissions/clicks", user.RoleAdmin, http.StatusForbidden},
		{"customers cannot open POS sessions", http.MethodPost, "/api/pos/sessions", user.RoleCustomer, http.StatusForbidden},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tok := ""
			if tc.role != "" {
				tok = s.token(tc.role)
			}
			rec := httptest.PerformRequest(s.T(), engine, tc.method, tc.path, map[string]any{}, tok)
			s.Equal(tc.status, rec.Code, rec.Body.String())
		})
	}

	s.Run("garbage token is rejected", func() {
		rec := httptest.PerformRequest(s.T(), engine, http.MethodGet, "/api/claims", nil, "not-a-jwt")
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnauthorized, "UNAUTHENTICATED")
	})
}

func (s *RouterTestSuite) TestAdminReachesPayouts() {
	engine := s.newEngine(config.NewTestConfig(), nil)
	id := uuid.New()
	s.payouts.EXPECT().GetBatch(gomock.Any(), id).Return(&queries.BatchView{ID: id, Status: "pending"}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), engine, http.MethodGet, "/api/admin/payouts/"+id.String(), nil, s.token(user.RoleAdmin))
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
}

func (s *RouterTestSuite) TestVendorRecordsClick() {
	engine := s.newEngine(config.NewTestConfig(), nil)
	s.clicks.EXPECT().RecordClick(gomock.Any(), gomock.Any()).Return(nil, errs.ErrDealNotFound).Times(1)

	rec := httptest.PerformRequest(s.T(), engine, http.MethodPost, "/api/commissions/clicks",
		map[string]any{"deal_id": uuid.New().String()}, s.token(user.RoleVendor))
	httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "DEAL_NOT_FOUND")
}

func (s *RouterTestSuite) TestVerifyRoutesAreRateLimited() {
	cfg := config.NewTestConfig()
	cfg.RateLimit.Enabled = true
	engine := s.newEngine(cfg, denyLimiter{})

	rec := httptest.PerformRequest(s.T(), engine, http.MethodPost, "/api/verify/claim",
		map[string]any{"code": "ABCD2345"}, s.token(user.RoleVendor))
	httptest.AssertErrorCode(s.T(), rec, http.StatusTooManyRequests, "RATE_LIMITED")
	s.NotEmpty(rec.Header().Get("Retry-After"))
}
