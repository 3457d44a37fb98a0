//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"deals-engine/internal/domain/pos"
	"deals-engine/internal/domain/user"
	"deals-engine/internal/handler/api"
	reqdto "deals-engine/internal/handler/dto/request"
	resdto "deals-engine/internal/handler/dto/response"
	"deals-engine/internal/pkg/errs"
	"deals-engine/internal/usecase/queries"
	"deals-engine/tests/common/httptest"
	commandsmock "deals-engine/tests/mock/commands"
	queriesmock "deals-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type POSHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPOSCommands
	mockQueries  *queriesmock.MockPOSQueries
	vendor       user.Principal
}

func (s *POSHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidators())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPOSCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPOSQueries(s.mockCtrl)
	h := api.NewPOSHandler(s.mockCommands, s.mockQueries)

	s.vendor = user.Principal{ID: uuid.New(), Role: user.RoleVendor}
	auth := fakeAuth(s.vendor)
	s.router.POST("/pos/sessions", auth, h.Open)
	s.router.POST("/pos/sessions/:id/close", auth, h.Close)
	s.router.GET("/pos/sessions/:id", auth, h.Get)
}

func (s *POSHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPOSHandlerSuite(t *testing.T) {
	suite.Run(t, new(POSHandlerTestSuite))
}

var sessionOpenedAt = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func (s *POSHandlerTestSuite) TestOpen() {
	s.Run("success: returns 201 with an empty session", func() {
		sess, err := pos.Open(s.vendor.ID, "till-1", sessionOpenedAt)
		s.Require().NoError(err)
		s.mockCommands.EXPECT().Open(gomock.Any(), s.vendor.ID, "till-1").Return(sess, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/pos/sessions", reqdto.OpenSessionRequest{TerminalID: "till-1"}, bearer)

		var body resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("open", body.Status)
		s.Equal("0.00", body.TotalBill)
		s.Equal(int32(0), body.TransactionCount)
	})

	s.Run("error: 400 on a missing or oversized terminal id", func() {
		for name, terminal := range map[string]string{"missing": "", "too long": strings.Repeat("t", 65)} {
			s.Run(name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/pos/sessions", reqdto.OpenSessionRequest{TerminalID: terminal}, bearer)
				httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "VALIDATION_FAILED")
			})
		}
	})

	s.Run("error: 409 when the terminal already has an open session", func() {
		s.mockCommands.EXPECT().Open(gomock.Any(), s.vendor.ID, "till-1").Return(nil, errs.ErrSessionAlreadyOpen).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/pos/sessions", reqdto.OpenSessionRequest{TerminalID: "till-1"}, bearer)
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "SESSION_ALREADY_OPEN")
	})
}

func (s *POSHandlerTestSuite) TestClose() {
	id := uuid.New()
	url := "/pos/sessions/" + id.String() + "/close"

	s.Run("success: returns the closed session with totals", func() {
		closed := sessionOpenedAt.Add(8 * time.Hour)
		sess := pos.Reconstruct(pos.ReconstructParams{
			ID:               id,
			VendorID:         s.vendor.ID,
			TerminalID:       "till-1",
			Status:           pos.StatusClosed,
			OpenedAt:         sessionOpenedAt,
			ClosedAt:         &closed,
			TransactionCount: 3,
			TotalBill:        decimal.RequireFromString("250"),
			TotalSavings:     decimal.RequireFromString("45.5"),
		})
		s.mockCommands.EXPECT().Close(gomock.Any(), s.vendor.ID, id).Return(sess, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, bearer)

		var body resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("closed", body.Status)
		s.Equal("250.00", body.TotalBill)
		s.Equal("45.50", body.TotalSavings)
		s.NotNil(body.ClosedAt)
	})

	s.Run("error: maps session errors", func() {
		testCases := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{"already closed", errs.ErrSessionNotOpen, http.StatusConflict, "SESSION_NOT_OPEN"},
			{"unknown session", errs.ErrSessionNotFound, http.StatusNotFound, "SESSION_NOT_FOUND"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Close(gomock.Any(), s.vendor.ID, id).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, bearer)
				httptest.AssertErrorCode(s.T(), rec, tc.status, tc.code)
			})
		}
	})
}

func (s *POSHandlerTestSuite) TestGet() {
	id := uuid.New()

	s.Run("success: returns the caller's session", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), s.vendor.ID, id).Return(&queries.SessionView{
			ID:               id,
			VendorID:         s.vendor.ID,
			TerminalID:       "till-1",
			Status:           "open",
			OpenedAt:         sessionOpenedAt,
			TransactionCount: 1,
			TotalBill:        decimal.NewFromInt(80),
			TotalSavings:     decimal.NewFromInt(16),
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pos/sessions/"+id.String(), nil, bearer)

		var body resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("80.00", body.TotalBill)
		s.Equal("16.00", body.TotalSavings)
	})

	s.Run("error: 404 for another vendor's session", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), s.vendor.ID, id).Return(nil, errs.ErrSessionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pos/sessions/"+id.String(), nil, bearer)
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "SESSION_NOT_FOUND")
	})
}
