//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"deals-engine/internal/domain/claim"
	"deals-engine/internal/domain/deal"
	"deals-engine/internal/domain/user"
	"deals-engine/internal/handler/api"
	reqdto "deals-engine/internal/handler/dto/request"
	resdto "deals-engine/internal/handler/dto/response"
	"deals-engine/internal/pkg/errs"
	"deals-engine/internal/usecase/commands"
	"deals-engine/internal/usecase/queries"
	"deals-engine/tests/common/httptest"
	"deals-engine/tests/common/testutil"
	commandsmock "deals-engine/tests/mock/commands"
	queriesmock "deals-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ClaimHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockClaimCommands
	mockQueries  *queriesmock.MockClaimQueries
	customer     user.Principal
}

func (s *ClaimHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidators())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockClaimCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockClaimQueries(s.mockCtrl)
	h := api.NewClaimHandler(s.mockCommands, s.mockQueries)

	s.customer = user.Principal{ID: uuid.New(), Role: user.RoleCustomer}
	auth := fakeAuth(s.customer)
	s.router.POST("/claims", auth, h.Issue)
	s.router.GET("/claims", auth, h.ListMine)
	s.router.GET("/claims/:id", auth, h.GetMine)
}

func (s *ClaimHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestClaimHandlerSuite(t *testing.T) {
	suite.Run(t, new(ClaimHandlerTestSuite))
}

func (s *ClaimHandlerTestSuite) TestIssue() {
	dealID := uuid.New()
	reqBody := reqdto.IssueClaimRequest{DealID: dealID}
	issued := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	result := &commands.IssueClaimResult{
		ClaimID:   uuid.New(),
		DealID:    dealID,
		Code:      claim.Code("ABCD2345"),
		Kind:      deal.KindInStore,
		Status:    claim.StatusClaimed,
		IssuedAt:  issued,
		ExpiresAt: issued.Add(24 * time.Hour),
	}

	s.Run("success: returns 201 with code and Location", func() {
		s.mockCommands.EXPECT().
			Issue(gomock.Any(), commands.IssueClaimInput{DealID: dealID, CustomerID: s.customer.ID}).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/claims", reqBody, bearer)

		var body resdto.IssuedClaimResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("ABCD2345", body.Code)
		s.Equal("claimed", body.Status)
		s.Nil(body.AffiliateLink)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/claims/" + result.ClaimID.String()})
	})

	s.Run("error: 400 when deal_id is missing", func() {
		m := testutil.DtoMap(s.T(), reqBody, testutil.Field("deal_id", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/claims", m, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "deal_id is required")
	})

	s.Run("error: 400 when deal_id is not a UUID", func() {
		m := testutil.DtoMap(s.T(), reqBody, testutil.Field("deal_id", "nope"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/claims", m, bearer)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/claims", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{"deal not found", errs.ErrDealNotFound, http.StatusNotFound, "DEAL_NOT_FOUND"},
			{"deal inactive", errs.ErrDealInactive, http.StatusConflict, "DEAL_INACTIVE"},
			{"cap reached", errs.ErrRedemptionCapReached, http.StatusConflict, "REDEMPTION_CAP_REACHED"},
			{"deal expired", errs.ErrDealExpired, http.StatusConflict, "DEAL_EXPIRED"},
			{"already held", errs.Wrap(errs.ErrClaimAlreadyHeld, "issue claim"), http.StatusConflict, "CLAIM_ALREADY_HELD"},
			{"unexpected", errors.New("database error"), http.StatusInternalServerError, "INTERNAL"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Issue(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/claims", reqBody, bearer)
				httptest.AssertErrorCode(s.T(), rec, tc.status, tc.code)
			})
		}
	})
}

func (s *ClaimHandlerTestSuite) TestListMine() {
	view := &queries.ClaimView{
		ID:        uuid.New(),
		DealID:    uuid.New(),
		DealTitle: "20% off dinner",
		Code:      "ABCD2345",
		Kind:      "in_store",
		Status:    "claimed",
	}

	s.Run("success: forwards cursor and limit and returns next_cursor", func() {
		s.mockQueries.EXPECT().
			ListMine(gomock.Any(), s.customer.ID, &queries.Cursor{After: "abc"}, 5).
			Return([]*queries.ClaimView{view}, &queries.Cursor{After: "def"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/claims?limit=5&after=abc", nil, bearer)

		var body struct {
			Claims     []resdto.ClaimResponse `json:"claims"`
			NextCursor string                 `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Claims, 1)
		s.Equal(view.ID, body.Claims[0].ID)
		s.Equal("def", body.NextCursor)
	})

	s.Run("success: defaults the page size", func() {
		s.mockQueries.EXPECT().
			ListMine(gomock.Any(), s.customer.ID, gomock.Nil(), queries.DefaultListLimit).
			Return([]*queries.ClaimView{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/claims", nil, bearer)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.NotContains(body, "next_cursor")
	})

	s.Run("error: 400 on a malformed cursor", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/claims?after=bad-cursor", nil, bearer)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_CURSOR")
	})
}

func (s *ClaimHandlerTestSuite) TestGetMine() {
	id := uuid.New()

	s.Run("success: returns the claim", func() {
		s.mockQueries.EXPECT().GetMine(gomock.Any(), s.customer.ID, id).
			Return(&queries.ClaimView{ID: id, Code: "ABCD2345", Status: "verified"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/claims/"+id.String(), nil, bearer)

		var body resdto.ClaimResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id, body.ID)
		s.Equal("verified", body.Status)
	})

	s.Run("error: 400 on invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/claims/not-a-uuid", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 when the claim is not the caller's", func() {
		s.mockQueries.EXPECT().GetMine(gomock.Any(), s.customer.ID, id).
			Return(nil, errs.ErrClaimNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/claims/"+id.String(), nil, bearer)
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "CLAIM_NOT_FOUND")
	})
}
