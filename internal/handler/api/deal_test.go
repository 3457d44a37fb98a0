//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"deals-engine/internal/domain/customer"
	"deals-engine/internal/domain/deal"
	"deals-engine/internal/domain/membership"
	"deals-engine/internal/domain/user"
	"deals-engine/internal/handler/api"
	reqdto "deals-engine/internal/handler/dto/request"
	resdto "deals-engine/internal/handler/dto/response"
	"deals-engine/internal/pkg/errs"
	"deals-engine/internal/usecase/commands"
	"deals-engine/tests/common/builder"
	"deals-engine/tests/common/httptest"
	"deals-engine/tests/common/testutil"
	commandsmock "deals-engine/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DealHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockDeals      *commandsmock.MockDealCommands
	mockMembership *commandsmock.MockMembershipCommands
	vendor         user.Principal
	customer       user.Principal
}

func (s *DealHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidators())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockDeals = commandsmock.NewMockDealCommands(s.mockCtrl)
	s.mockMembership = commandsmock.NewMockMembershipCommands(s.mockCtrl)

	s.vendor = user.Principal{ID: uuid.New(), Role: user.RoleVendor}
	s.customer = user.Principal{ID: uuid.New(), Role: user.RoleCustomer}
	s.router.POST("/deals", fakeAuth(s.vendor), api.NewDealHandler(s.mockDeals).Create)
	s.router.POST("/membership/token", fakeAuth(s.customer), api.NewMembershipHandler(s.mockMembership).IssueToken)
}

func (s *DealHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDealHandlerSuite(t *testing.T) {
	suite.Run(t, new(DealHandlerTestSuite))
}

func (s *DealHandlerTestSuite) TestCreate() {
	reqBody := map[string]any{
		"title":               "20% off dinner",
		"kind":                "in_store",
		"discount_percent":    "20",
		"verification_code":   "K7M2QX",
		"allow_repeat_claims": true,
	}

	s.Run("success: returns 201 for the caller's deal", func() {
		d := builder.NewDealBuilder().With(func(b *builder.DealBuilder) { b.VendorID = s.vendor.ID }).BuildDomain()
		s.mockDeals.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.CreateDealInput) (*deal.Deal, error) {
				s.Equal(s.vendor.ID, in.VendorID)
				s.Equal("in_store", in.Kind)
				s.True(in.DiscountPercent.Equal(decimal.NewFromInt(20)))
				s.Require().NotNil(in.VerificationCode)
				s.Equal("K7M2QX", *in.VerificationCode)
				s.True(in.AllowRepeatClaims)
				return d, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/deals", reqBody, bearer)

		var body resdto.DealResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(d.ID(), body.ID)
		s.Equal("in_store", body.Kind)
	})

	s.Run("error: 400 on invalid submissions", func() {
		testCases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{"missing title", testutil.Field("title", nil)},
			{"unknown kind", testutil.Field("kind", "mail_order")},
			{"missing discount", testutil.Field("discount_percent", nil)},
			{"malformed PIN", testutil.Field("verification_code", "12")},
			{"bad affiliate link", testutil.Field("affiliate_link", "not a url")},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				m := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/deals", m, bearer)
				httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "VALIDATION_FAILED")
			})
		}
	})

	s.Run("error: maps domain rule violations", func() {
		testCases := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{"online without link", errs.ErrMissingAffiliateLink, http.StatusBadRequest, "MISSING_AFFILIATE_LINK"},
			{"percent out of range", errs.ErrInvalidDiscountPercent, http.StatusBadRequest, "INVALID_DISCOUNT_PERCENT"},
			{"PIN already used by vendor", errs.ErrPINTaken, http.StatusConflict, "PIN_TAKEN"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockDeals.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/deals", reqBody, bearer)
				httptest.AssertErrorCode(s.T(), rec, tc.status, tc.code)
			})
		}
	})
}

func (s *DealHandlerTestSuite) TestIssueMembershipToken() {
	s.Run("success: returns the token and QR payload", func() {
		issued := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
		token := &commands.MembershipToken{
			Token:     "signed.jwt.value",
			QRPayload: membership.QRPayload("signed.jwt.value"),
			ExpiresAt: issued.Add(24 * time.Hour),
			Card: membership.Card{
				CustomerID: s.customer.ID,
				Name:       "Asha",
				Tier:       customer.TierBasic,
				IssuedAt:   issued,
				ExpiresAt:  issued.Add(24 * time.Hour),
			},
		}
		s.mockMembership.EXPECT().IssueToken(gomock.Any(), s.customer.ID).Return(token, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/membership/token", nil, bearer)

		var body resdto.MembershipTokenResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("signed.jwt.value", body.Token)
		s.Equal("DEALMEMBER:signed.jwt.value", body.QRPayload)
	})

	s.Run("error: 404 when the customer record is missing", func() {
		s.mockMembership.EXPECT().IssueToken(gomock.Any(), s.customer.ID).Return(nil, errs.ErrCustomerNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/membership/token", nil, bearer)
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "CUSTOMER_NOT_FOUND")
	})
}
