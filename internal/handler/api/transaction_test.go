//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"deals-engine/internal/domain/claim"
	"deals-engine/internal/domain/transaction"
	"deals-engine/internal/domain/user"
	"deals-engine/internal/handler/api"
	reqdto "deals-engine/internal/handler/dto/request"
	resdto "deals-engine/internal/handler/dto/response"
	"deals-engine/internal/pkg/errs"
	"deals-engine/internal/usecase/commands"
	"deals-engine/tests/common/httptest"
	"deals-engine/tests/common/testutil"
	commandsmock "deals-engine/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTransactionCommands
	vendor       user.Principal
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidators())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTransactionCommands(s.mockCtrl)
	h := api.NewTransactionHandler(s.mockCommands)

	s.vendor = user.Principal{ID: uuid.New(), Role: user.RoleVendor}
	auth := fakeAuth(s.vendor)
	s.router.POST("/transactions", auth, h.Complete)
	s.router.POST("/transactions/pin", auth, h.PINCheckout)
}

func (s *TransactionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (s *TransactionHandlerTestSuite) result(bill, savings string) *commands.TransactionResult {
	tx, err := transaction.New(transaction.NewParams{
		ClaimID:       uuid.New(),
		DealID:        uuid.New(),
		VendorID:      s.vendor.ID,
		CustomerID:    uuid.New(),
		BillAmount:    decimal.RequireFromString(bill),
		Savings:       decimal.RequireFromString(savings),
		PaymentMethod: transaction.PaymentCard,
	}, time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	return &commands.TransactionResult{Transaction: tx, ClaimCode: claim.Code("ABCD2345"), DealTitle: "20% off dinner"}
}

func (s *TransactionHandlerTestSuite) TestComplete() {
	url := "/transactions"
	claimID := uuid.New()
	reqBody := map[string]any{
		"claim_id":       claimID.String(),
		"bill_amount":    "100.00",
		"payment_method": "card",
	}

	s.Run("success: returns 201 with server-computed savings", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.CompleteTransactionInput) (*commands.TransactionResult, error) {
				s.Equal(claimID, in.ClaimID)
				s.Equal(s.vendor.ID, in.VendorID)
				s.True(in.BillAmount.Equal(decimal.NewFromInt(100)))
				s.Equal("card", in.PaymentMethod)
				s.Nil(in.SessionID)
				return s.result("100", "20"), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bearer)

		var body resdto.TransactionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("100.00", body.BillAmount)
		s.Equal("20.00", body.Savings)
		s.Equal("80.00", body.FinalAmount)
		s.Regexp(`^RCPT-20250314-[A-Z0-9]{6}$`, body.ReceiptNumber)
	})

	s.Run("error: 400 on invalid input", func() {
		testCases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{"missing claim_id", testutil.Field("claim_id", nil)},
			{"missing bill_amount", testutil.Field("bill_amount", nil)},
			{"unknown payment method", testutil.Field("payment_method", "cheque")},
			{"bill not a number", testutil.Field("bill_amount", "lots")},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				m := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, m, bearer)
				httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "VALIDATION_FAILED")
			})
		}
	})

	s.Run("error: maps lifecycle errors", func() {
		testCases := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{"not verified", errs.ErrClaimNotVerified, http.StatusConflict, "CLAIM_NOT_VERIFIED"},
			{"expired", errs.ErrClaimExpired, http.StatusGone, "CLAIM_EXPIRED"},
			{"already used", errs.ErrAlreadyUsed, http.StatusConflict, "ALREADY_USED"},
			{"other vendor", errs.ErrWrongVendor, http.StatusForbidden, "WRONG_VENDOR"},
			{"zero bill", errs.ErrInvalidBillAmount, http.StatusBadRequest, "INVALID_BILL_AMOUNT"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bearer)
				httptest.AssertErrorCode(s.T(), rec, tc.status, tc.code)
			})
		}
	})
}

func (s *TransactionHandlerTestSuite) TestPINCheckout() {
	url := "/transactions/pin"
	customerID := uuid.New()
	reqBody := map[string]any{
		"pin":             "K7M2QX",
		"customer_id":     customerID.String(),
		"bill_amount":     "50",
		"discount_amount": "7.5",
		"payment_method":  "cash",
	}

	s.Run("success: forwards the vendor discount", func() {
		s.mockCommands.EXPECT().PINCheckout(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.PINCheckoutInput) (*commands.TransactionResult, error) {
				s.Equal(s.vendor.ID, in.VendorID)
				s.Equal(customerID, in.CustomerID)
				s.Require().NotNil(in.DiscountAmount)
				s.True(in.DiscountAmount.Equal(decimal.RequireFromString("7.5")))
				return s.result("50", "7.5"), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bearer)

		var body resdto.TransactionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("42.50", body.FinalAmount)
	})

	s.Run("error: 400 on malformed PIN", func() {
		m := testutil.DtoMap(s.T(), reqBody, testutil.Field("pin", "K7M2"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, m, bearer)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	s.Run("error: maps checkout errors", func() {
		testCases := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{"unknown PIN", errs.ErrPINNotFound, http.StatusNotFound, "PIN_NOT_FOUND"},
			{"discount above bill", errs.ErrInvalidDiscount, http.StatusBadRequest, "INVALID_DISCOUNT"},
			{"customer missing", errs.ErrCustomerNotFound, http.StatusNotFound, "CUSTOMER_NOT_FOUND"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().PINCheckout(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bearer)
				httptest.AssertErrorCode(s.T(), rec, tc.status, tc.code)
			})
		}
	})
}
