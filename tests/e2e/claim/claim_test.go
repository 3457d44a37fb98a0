//go:build e2e

package claim_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"deals-engine/internal/domain/user"
	resdto "deals-engine/internal/handler/dto/response"
	"deals-engine/tests/common/dbtest"
	th "deals-engine/tests/common/httptest"
	"deals-engine/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	claimsURL       = "/api/claims"
	verifyClaimURL  = "/api/verify/claim"
	verifyTokenURL  = "/api/verify/token"
	verifyPINURL    = "/api/verify/pin"
	transactionsURL = "/api/transactions"
	pinCheckoutURL  = "/api/transactions/pin"
	membershipURL   = "/api/membership/token"
)

type ClaimSuite struct {
	e2e.SharedSuite
}

func TestClaimSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ClaimSuite))
}

type actors struct {
	vendorID      uuid.UUID
	customerID    uuid.UUID
	vendorToken   string
	customerToken string
}

func (s *ClaimSuite) newActors(t *testing.T) actors {
	a := actors{
		vendorID:   dbtest.CreateTestVendor(t, s.DB, "Spice Route"),
		customerID: dbtest.CreateTestCustomer(t, s.DB, "Asha", "silver"),
	}
	a.vendorToken = s.Tokens.GenerateToken(t, a.vendorID, user.RoleVendor)
	a.customerToken = s.Tokens.GenerateToken(t, a.customerID, user.RoleCustomer)
	return a
}

func (s *ClaimSuite) issue(t *testing.T, token string, dealID uuid.UUID) resdto.IssuedClaimResponse {
	t.Helper()
	w := th.PerformRequest(t, s.Router, http.MethodPost, claimsURL, map[string]any{"deal_id": dealID}, token)
	var issued resdto.IssuedClaimResponse
	th.AssertSuccessResponse(t, w, http.StatusCreated, &issued)
	return issued
}

func (s *ClaimSuite) TestInStoreRedemption() {
	s.Run("claim, verify and settle a 20% in-store deal", func() {
		t := s.T()
		a := s.newActors(t)
		dealID := dbtest.CreateTestDeal(t, s.DB, dbtest.InStoreDeal(a.vendorID, "K7M2QX"))

		issued := s.issue(t, a.customerToken, dealID)
		require.Len(t, issued.Code, 8)
		require.Equal(t, "claimed", issued.Status)
		require.Equal(t, 24*time.Hour, issued.ExpiresAt.Sub(issued.IssuedAt))
		require.Nil(t, issued.AffiliateLink)

		w := th.PerformRequest(t, s.Router, http.MethodPost, verifyClaimURL, map[string]any{"code": issued.Code}, a.vendorToken)
		var verified resdto.VerifiedClaimResponse
		th.AssertSuccessResponse(t, w, http.StatusOK, &verified)
		require.Equal(t, "verified", verified.Status)
		require.Equal(t, a.customerID, verified.Customer.ID)
		require.Equal(t, "silver", verified.Customer.Tier)
		require.Equal(t, dealID, verified.Deal.ID)

		w = th.PerformRequest(t, s.Router, http.MethodPost, transactionsURL, map[string]any{
			"claim_id":       issued.ClaimID,
			"bill_amount":    "500",
			"payment_method": "card",
		}, a.vendorToken)
		var txn resdto.TransactionResponse
		th.AssertSuccessResponse(t, w, http.StatusCreated, &txn)
		require.Equal(t, "100.00", txn.Savings)
		require.Equal(t, "400.00", txn.FinalAmount)
		require.Regexp(t, `^RCPT-\d{8}-[A-Z0-9]{6}$`, txn.ReceiptNumber)

		w = th.PerformRequest(t, s.Router, http.MethodGet, claimsURL+"/"+issued.ClaimID.String(), nil, a.customerToken)
		var claim resdto.ClaimResponse
		th.AssertSuccessResponse(t, w, http.StatusOK, &claim)
		require.Equal(t, "used", claim.Status)
		require.NotNil(t, claim.ActualSavings)
		require.Equal(t, "100.00", *claim.ActualSavings)

		var savings string
		var claimed int
		require.NoError(t, s.DB.QueryRow(t.Context(),
			"SELECT total_savings::text, deals_claimed FROM customers WHERE id = $1", a.customerID).Scan(&savings, &claimed))
		require.Equal(t, "100.00", savings)
		require.Equal(t, 1, claimed)

		w = th.PerformRequest(t, s.Router, http.MethodPost, transactionsURL, map[string]any{
			"claim_id":       issued.ClaimID,
			"bill_amount":    "500",
			"payment_method": "card",
		}, a.vendorToken)
		th.AssertErrorCode(t, w, http.StatusConflict, "ALREADY_USED")
	})

	s.Run("a claimed code cannot be settled before verification", func() {
		t := s.T()
		a := s.newActors(t)
		dealID := dbtest.CreateTestDeal(t, s.DB, dbtest.InStoreDeal(a.vendorID, "P4R8ZT"))
		issued := s.issue(t, a.customerToken, dealID)

		w := th.PerformRequest(t, s.Router, http.MethodPost, transactionsURL, map[string]any{
			"claim_id":       issued.ClaimID,
			"bill_amount":    "250",
			"payment_method": "cash",
		}, a.vendorToken)
		th.AssertErrorCode(t, w, http.StatusConflict, "CLAIM_NOT_VERIFIED")
	})

	s.Run("another vendor cannot verify the code", func() {
		t := s.T()
		a := s.newActors(t)
		dealID := dbtest.CreateTestDeal(t, s.DB, dbtest.InStoreDeal(a.vendorID, "H3N6WQ"))
		issued := s.issue(t, a.customerToken, dealID)

		rival := dbtest.CreateTestVendor(t, s.DB, "Rival Cafe")
		w := th.PerformRequest(t, s.Router, http.MethodPost, verifyClaimURL, map[string]any{"code": issued.Code},
			s.Tokens.GenerateToken(t, rival, user.RoleVendor))
		th.AssertErrorCode(t, w, http.StatusForbidden, "WRONG_VENDOR")
	})

	s.Run("unknown codes are reported as not found", func() {
		t := s.T()
		a := s.newActors(t)
		w := th.PerformRequest(t, s.Router, http.MethodPost, verifyClaimURL, map[string]any{"code": "ZZZZ2222"}, a.vendorToken)
		th.AssertErrorCode(t, w, http.StatusNotFound, "CODE_NOT_FOUND")
	})
}

func (s *ClaimSuite) TestExpiredClaim() {
	s.Run("a claim issued 25 hours ago cannot be verified", func() {
		t := s.T()
		a := s.newActors(t)
		dealID := dbtest.CreateTestDeal(t, s.DB, dbtest.InStoreDeal(a.vendorID, "B9C4DE"))
		issued := s.issue(t, a.customerToken, dealID)

		_, err := s.DB.Exec(t.Context(),
			"UPDATE claims SET issued_at = now() - interval '25 hours', expires_at = now() - interval '1 hour' WHERE id = $1",
			issued.ClaimID)
		require.NoError(t, err)

		w := th.PerformRequest(t, s.Router, http.MethodPost, verifyClaimURL, map[string]any{"code": issued.Code}, a.vendorToken)
		th.AssertErrorCode(t, w, http.StatusGone, "CODE_EXPIRED")

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "claims", "id = $1 AND status = 'claimed'", issued.ClaimID))
	})
}

func (s *ClaimSuite) TestConcurrentVerification() {
	s.Run("two terminals racing on one code yield one success", func() {
		t := s.T()
		a := s.newActors(t)
		dealID := dbtest.CreateTestDeal(t, s.DB, dbtest.InStoreDeal(a.vendorID, "M5T7UV"))
		issued := s.issue(t, a.customerToken, dealID)

		const attempts = 2
		var wg sync.WaitGroup
		recorders := make([]*httptest.ResponseRecorder, attempts)
		start := make(chan struct{})
		for i := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				recorders[i] = th.PerformRequest(t, s.Router, http.MethodPost, verifyClaimURL,
					map[string]any{"code": issued.Code}, a.vendorToken)
			}()
		}
		close(start)
		wg.Wait()

		statuses := map[int]int{}
		for _, w := range recorders {
			statuses[w.Code]++
			if w.Code == http.StatusConflict {
				th.AssertErrorCode(t, w, http.StatusConflict, "ALREADY_VERIFIED")
			}
		}
		require.Equal(t, map[int]int{http.StatusOK: 1, http.StatusConflict: 1}, statuses)
	})
}

func (s *ClaimSuite) TestRedemptionCap() {
	s.Run("the cap stops further issuance", func() {
		t := s.T()
		a := s.newActors(t)
		limit := int32(1)
		f := dbtest.InStoreDeal(a.vendorID, "Q2W3ER")
		f.MaxRedemptions = &limit
		dealID := dbtest.CreateTestDeal(t, s.DB, f)

		s.issue(t, a.customerToken, dealID)

		other := dbtest.CreateTestCustomer(t, s.DB, "Ravi", "basic")
		w := th.PerformRequest(t, s.Router, http.MethodPost, claimsURL, map[string]any{"deal_id": dealID},
			s.Tokens.GenerateToken(t, other, user.RoleCustomer))
		th.AssertErrorCode(t, w, http.StatusConflict, "REDEMPTION_CAP_REACHED")

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "claims", "deal_id = $1", dealID))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "deals", "id = $1 AND redemption_count = 1", dealID))
	})

	s.Run("a single-claim deal rejects a second live claim", func() {
		t := s.T()
		a := s.newActors(t)
		f := dbtest.InStoreDeal(a.vendorID, "Y6U7XP")
		f.AllowRepeatClaims = false
		dealID := dbtest.CreateTestDeal(t, s.DB, f)

		s.issue(t, a.customerToken, dealID)

		w := th.PerformRequest(t, s.Router, http.MethodPost, claimsURL, map[string]any{"deal_id": dealID}, a.customerToken)
		th.AssertErrorCode(t, w, http.StatusConflict, "CLAIM_ALREADY_HELD")
	})

	s.Run("concurrent issues on a single-claim deal store one claim", func() {
		t := s.T()
		a := s.newActors(t)
		f := dbtest.InStoreDeal(a.vendorID, "R5S8TL")
		f.AllowRepeatClaims = false
		dealID := dbtest.CreateTestDeal(t, s.DB, f)

		const attempts = 4
		var wg sync.WaitGroup
		recorders := make([]*httptest.ResponseRecorder, attempts)
		start := make(chan struct{})
		for i := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				recorders[i] = th.PerformRequest(t, s.Router, http.MethodPost, claimsURL,
					map[string]any{"deal_id": dealID}, a.customerToken)
			}()
		}
		close(start)
		wg.Wait()

		statuses := map[int]int{}
		for _, w := range recorders {
			statuses[w.Code]++
			if w.Code == http.StatusConflict {
				th.AssertErrorCode(t, w, http.StatusConflict, "CLAIM_ALREADY_HELD")
			}
		}
		require.Equal(t, map[int]int{http.StatusCreated: 1, http.StatusConflict: attempts - 1}, statuses)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "claims", "deal_id = $1", dealID))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "deals", "id = $1 AND redemption_count = 1", dealID))
	})
}

func (s *ClaimSuite) TestMembershipToken() {
	s.Run("the vendor reads the card from the QR payload", func() {
		t := s.T()
		a := s.newActors(t)

		w := th.PerformRequest(t, s.Router, http.MethodPost, membershipURL, nil, a.customerToken)
		var issued resdto.MembershipTokenResponse
		th.AssertSuccessResponse(t, w, http.StatusCreated, &issued)
		require.Equal(t, "DEALMEMBER:"+issued.Token, issued.QRPayload)

		w = th.PerformRequest(t, s.Router, http.MethodPost, verifyTokenURL, map[string]any{"token": issued.QRPayload}, a.vendorToken)
		var card resdto.MembershipCardResponse
		th.AssertSuccessResponse(t, w, http.StatusOK, &card)
		require.Equal(t, a.customerID, card.CustomerID)
		require.Equal(t, "silver", card.Tier)
	})

	s.Run("tampered tokens are rejected", func() {
		t := s.T()
		a := s.newActors(t)
		w := th.PerformRequest(t, s.Router, http.MethodPost, verifyTokenURL, map[string]any{"token": "DEALMEMBER:not.a.token"}, a.vendorToken)
		th.AssertErrorCode(t, w, http.StatusUnauthorized, "TOKEN_INVALID")
	})
}

func (s *ClaimSuite) TestPINCheckout() {
	s.Run("PIN identifies the deal and checkout records a used claim", func() {
		t := s.T()
		a := s.newActors(t)
		dealID := dbtest.CreateTestDeal(t, s.DB, dbtest.InStoreDeal(a.vendorID, "G8H9JK"))

		w := th.PerformRequest(t, s.Router, http.MethodPost, verifyPINURL, map[string]any{"pin": "G8H9JK"}, a.vendorToken)
		var d resdto.DealResponse
		th.AssertSuccessResponse(t, w, http.StatusOK, &d)
		require.Equal(t, dealID, d.ID)

		w = th.PerformRequest(t, s.Router, http.MethodPost, pinCheckoutURL, map[string]any{
			"pin":            "G8H9JK",
			"customer_id":    a.customerID,
			"bill_amount":    "80",
			"payment_method": "upi",
		}, a.vendorToken)
		var txn resdto.TransactionResponse
		th.AssertSuccessResponse(t, w, http.StatusCreated, &txn)
		require.Equal(t, "16.00", txn.Savings)
		require.Equal(t, dealID, txn.DealID)

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "claims", "id = $1 AND status = 'used'", txn.ClaimID))
	})

	s.Run("an unknown PIN is not found", func() {
		t := s.T()
		a := s.newActors(t)
		w := th.PerformRequest(t, s.Router, http.MethodPost, verifyPINURL, map[string]any{"pin": "ZZ22ZZ"}, a.vendorToken)
		th.AssertErrorCode(t, w, http.StatusNotFound, "PIN_NOT_FOUND")
	})
}
