package httperr

import (
	"net/http"

	"deals-engine/internal/pkg/errs"
	"deals-engine/internal/usecase/queries"
)

type Mapping struct {
	Status  int
	Code    string
	Message string
}

type rule struct {
	target error
	Mapping
}

var internalError = Mapping{
	Status:  http.StatusInternalServerError,
	Code:    "INTERNAL",
	Message: "Internal server error",
}

// Order matters only where one error could be marked with several sentinels;
// the first match wins.
var rules = []rule{
	// 404
	{errs.ErrDealNotFound, Mapping{http.StatusNotFound, "DEAL_NOT_FOUND", "Deal not found"}},
	{errs.ErrClaimNotFound, Mapping{http.StatusNotFound, "CLAIM_NOT_FOUND", "Claim not found"}},
	{errs.ErrCodeNotFound, Mapping{http.StatusNotFound, "CODE_NOT_FOUND", "Claim code not found"}},
	{errs.ErrPINNotFound, Mapping{http.StatusNotFound, "PIN_NOT_FOUND", "Verification code not found"}},
	{errs.ErrCustomerNotFound, Mapping{http.StatusNotFound, "CUSTOMER_NOT_FOUND", "Customer not found"}},
	{errs.ErrVendorNotFound, Mapping{http.StatusNotFound, "VENDOR_NOT_FOUND", "Vendor not found"}},
	{errs.ErrEventNotFound, Mapping{http.StatusNotFound, "EVENT_NOT_FOUND", "Commission event not found"}},
	{errs.ErrBatchNotFound, Mapping{http.StatusNotFound, "BATCH_NOT_FOUND", "Payout batch not found"}},
	{errs.ErrSessionNotFound, Mapping{http.StatusNotFound, "SESSION_NOT_FOUND", "POS session not found"}},

	// 410
	{errs.ErrCodeExpired, Mapping{http.StatusGone, "CODE_EXPIRED", "Claim code has expired"}},
	{errs.ErrClaimExpired, Mapping{http.StatusGone, "CLAIM_EXPIRED", "Claim has expired"}},
	{errs.ErrTokenExpired, Mapping{http.StatusGone, "TOKEN_EXPIRED", "Membership token has expired"}},

	// 401 / 403
	{errs.ErrTokenInvalid, Mapping{http.StatusUnauthorized, "TOKEN_INVALID", "Membership token is invalid"}},
	{errs.ErrWrongVendor, Mapping{http.StatusForbidden, "WRONG_VENDOR", "Claim belongs to another vendor"}},

	// 409
	{errs.ErrDealInactive, Mapping{http.StatusConflict, "DEAL_INACTIVE", "Deal is not active"}},
	{errs.ErrDealExpired, Mapping{http.StatusConflict, "DEAL_EXPIRED", "Deal has expired"}},
	{errs.ErrRedemptionCapReached, Mapping{http.StatusConflict, "REDEMPTION_CAP_REACHED", "Deal redemption cap reached"}},
	{errs.ErrClaimAlreadyHeld, Mapping{http.StatusConflict, "CLAIM_ALREADY_HELD", "An active claim for this deal already exists"}},
	{errs.ErrCodeAlreadyUsed, Mapping{http.StatusConflict, "CODE_ALREADY_USED", "Claim code already used"}},
	{errs.ErrAlreadyVerified, Mapping{http.StatusConflict, "ALREADY_VERIFIED", "Claim code already verified"}},
	{errs.ErrClaimNotVerified, Mapping{http.StatusConflict, "CLAIM_NOT_VERIFIED", "Claim has not been verified"}},
	{errs.ErrAlreadyUsed, Mapping{http.StatusConflict, "ALREADY_USED", "Claim already used"}},
	{errs.ErrEventNotPending, Mapping{http.StatusConflict, "EVENT_NOT_PENDING", "Commission event is not pending"}},
	{errs.ErrOverlappingBatch, Mapping{http.StatusConflict, "OVERLAPPING_BATCH", "Commission events already batched"}},
	{errs.ErrAlreadyPaid, Mapping{http.StatusConflict, "ALREADY_PAID", "Payout batch already paid"}},
	{errs.ErrSessionAlreadyOpen, Mapping{http.StatusConflict, "SESSION_ALREADY_OPEN", "POS session already open for terminal"}},
	{errs.ErrSessionNotOpen, Mapping{http.StatusConflict, "SESSION_NOT_OPEN", "POS session is not open"}},
	{errs.ErrPINTaken, Mapping{http.StatusConflict, "PIN_TAKEN", "Verification code already in use"}},
	{errs.ErrConcurrentModification, Mapping{http.StatusConflict, "CONCURRENT_MODIFICATION", "Record was modified concurrently"}},

	// 422
	{errs.ErrNoConfirmedEvents, Mapping{http.StatusUnprocessableEntity, "NO_CONFIRMED_EVENTS", "No confirmed commission events in period"}},

	// 400
	{errs.ErrInvalidSaleAmount, Mapping{http.StatusBadRequest, "INVALID_SALE_AMOUNT", "Sale amount must be greater than zero"}},
	{errs.ErrInvalidBillAmount, Mapping{http.StatusBadRequest, "INVALID_BILL_AMOUNT", "Bill amount must be a positive amount in whole cents"}},
	{errs.ErrInvalidDiscount, Mapping{http.StatusBadRequest, "INVALID_DISCOUNT", "Discount must be between zero and the bill amount"}},
	{errs.ErrInvalidDiscountPercent, Mapping{http.StatusBadRequest, "INVALID_DISCOUNT_PERCENT", "Discount percentage must be between 0 and 100"}},
	{errs.ErrInvalidPeriod, Mapping{http.StatusBadRequest, "INVALID_PERIOD", "Period start must not be after period end"}},
	{errs.ErrMissingAffiliateLink, Mapping{http.StatusBadRequest, "MISSING_AFFILIATE_LINK", "Online deals require an affiliate link"}},
	{errs.ErrMissingVerificationCode, Mapping{http.StatusBadRequest, "MISSING_VERIFICATION_CODE", "In-store deals require a verification code"}},
	{errs.ErrInvalidVerificationCode, Mapping{http.StatusBadRequest, "INVALID_VERIFICATION_CODE", "Invalid verification code format"}},
	{errs.ErrInvalidClaimCode, Mapping{http.StatusBadRequest, "INVALID_CLAIM_CODE", "Invalid claim code format"}},
	{errs.ErrInvalidDealKind, Mapping{http.StatusBadRequest, "INVALID_DEAL_KIND", "Invalid deal kind"}},
	{errs.ErrInvalidPaymentMethod, Mapping{http.StatusBadRequest, "INVALID_PAYMENT_METHOD", "Invalid payment method"}},
	{errs.ErrInvalidCommissionRate, Mapping{http.StatusBadRequest, "INVALID_COMMISSION_RATE", "Commission rate must be between 0 and 100"}},
	{errs.ErrInvalidPaymentReference, Mapping{http.StatusBadRequest, "INVALID_PAYMENT_REFERENCE", "Payment reference is required"}},
	{errs.ErrDomainValidation, Mapping{http.StatusBadRequest, "VALIDATION_FAILED", "Invalid request"}},
	{queries.ErrInvalidCursor, Mapping{http.StatusBadRequest, "INVALID_CURSOR", "Invalid cursor"}},
	{queries.ErrInvalidFilter, Mapping{http.StatusBadRequest, "INVALID_FILTER", "Invalid filter"}},
}

// Classify maps an error returned by a command or query to its HTTP shape.
// Anything unrecognised is an internal error.
func Classify(err error) Mapping {
	for _, r := range rules {
		if errs.Is(err, r.target) {
			return r.Mapping
		}
	}
	return internalError
}
