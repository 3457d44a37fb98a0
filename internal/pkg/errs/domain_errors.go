package errs

// Domain-specific sentinel errors shared by the domain, usecase and handler layers.
// Callers classify with errors.Is; wrapping with Mark keeps the sentinel identity.
var (
	// Not found
	ErrDealNotFound     = New("deal not found")
	ErrClaimNotFound    = New("claim not found")
	ErrCodeNotFound     = New("claim code not found")
	ErrPINNotFound      = New("verification code not found")
	ErrCustomerNotFound = New("customer not found")
	ErrVendorNotFound   = New("vendor not found")
	ErrEventNotFound    = New("commission event not found")
	ErrBatchNotFound    = New("payout batch not found")
	ErrSessionNotFound  = New("pos session not found")

	// Issuance conflicts
	ErrDealInactive         = New("deal is not active")
	ErrDealExpired          = New("deal has expired")
	ErrRedemptionCapReached = New("deal redemption cap reached")
	ErrClaimAlreadyHeld     = New("customer already holds an active claim for this deal")

	// Verification conflicts
	ErrCodeExpired     = New("claim code has expired")
	ErrCodeAlreadyUsed = New("claim code already used")
	ErrAlreadyVerified = New("claim code already verified")
	ErrWrongVendor     = New("claim belongs to another vendor")
	ErrTokenExpired    = New("membership token expired")
	ErrTokenInvalid    = New("membership token invalid")

	// Transaction conflicts
	ErrClaimNotVerified = New("claim has not been verified")
	ErrClaimExpired     = New("claim has expired")
	ErrAlreadyUsed      = New("claim already used")

	// Commission / payout conflicts
	ErrEventNotPending    = New("commission event is not pending")
	ErrNoConfirmedEvents  = New("no confirmed commission events in period")
	ErrOverlappingBatch   = New("commission events already assigned to another batch")
	ErrAlreadyPaid        = New("payout batch already paid")
	ErrSessionAlreadyOpen = New("pos session already open for terminal")
	ErrSessionNotOpen     = New("pos session is not open")
	ErrPINTaken           = New("verification code already used by another deal of this vendor")

	// Validation
	ErrInvalidSaleAmount       = New("sale amount must be greater than zero")
	ErrInvalidBillAmount       = New("bill amount must be a positive amount in whole cents")
	ErrInvalidDiscount         = New("discount amount must be between zero and the bill amount")
	ErrInvalidDiscountPercent  = New("discount percentage must be between 0 and 100")
	ErrInvalidPeriod           = New("period start must not be after period end")
	ErrMissingAffiliateLink    = New("online deals require an affiliate link")
	ErrMissingVerificationCode = New("in-store deals require a verification code")
	ErrInvalidVerificationCode = New("invalid verification code format")
	ErrInvalidClaimCode        = New("invalid claim code format")
	ErrInvalidDealKind         = New("invalid deal kind")
	ErrInvalidPaymentMethod    = New("invalid payment method")
	ErrInvalidCommissionRate   = New("commission rate must be between 0 and 100")
	ErrInvalidPaymentReference = New("payment reference is required")
	ErrDomainValidation        = New("domain validation error")
	ErrCodeGenerationExhausted = New("could not generate a unique code")
	ErrDatabaseOperationFailed = New("database operation failed")
	ErrConcurrentModification  = New("record was modified concurrently")
)
