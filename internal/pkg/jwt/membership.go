package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const MembershipTokenTTL = 24 * time.Hour

// MembershipClaims is the self-contained payload rendered into the member QR code.
// Amounts are decimal strings so the signature covers the exact figures shown.
type MembershipClaims struct {
	CustomerID   uuid.UUID `json:"cid"`
	Name         string    `json:"name"`
	Tier         string    `json:"tier"`
	TotalSavings string    `json:"savings"`
	DealsClaimed int32     `json:"deals"`
	jwt.RegisteredClaims
}

type MembershipSigner struct {
	secretKey []byte
	issuer    string
	now       func() time.Time
}

func NewMembershipSigner(secretKey, issuer string, now func() time.Time) *MembershipSigner {
	if now == nil {
		now = time.Now
	}
	return &MembershipSigner{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		now:       now,
	}
}

// Sign stamps issued-at and expiry (issued-at + 24h) and returns the compact token.
func (s *MembershipSigner) Sign(claims MembershipClaims) (string, time.Time, error) {
	issuedAt := s.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(MembershipTokenTTL)

	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   claims.CustomerID.String(),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (s *MembershipSigner) Parse(tokenString string) (*MembershipClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&MembershipClaims{},
		hmacKeyFunc(s.secretKey),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		// Expiry is only reported once the signature has been checked.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*MembershipClaims)
	if !ok || !token.Valid || claims.CustomerID == uuid.Nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
