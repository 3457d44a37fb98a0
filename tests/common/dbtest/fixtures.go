//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"deals-engine/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func CreateTestVendor(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO vendors (name) VALUES ($1) RETURNING id", name).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestVendorWithRates sets per-vendor commission percentages.
func CreateTestVendorWithRates(t *testing.T, db DBLike, name string, clickRate, conversionRate decimal.Decimal) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO vendors (name, click_rate, conversion_rate) VALUES ($1, $2, $3) RETURNING id",
		name, clickRate.String(), conversionRate.String()).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestCustomer(t *testing.T, db DBLike, name, tier string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO customers (name, membership_tier) VALUES ($1, $2) RETURNING id", name, tier).Scan(&id)
	require.NoError(t, err)
	return id
}

type DealFixture struct {
	VendorID          uuid.UUID
	Title             string
	Kind              string
	DiscountPercent   decimal.Decimal
	VerificationCode  *string
	AffiliateLink     *string
	CommissionEnabled bool
	AllowRepeatClaims bool
	MaxRedemptions    *int32
	ExpiresAt         *time.Time
}

func InStoreDeal(vendorID uuid.UUID, pin string) DealFixture {
	return DealFixture{
		VendorID:          vendorID,
		Title:             "20% off the bill",
		Kind:              "in_store",
		DiscountPercent:   decimal.NewFromInt(20),
		VerificationCode:  ptr.Of(pin),
		AllowRepeatClaims: true,
	}
}

func OnlineDeal(vendorID uuid.UUID, link string) DealFixture {
	return DealFixture{
		VendorID:          vendorID,
		Title:             "15% off online orders",
		Kind:              "online",
		DiscountPercent:   decimal.NewFromInt(15),
		AffiliateLink:     ptr.Of(link),
		CommissionEnabled: true,
		AllowRepeatClaims: true,
	}
}

// CreateTestDeal inserts an active, approved deal.
func CreateTestDeal(t *testing.T, db DBLike, f DealFixture) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO deals (id, vendor_id, title, kind, discount_percentage, verification_code, affiliate_link,
		                   commission_enabled, allow_repeat_claims, is_active, is_approved, max_redemptions, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, true, true, $10, $11)`,
		id, f.VendorID, f.Title, f.Kind, f.DiscountPercent.String(), f.VerificationCode, f.AffiliateLink,
		f.CommissionEnabled, f.AllowRepeatClaims, f.MaxRedemptions, f.ExpiresAt)
	require.NoError(t, err)
	return id
}

// ExpireClaim backdates a claim so its validity window has passed.
func ExpireClaim(t *testing.T, db DBLike, claimID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE claims SET issued_at = now() - interval '2 days', expires_at = now() - interval '1 hour' WHERE id = $1", claimID)
	require.NoError(t, err)
}

func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
