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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()
	return CreateTestHost(t, db, email, role, "PROMOTION_FIRST")
}

// CreateTestHost also sets the promotion priority the host's properties are priced under.
func CreateTestHost(t *testing.T, db DBLike, email, role, priority string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, role, promotion_priority) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		userID, email, role, priority)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}
	return userID
}

func PropertyTypeID(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM property_types WHERE name = $1", name).Scan(&id)
	require.NoError(t, err)
	return id
}

type PropertyFixture struct {
	HostID         uuid.UUID
	PropertyTypeID *uuid.UUID
	Title          string
	BasePrice      string
	Currency       string
	Lat            float64
	Lng            float64
}

func CreateTestProperty(t *testing.T, db DBLike, p PropertyFixture) uuid.UUID {
	t.Helper()

	if p.Currency == "" {
		p.Currency = "EUR"
	}
	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO properties (id, host_id, property_type_id, title, base_price, currency, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8)`,
		id, p.HostID, p.PropertyTypeID, p.Title, p.BasePrice, p.Currency, p.Lat, p.Lng)
	require.NoError(t, err)
	return id
}

func CreateTestSpecialPrice(t *testing.T, db DBLike, propertyID uuid.UUID, price string, start, end time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO special_prices (id, property_id, price_per_night, start_date, end_date)
		VALUES ($1, $2, $3::numeric, $4, $5)`,
		id, propertyID, price, start, end)
	require.NoError(t, err)
	return id
}

func CreateTestReservation(t *testing.T, db DBLike, propertyID, guestID uuid.UUID, start, end time.Time, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO reservations (id, property_id, guest_id, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		id, propertyID, guestID, start, end, status)
	require.NoError(t, err)
	return id
}

// CreateTestCommissionRule inserts an active rule; a nil propertyTypeID makes it global.
func CreateTestCommissionRule(t *testing.T, db DBLike, propertyTypeID *uuid.UUID, hostRate, hostFixed, clientRate, clientFixed string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO commission_rules (id, title, host_commission_rate, host_commission_fixed,
		                              client_commission_rate, client_commission_fixed, property_type_id)
		VALUES ($1, 'fixture', $2::numeric, $3::numeric, $4::numeric, $5::numeric, $6)`,
		id, hostRate, hostFixed, clientRate, clientFixed, propertyTypeID)
	require.NoError(t, err)
	return id
}

func CreateTestExtra(t *testing.T, db DBLike, name, priceEUR, priceMGA, pricingType string, attachTo ...uuid.UUID) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	id := uuid.New()
	_, err := db.Exec(ctx, `
		INSERT INTO extras (id, name, price_eur, price_mga, pricing_type)
		VALUES ($1, $2, $3::numeric, $4::numeric, $5)`,
		id, name, priceEUR, priceMGA, pricingType)
	require.NoError(t, err)

	for _, propertyID := range attachTo {
		_, err := db.Exec(ctx, "INSERT INTO property_extras (property_id, extra_id) VALUES ($1, $2)", propertyID, id)
		require.NoError(t, err)
	}
	return id
}

func CountRows(t *testing.T, db DBLike, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO property_types (id, name) VALUES
		    (gen_random_uuid(), 'Villa'),
		    (gen_random_uuid(), 'Bungalow')
		ON CONFLICT (name) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
