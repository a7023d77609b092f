package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"vacationplanner/models"
)

const (
	pingAttempts = 10
	pingInterval = 2 * time.Second
	listLimit    = 100
)

// PostgresStore keeps each plan as a JSONB document next to a few columns
// worth filtering on.
type PostgresStore struct {
	db  *sql.DB
	log *zap.Logger
}

// ─── Init ─────────────────────────────────────────────────────────────────────

// OpenPostgres connects, waits for the server to come up and migrates.
func OpenPostgres(ctx context.Context, dsn string, log *zap.Logger) (*PostgresStore, error) {
	if log == nil {
		log = zap.NewNop()
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// the database container may still be starting
	for i := 0; i < pingAttempts; i++ {
		if err = db.PingContext(ctx); err == nil {
			break
		}
		log.Warn("waiting for database", zap.Int("attempt", i+1), zap.Int("of", pingAttempts), zap.Error(err))
		select {
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		case <-time.After(pingInterval):
		}
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("connect database after %d attempts: %w", pingAttempts, err)
	}

	s := NewPostgresStore(db, log)
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	log.Info("database connected and migrated")
	return s, nil
}

func NewPostgresStore(db *sql.DB, log *zap.Logger) *PostgresStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &PostgresStore{db: db, log: log}
}

// ─── Migrations ───────────────────────────────────────────────────────────────

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS trip_plans (
		id          TEXT PRIMARY KEY,
		destination TEXT NOT NULL,
		theme       TEXT,
		start_date  DATE,
		end_date    DATE,
		plan        JSONB NOT NULL,
		created_at  TIMESTAMPTZ DEFAULT NOW(),
		updated_at  TIMESTAMPTZ DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_trip_plans_created_at
		ON trip_plans(created_at DESC)`,

	`CREATE INDEX IF NOT EXISTS idx_trip_plans_destination
		ON trip_plans(destination)`,
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	for _, m := range migrations {
		if _, err := s.db.ExecContext(ctx, m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

// ─── CRUD ─────────────────────────────────────────────────────────────────────

// SaveTripPlan inserts the plan, or overwrites it when the id already exists.
func (s *PostgresStore) SaveTripPlan(ctx context.Context, plan *models.TripPlan) (string, error) {
	id := plan.ID
	if id == "" {
		id = uuid.NewString()
	}
	data, err := json.Marshal(plan)
	if err != nil {
		return "", fmt.Errorf("encode trip plan: %w", err)
	}
	created := plan.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO trip_plans (id, destination, theme, start_date, end_date, plan, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			destination = EXCLUDED.destination,
			theme       = EXCLUDED.theme,
			start_date  = EXCLUDED.start_date,
			end_date    = EXCLUDED.end_date,
			plan        = EXCLUDED.plan,
			updated_at  = NOW()`,
		id, plan.Destination, plan.Theme(), plan.StartDate(), plan.EndDate(), data, created)
	if err != nil {
		return "", fmt.Errorf("save trip plan: %w", err)
	}
	return id, nil
}

func (s *PostgresStore) LoadTripPlan(ctx context.Context, id string) (*models.TripPlan, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT plan FROM trip_plans WHERE id = $1`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &models.NotFoundError{Resource: "trip", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("load trip plan: %w", err)
	}
	return decodePlan(id, data)
}

// ListTripPlans returns the newest plans first.
func (s *PostgresStore) ListTripPlans(ctx context.Context) ([]*models.TripPlan, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, plan FROM trip_plans
		ORDER BY created_at DESC LIMIT $1`, listLimit)
	if err != nil {
		return nil, fmt.Errorf("list trip plans: %w", err)
	}
	defer rows.Close()

	plans := []*models.TripPlan{}
	for rows.Next() {
		var id string
		var data []byte
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("scan trip plan: %w", err)
		}
		p, err := decodePlan(id, data)
		if err != nil {
			s.log.Warn("skipping unreadable trip plan", zap.String("id", id), zap.Error(err))
			continue
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (s *PostgresStore) DeleteTripPlan(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM trip_plans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete trip plan: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete trip plan: %w", err)
	}
	if n == 0 {
		return &models.NotFoundError{Resource: "trip", ID: id}
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *PostgresStore) Close(context.Context) error { return s.db.Close() }

// ─── Helpers ──────────────────────────────────────────────────────────────────

func decodePlan(id string, data []byte) (*models.TripPlan, error) {
	var p models.TripPlan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode trip plan %s: %w", id, err)
	}
	p.ID = id
	return &p, nil
}
