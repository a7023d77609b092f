package database

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacationplanner/models"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresStore(db, nil), mock
}

func samplePlan() *models.TripPlan {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return &models.TripPlan{
		Preferences: models.TripPreferences{
			Budget:        3000,
			Currency:      "USD",
			StartDate:     start,
			EndDate:       start.AddDate(0, 0, 4),
			Theme:         "Culture",
			GroupSize:     2,
			StartingPoint: "New York City, USA",
		},
		Destination:     "Paris, France",
		BudgetBreakdown: models.NewBudgetBreakdown(3000, "USD"),
		CreatedAt:       start.AddDate(0, -1, 0),
	}
}

func planJSON(t *testing.T, p *models.TripPlan) []byte {
	t.Helper()
	b, err := json.Marshal(p)
	require.NoError(t, err)
	return b
}

func TestPostgres_Migrate(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS trip_plans").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_trip_plans_created_at").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_trip_plans_destination").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_MigrateFailure(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS trip_plans").WillReturnError(errors.New("permission denied"))

	err := s.Migrate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestPostgres_SaveNewPlanGetsUUID(t *testing.T) {
	s, mock := newMockStore(t)
	plan := samplePlan()
	mock.ExpectExec("INSERT INTO trip_plans").
		WithArgs(sqlmock.AnyArg(), "Paris, France", "Culture", plan.StartDate(), plan.EndDate(), sqlmock.AnyArg(), plan.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := s.SaveTripPlan(context.Background(), plan)
	require.NoError(t, err)
	assert.Len(t, id, 36)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_SaveExistingIDUpserts(t *testing.T) {
	s, mock := newMockStore(t)
	plan := samplePlan()
	plan.ID = "trip-42"
	mock.ExpectExec("ON CONFLICT \\(id\\) DO UPDATE").
		WithArgs("trip-42", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := s.SaveTripPlan(context.Background(), plan)
	require.NoError(t, err)
	assert.Equal(t, "trip-42", id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_SaveError(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec("INSERT INTO trip_plans").WillReturnError(errors.New("connection reset"))

	_, err := s.SaveTripPlan(context.Background(), samplePlan())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save trip plan")
}

func TestPostgres_Load(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery("SELECT plan FROM trip_plans WHERE id = \\$1").
		WithArgs("abc").
		WillReturnRows(sqlmock.NewRows([]string{"plan"}).AddRow(planJSON(t, samplePlan())))

	p, err := s.LoadTripPlan(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", p.ID)
	assert.Equal(t, "Paris, France", p.Destination)
	assert.Equal(t, 5, p.Preferences.TripDurationDays())
	assert.InDelta(t, 1200, p.BudgetBreakdown.Transportation, 1e-9)
}

func TestPostgres_LoadMissing(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery("SELECT plan FROM trip_plans").
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"plan"}))

	_, err := s.LoadTripPlan(context.Background(), "nope")
	assert.True(t, models.IsNotFound(err))
}

func TestPostgres_ListSkipsUnreadableRows(t *testing.T) {
	s, mock := newMockStore(t)
	rome := samplePlan()
	rome.Destination = "Rome, Italy"
	mock.ExpectQuery("SELECT id, plan FROM trip_plans").
		WithArgs(listLimit).
		WillReturnRows(sqlmock.NewRows([]string{"id", "plan"}).
			AddRow("a", planJSON(t, samplePlan())).
			AddRow("broken", []byte("{not json")).
			AddRow("b", planJSON(t, rome)))

	plans, err := s.ListTripPlans(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "a", plans[0].ID)
	assert.Equal(t, "Rome, Italy", plans[1].Destination)
}

func TestPostgres_ListEmpty(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery("SELECT id, plan FROM trip_plans").
		WillReturnRows(sqlmock.NewRows([]string{"id", "plan"}))

	plans, err := s.ListTripPlans(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, plans)
	assert.Empty(t, plans)
}

func TestPostgres_Delete(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec("DELETE FROM trip_plans WHERE id = \\$1").WithArgs("a").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM trip_plans WHERE id = \\$1").WithArgs("gone").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.DeleteTripPlan(context.Background(), "a"))
	err := s.DeleteTripPlan(context.Background(), "gone")
	assert.True(t, models.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
