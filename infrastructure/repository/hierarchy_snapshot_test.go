package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/meta-ads-agent/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-agent/internal/domain"
)

type execCall struct {
	query string
	args  []any
}

type fakeQueryer struct {
	calls []execCall
	err   error
}

func (f *fakeQueryer) ExecContext(_ context.Context, query string, args ...any) (sql.Result, error) {
	f.calls = append(f.calls, execCall{query: query, args: args})
	if f.err != nil {
		return nil, f.err
	}
	return driverResult(1), nil
}

func (f *fakeQueryer) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeQueryer) QueryRowContext(context.Context, string, ...any) *sql.Row {
	return nil
}

type driverResult int64

func (r driverResult) LastInsertId() (int64, error) { return 0, nil }
func (r driverResult) RowsAffected() (int64, error) { return int64(r), nil }

func TestHierarchySnapshotRepository_Save(t *testing.T) {
	q := &fakeQueryer{}
	repo := NewHierarchySnapshotRepository(q)

	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	snapshot := &domain.HierarchySnapshot{
		ID:            "aB3dE9",
		AdAccountID:   "123",
		DatePreset:    "last_7d",
		CampaignCount: 1,
		TotalSpend:    10.5,
		Campaigns: []metadomain.CampaignNode{
			{ID: "c1", Name: "Verão", AdSets: []metadomain.AdSetNode{}},
		},
		CreatedAt: createdAt,
	}

	require.NoError(t, repo.Save(context.Background(), snapshot))
	require.Len(t, q.calls, 1)

	call := q.calls[0]
	assert.Contains(t, call.query, "INSERT INTO hierarchy_snapshots")
	assert.Contains(t, call.query, "date_preset,range_since,range_until")
	assert.Contains(t, call.query, "$11")
	require.Len(t, call.args, 11)
	assert.Equal(t, "aB3dE9", call.args[0])
	assert.Equal(t, "123", call.args[1])
	assert.Nil(t, call.args[3])
	assert.Nil(t, call.args[4])
	assert.Equal(t, 10.5, call.args[8])
	assert.JSONEq(t, `[{"id":"c1","name":"Verão","status":"","objective":"","performance_metrics":null,"ad_sets":[]}]`, call.args[9].(string))
	assert.Equal(t, createdAt, call.args[10])
}

func TestHierarchySnapshotRepository_SaveErrors(t *testing.T) {
	repo := NewHierarchySnapshotRepository(&fakeQueryer{})
	assert.Error(t, repo.Save(context.Background(), nil))

	failing := &fakeQueryer{err: errors.New("connection reset")}
	repo = NewHierarchySnapshotRepository(failing)
	err := repo.Save(context.Background(), &domain.HierarchySnapshot{ID: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestHierarchySnapshotRepository_SaveTimeRange(t *testing.T) {
	q := &fakeQueryer{}
	repo := NewHierarchySnapshotRepository(q)

	since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(context.Background(), &domain.HierarchySnapshot{
		ID:          "Rg7Qw2",
		AdAccountID: "123",
		Since:       &since,
		Until:       &until,
	}))
	require.Len(t, q.calls, 1)

	args := q.calls[0].args
	assert.Equal(t, "", args[2])
	assert.Equal(t, &since, args[3])
	assert.Equal(t, &until, args[4])
}
