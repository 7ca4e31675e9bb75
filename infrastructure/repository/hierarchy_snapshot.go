package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-agent/infrastructure/database/postgres"
	"github.com/vfg2006/meta-ads-agent/internal/domain"
)

//go:generate mockgen -source=hierarchy_snapshot.go -destination=mocks/hierarchy_snapshot.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const hierarchySnapshotsTable = "hierarchy_snapshots"

// HierarchySnapshotRepository grava o histórico de snapshots. Nada lê estes dados de volta para as consultas ao Meta.
type HierarchySnapshotRepository interface {
	Save(ctx context.Context, snapshot *domain.HierarchySnapshot) error
}

type hierarchySnapshotRepository struct {
	conn postgres.Queryer
}

func NewHierarchySnapshotRepository(conn postgres.Queryer) HierarchySnapshotRepository {
	return &hierarchySnapshotRepository{
		conn: conn,
	}
}

func (r *hierarchySnapshotRepository) Save(ctx context.Context, snapshot *domain.HierarchySnapshot) error {
	if snapshot == nil {
		return errors.New("snapshot is nil")
	}

	campaigns, err := json.Marshal(snapshot.Campaigns)
	if err != nil {
		return errors.Wrap(err, "marshal campaigns")
	}

	sqlQuery, args, err := squirrel.
		Insert(hierarchySnapshotsTable).
		Columns(
			"id",
			"ad_account_id",
			"date_preset",
			"range_since",
			"range_until",
			"campaign_count",
			"adset_count",
			"ad_count",
			"total_spend",
			"campaigns",
			"created_at",
		).
		Values(
			snapshot.ID,
			snapshot.AdAccountID,
			snapshot.DatePreset,
			snapshot.Since,
			snapshot.Until,
			snapshot.CampaignCount,
			snapshot.AdSetCount,
			snapshot.AdCount,
			snapshot.TotalSpend,
			string(campaigns),
			snapshot.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "build insert")
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		logrus.WithFields(logrus.Fields{
			"snapshot_id":   snapshot.ID,
			"ad_account_id": snapshot.AdAccountID,
		}).WithError(err).Error("snapshot: insert failed")
		return errors.Wrap(err, "insert hierarchy snapshot")
	}

	return nil
}
