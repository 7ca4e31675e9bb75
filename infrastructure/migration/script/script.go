package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-agent/infrastructure/database/postgres"
	"github.com/vfg2006/meta-ads-agent/internal/config"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS hierarchy_snapshots (
		id             VARCHAR(21)    PRIMARY KEY,
		ad_account_id  VARCHAR(64)    NOT NULL,
		date_preset    VARCHAR(32)    NOT NULL DEFAULT '',
		range_since    DATE,
		range_until    DATE,
		campaign_count INTEGER        NOT NULL DEFAULT 0,
		adset_count    INTEGER        NOT NULL DEFAULT 0,
		ad_count       INTEGER        NOT NULL DEFAULT 0,
		total_spend    NUMERIC(14, 2) NOT NULL DEFAULT 0,
		campaigns      JSONB          NOT NULL DEFAULT '[]'::jsonb,
		created_at     TIMESTAMPTZ    NOT NULL DEFAULT NOW()
	)`,
	`ALTER TABLE hierarchy_snapshots ADD COLUMN IF NOT EXISTS range_since DATE`,
	`ALTER TABLE hierarchy_snapshots ADD COLUMN IF NOT EXISTS range_until DATE`,
	`CREATE INDEX IF NOT EXISTS idx_hierarchy_snapshots_account_created
		ON hierarchy_snapshots (ad_account_id, created_at DESC)`,
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar no banco: %v", err)
	}
	defer conn.Close()

	startTime := time.Now()
	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				logrus.Errorf("ERRO no statement %d: %v", i+1, err)
				return err
			}
		}
		return nil
	})
	if err != nil {
		logrus.Fatalf("Migração abortada: %v", err)
	}

	logrus.Infof("Migração concluída: %d statements em %v", len(statements), time.Since(startTime))
}
