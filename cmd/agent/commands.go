package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/meta-ads-agent/infrastructure/database/postgres"
	metadomain "github.com/vfg2006/meta-ads-agent/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-agent/infrastructure/repository"
	"github.com/vfg2006/meta-ads-agent/internal/api"
	"github.com/vfg2006/meta-ads-agent/internal/config"
	"github.com/vfg2006/meta-ads-agent/internal/domain"
	"github.com/vfg2006/meta-ads-agent/internal/scheduler"
	"github.com/vfg2006/meta-ads-agent/internal/usecases/authenticating"
	"github.com/vfg2006/meta-ads-agent/pkg/utils"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Sobe a API HTTP e o agendador de snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			var snapshotRepo repository.HierarchySnapshotRepository
			if cfg.HierarchySync.Enabled {
				conn, err := pgconn(ctx, cfg)
				if err != nil {
					return err
				}
				defer conn.Close()
				snapshotRepo = repository.NewHierarchySnapshotRepository(conn)
			}

			campaignService := newCampaignService(cfg, snapshotRepo)

			syncService := scheduler.NewHierarchySyncService(campaignService, cfg.HierarchySync)
			if err := syncService.Start(ctx); err != nil {
				logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots")
			}

			server, err := api.New(cfg, campaignService, authenticating.NewService(cfg.Auth), syncService)
			if err != nil {
				return err
			}

			return server.Run(ctx)
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Verifica a conexão com a Graph API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			status := newCampaignService(cfg, nil).GetConnectionStatus(cmd.Context())
			fmt.Println(utils.PrettyJson(status))
			return nil
		},
	}
}

type rangeFlags struct {
	limit      int
	datePreset string
	since      string
	until      string
}

func (f *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.limit, "limit", 0, "Quantidade máxima de itens por nível (padrão 25, máximo 100)")
	cmd.Flags().StringVar(&f.datePreset, "date-preset", metadomain.DefaultDatePreset, "Preset de período dos insights")
	cmd.Flags().StringVar(&f.since, "since", "", "Data inicial (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.until, "until", "", "Data final (YYYY-MM-DD)")
}

func (f *rangeFlags) filters() (domain.CampaignHierarchyFilters, error) {
	dateRange, err := metadomain.ParseDateRange(f.datePreset, f.since, f.until)
	if err != nil {
		return domain.CampaignHierarchyFilters{}, err
	}
	return domain.CampaignHierarchyFilters{Limit: f.limit, DateRange: dateRange}, nil
}

func fetchCmd() *cobra.Command {
	flags := &rangeFlags{}

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Busca a hierarquia campanhas > conjuntos > anúncios",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			filters, err := flags.filters()
			if err != nil {
				return err
			}

			hierarchy, err := newCampaignService(cfg, nil).GetCampaignHierarchy(cmd.Context(), filters)
			if err != nil {
				return err
			}

			fmt.Println(utils.PrettyJson(hierarchy))
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

func adSetsCmd() *cobra.Command {
	flags := &rangeFlags{}

	cmd := &cobra.Command{
		Use:   "adsets <campaign-id>",
		Short: "Lista os conjuntos de anúncios de uma campanha",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			filters, err := flags.filters()
			if err != nil {
				return err
			}

			adSets, err := newCampaignService(cfg, nil).GetCampaignAdSets(cmd.Context(), args[0], filters)
			if err != nil {
				return err
			}

			fmt.Println(utils.PrettyJson(adSets))
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

func createCampaignCmd() *cobra.Command {
	request := &domain.CreateCampaignRequest{}

	cmd := &cobra.Command{
		Use:   "create-campaign",
		Short: "Cria uma campanha (PAUSED por padrão)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			created, err := newCampaignService(cfg, nil).CreateCampaign(cmd.Context(), request)
			if err != nil {
				return err
			}

			fmt.Println(utils.PrettyJson(created))
			return nil
		},
	}

	cmd.Flags().StringVar(&request.Name, "name", "", "Nome da campanha")
	cmd.Flags().StringVar(&request.Objective, "objective", "", "Objetivo (ex.: OUTCOME_TRAFFIC)")
	cmd.Flags().StringVar(&request.Status, "status", metadomain.StatusPaused, "Status inicial")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("objective")

	return cmd
}

func setStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <adset-id> <status>",
		Short: "Altera o status de entrega de um conjunto de anúncios",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			result, err := newCampaignService(cfg, nil).
				UpdateAdSetStatus(cmd.Context(), args[0], &domain.UpdateStatusRequest{Status: args[1]})
			if err != nil {
				return err
			}

			fmt.Println(utils.PrettyJson(result))
			return nil
		},
	}
}

func syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Grava um snapshot da hierarquia no PostgreSQL",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			conn, err := pgconn(ctx, cfg)
			if err != nil {
				return err
			}
			defer conn.Close()

			campaignService := newCampaignService(cfg, repository.NewHierarchySnapshotRepository(conn))
			resp, err := scheduler.NewHierarchySyncService(campaignService, cfg.HierarchySync).RunNow(ctx)
			if err != nil {
				return err
			}

			fmt.Println(utils.PrettyJson(resp))
			return nil
		},
	}
}

func tokenCmd() *cobra.Command {
	var subject, role string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Gera um token de acesso para a API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			token, err := authenticating.NewService(cfg.Auth).GenerateToken(subject, role, ttl)
			if err != nil {
				return err
			}

			fmt.Println(token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Identificação do consumidor do token")
	cmd.Flags().StringVar(&role, "role", domain.RoleViewer, "Role do token (admin ou viewer)")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Validade do token")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, cfg *config.Config) (*postgres.Connection, error) {
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn, nil
}
