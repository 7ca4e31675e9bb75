package main

import (
	"fmt"
	"net/http"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/meta-ads-agent/infrastructure/integrator/crm/crmclient"
	"github.com/vfg2006/meta-ads-agent/infrastructure/repository"
	"github.com/vfg2006/meta-ads-agent/internal/config"
	"github.com/vfg2006/meta-ads-agent/internal/usecases/campaigning"
	"github.com/vfg2006/meta-ads-agent/pkg/log"
)

var version = "0.1.0"

func main() {
	root := &cobra.Command{
		Use:           "meta-agent",
		Short:         "Agente de integração com a Meta Marketing API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		serveCmd(),
		statusCmd(),
		fetchCmd(),
		adSetsCmd(),
		createCampaignCmd(),
		setStatusCmd(),
		syncCmd(),
		tokenCmd(),
		versionCmd(),
	)

	if err := root.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Mostra a versão do agente",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("meta-agent v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
		},
	}
}

// loadConfig carrega a configuração e aplica o nível de log
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	log.Configure(cfg.App.LogLevel)

	return cfg, nil
}

// newCampaignService monta o caso de uso; snapshotRepo pode ser nil
func newCampaignService(cfg *config.Config, snapshotRepo repository.HierarchySnapshotRepository) campaigning.CampaignService {
	var crm crmclient.Client
	if cfg.CRM.Enabled() {
		crm = crmclient.NewClient(cfg.CRM, &http.Client{Timeout: cfg.CRM.Timeout})
		logrus.WithField("crm_base_url", cfg.CRM.BaseURL).Info("Credenciais do Meta serão buscadas no CRM")
	}

	resolver := campaigning.NewCredentialResolver(crm, cfg.Meta)
	// sem cliente compartilhado: cada conta usa o timeout das próprias credenciais
	integrators := campaigning.NewIntegratorFactory(nil)

	return campaigning.NewService(resolver, integrators, snapshotRepo)
}
