package campaigning

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-agent/infrastructure/integrator/crm/crmclient"
	metadomain "github.com/vfg2006/meta-ads-agent/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-agent/internal/config"
)

const (
	SourceCRM = "crm"
	SourceEnv = "env"
)

// CredentialResolver busca credenciais no CRM quando o agente está ligado a um,
// e cai nas variáveis de ambiente caso contrário
type CredentialResolver struct {
	crm    crmclient.Client
	static metadomain.Credentials
}

// NewCredentialResolver aceita crm nil para rodar só com credenciais estáticas
func NewCredentialResolver(crm crmclient.Client, metaCfg config.Meta) *CredentialResolver {
	return &CredentialResolver{
		crm:    crm,
		static: StaticCredentials(metaCfg),
	}
}

func StaticCredentials(metaCfg config.Meta) metadomain.Credentials {
	return metadomain.Credentials{
		AccessToken: metaCfg.AccessToken,
		AppID:       metaCfg.AppID,
		AppSecret:   metaCfg.AppSecret,
		AdAccountID: metaCfg.AdAccountID,
		BaseURL:     metaCfg.URL,
		Timeout:     metaCfg.Timeout,
	}.WithDefaults()
}

func (r *CredentialResolver) Source() string {
	if r.crm != nil {
		return SourceCRM
	}
	return SourceEnv
}

func (r *CredentialResolver) Resolve(ctx context.Context) (*metadomain.Credentials, error) {
	if r.crm == nil {
		if !r.static.IsConfigured() {
			return nil, ErrCredentialsNotConfigured
		}
		creds := r.static
		return &creds, nil
	}

	creds, err := r.crm.FetchCredentials(ctx)
	if err == nil {
		return creds, nil
	}

	if errors.Is(err, crmclient.ErrNotConfigured) {
		return nil, ErrCredentialsNotConfigured
	}

	// CRM fora do ar: usa a última credencial válida, se houver
	if cached := r.crm.CachedCredentials(); cached != nil {
		logrus.WithError(err).Warn("credentials: crm unreachable, using cached credentials")
		return cached, nil
	}

	return nil, err
}
