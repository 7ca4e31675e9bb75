package campaigning

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meta-ads-agent/infrastructure/integrator/crm/crmclient"
	metadomain "github.com/vfg2006/meta-ads-agent/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-agent/internal/config"
)

type stubCRM struct {
	creds  *metadomain.Credentials
	err    error
	cached *metadomain.Credentials
}

func (s *stubCRM) FetchCredentials(context.Context) (*metadomain.Credentials, error) {
	return s.creds, s.err
}

func (s *stubCRM) CachedCredentials() *metadomain.Credentials {
	return s.cached
}

func TestCredentialResolver_Static(t *testing.T) {
	r := NewCredentialResolver(nil, config.Meta{
		URL:         "https://graph.facebook.com/v21.0",
		AccessToken: "EAAB",
		AdAccountID: "123",
	})

	assert.Equal(t, SourceEnv, r.Source())

	creds, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "EAAB", creds.AccessToken)
	assert.Equal(t, "https://graph.facebook.com/v21.0", creds.BaseURL)
	assert.Equal(t, metadomain.DefaultTimeout, creds.Timeout)
}

func TestCredentialResolver_StaticNotConfigured(t *testing.T) {
	r := NewCredentialResolver(nil, config.Meta{Timeout: 5 * time.Second})

	_, err := r.Resolve(context.Background())
	assert.ErrorIs(t, err, ErrCredentialsNotConfigured)
}

func TestCredentialResolver_CRM(t *testing.T) {
	pulled := &metadomain.Credentials{AccessToken: "from-crm", AdAccountID: "456"}

	tests := []struct {
		name      string
		crm       *stubCRM
		wantToken string
		wantErr   error
	}{
		{
			name:      "credenciais encontradas",
			crm:       &stubCRM{creds: pulled},
			wantToken: "from-crm",
		},
		{
			name:    "CRM ainda não configurou o Meta",
			crm:     &stubCRM{err: crmclient.ErrNotConfigured, cached: pulled},
			wantErr: ErrCredentialsNotConfigured,
		},
		{
			name:      "CRM fora do ar usa o cache",
			crm:       &stubCRM{err: &crmclient.TransportError{Detail: "timeout"}, cached: pulled},
			wantToken: "from-crm",
		},
		{
			name:    "CRM fora do ar sem cache",
			crm:     &stubCRM{err: &crmclient.TransportError{Detail: "timeout", Err: errors.New("i/o timeout")}},
			wantErr: &crmclient.TransportError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewCredentialResolver(tt.crm, config.Meta{AccessToken: "static-must-not-be-used"})
			assert.Equal(t, SourceCRM, r.Source())

			creds, err := r.Resolve(context.Background())
			if tt.wantErr != nil {
				require.Error(t, err)
				var transportErr *crmclient.TransportError
				if errors.As(tt.wantErr, &transportErr) {
					assert.ErrorAs(t, err, &transportErr)
				} else {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, creds.AccessToken)
		})
	}
}
