package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background(), "")
	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))

	ctx, id = WithCorrelationID(context.Background(), "req-123")
	assert.Equal(t, "req-123", id)
	assert.Equal(t, "req-123", GetCorrelationID(ctx))

	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestKeepInDevelopment(t *testing.T) {
	assert.True(t, keepInDevelopment("correlation_id"))
	assert.True(t, keepInDevelopment("campaign_id"))
	assert.True(t, keepInDevelopment("ad_account_id"))
	assert.True(t, keepInDevelopment("status_code"))
	assert.False(t, keepInDevelopment("user_agent"))
	assert.False(t, keepInDevelopment("referer"))
}
