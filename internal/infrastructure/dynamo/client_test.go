package dynamo

import (
	"context"
	"testing"

	"github.com/nomzbank/auth-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_LocalEndpoint(t *testing.T) {
	cfg := &config.Config{
		AWSRegion:      "us-east-1",
		AWSEndpointURL: "http://localhost:4566",
		AWSAccessKeyID: "test",
		AWSSecretKey:   "test",
	}

	client, err := NewClient(context.Background(), cfg)

	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, "us-east-1", client.Options().Region)
	require.NotNil(t, client.Options().BaseEndpoint)
	assert.Equal(t, "http://localhost:4566", *client.Options().BaseEndpoint)
}

func TestNewClient_NoEndpointOverride(t *testing.T) {
	client, err := NewClient(context.Background(), &config.Config{AWSRegion: "eu-west-1"})

	require.NoError(t, err)
	assert.Nil(t, client.Options().BaseEndpoint)
}
