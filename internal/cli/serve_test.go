package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ats-gateway/internal/config"
	"github.com/MKhiriev/go-ats-gateway/models"
)

func TestServeSessions_ClientRuntimeRunsRefreshJob(t *testing.T) {
	h := newHarness(t)
	h.app.cfg = &config.StructuredConfig{Gateway: config.Gateway{Runtime: config.RuntimeClient}}

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	sessions, ws, err := h.app.serveSessions(cmd)
	require.NoError(t, err)
	assert.Equal(t, h.keeper, sessions)
	assert.Equal(t, 1, ws.Len())
}

func TestServeSessions_ServerRuntimeUsesSharedStore(t *testing.T) {
	h := newHarness(t)
	h.app.cfg = &config.StructuredConfig{Gateway: config.Gateway{Runtime: config.RuntimeServer}}

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	sessions, ws, err := h.app.serveSessions(cmd)
	require.NoError(t, err)
	assert.Zero(t, ws.Len())

	require.NoError(t, h.app.serverStore.Save(context.Background(), &models.Session{
		ID:     "sid-1",
		Tokens: models.Tokens{AccessToken: "shared"},
	}))

	_, err = sessions.Session(context.Background())
	assert.Error(t, err, "no session id in context")
}

func TestServe_RejectsBadListenAddress(t *testing.T) {
	h := newHarness(t)

	err := h.run("serve", "--listen", "nohost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "host:port")
}
