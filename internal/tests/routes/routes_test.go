package routes_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/lk16/othello/internal"
	"github.com/lk16/othello/internal/config"
	"github.com/stretchr/testify/require"
)

func TestRootEndpoint(t *testing.T) {
	app := internal.SetupApp(&config.ServerConfig{})

	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)

	resp, err := app.Test(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/version", resp.Header.Get("Location"))
}

func TestVersionEndpoint(t *testing.T) {
	app := internal.SetupApp(&config.ServerConfig{})

	req, err := http.NewRequest(http.MethodGet, "/version", nil)
	require.NoError(t, err)

	resp, err := app.Test(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var version map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&version))
	require.NotEmpty(t, version["version"])
	require.NotEmpty(t, version["go_version"])
}

func TestWebsocketRequiresUpgrade(t *testing.T) {
	app := internal.SetupApp(&config.ServerConfig{})

	req, err := http.NewRequest(http.MethodGet, "/ws", nil)
	require.NoError(t, err)

	resp, err := app.Test(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusUpgradeRequired, resp.StatusCode)
}
