package cmd

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"game-reviews/internal/data/repository"
	"game-reviews/internal/wire"
	"game-reviews/pkg/utils"
)

func TestServe(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := repository.NewReviewFileRepository(afero.NewMemMapFs(), "/reviews.json", zap.NewNop())
	app := wire.Wiring(repository.NewRepository(store), &utils.Config{}, zap.NewNop())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, ln, app.Router, time.Second, zap.NewNop()) }()

	transport := &http.Transport{DisableKeepAlives: true}
	client := &http.Client{Transport: transport, Timeout: 5 * time.Second}

	resp, err := client.Get("http://" + ln.Addr().String() + "/status")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	transport.CloseIdleConnections()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Server is running correctly.", string(body))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err, "expected a clean shutdown")
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after the context was cancelled")
	}
}

func TestAPIServer_PortInUse(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()

	_, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	err = APIServer(context.Background(), http.NotFoundHandler(), port, time.Second, zap.NewNop())
	require.Error(t, err)
}
