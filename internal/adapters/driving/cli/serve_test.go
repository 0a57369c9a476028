package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCmd_Flags(t *testing.T) {
	addr := serveCmd.Flags().Lookup("addr")
	require.NotNil(t, addr)
	assert.NotNil(t, serveCmd.Flags().Lookup("no-mcp"))
}

func TestServeCmd_RequiresServices(t *testing.T) {
	restore := clearServices()
	defer restore()

	_, err := executeCommand(context.Background(), "serve", "--addr", "127.0.0.1:0")

	assert.Error(t, err)
}

func TestMCPServeCmd_PortFlag(t *testing.T) {
	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestMCPServeCmd_RequiresSearch(t *testing.T) {
	restore := clearServices()
	defer restore()

	_, err := executeCommand(context.Background(), "mcp", "serve")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "search service not configured")
}

func TestServeCmd_StopsOnCancel(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := executeCommand(ctx, "serve", "--addr", "127.0.0.1:0")

	require.NoError(t, err)
	assert.Contains(t, out, "Serving on 127.0.0.1:0")
	assert.Equal(t, []bool{false}, ts.ensureCalls)
}
