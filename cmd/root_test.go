package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"mocklet/core/server"
	"mocklet/feature/mock"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer lets the test read output while the server goroutine writes it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func executeCommand(ctx context.Context, root *cobra.Command, out io.Writer, args ...string) error {
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())
	return port
}

func TestHelpFlag(t *testing.T) {
	out := new(syncBuffer)
	err := executeCommand(context.Background(), NewRootCmd(), out, "--help")
	require.NoError(t, err)

	for _, flag := range []string{"--url", "--response", "--port", "--status", "--log-level"} {
		assert.Contains(t, out.String(), flag)
	}
}

func TestInvalidEndpoint(t *testing.T) {
	port := freePort(t)
	out := new(syncBuffer)

	err := executeCommand(context.Background(), NewRootCmd(), out,
		"--url", "api/test", "--response", "example.json", "--host", "127.0.0.1", "--port", strconv.Itoa(port))
	require.ErrorIs(t, err, mock.ErrInvalidEndpoint)
	assert.Equal(t, `Error: The API endpoint must start with "/".`, describe(err))
	assert.NotContains(t, out.String(), "Mock API is running")

	// Nothing was left bound on the port.
	ln, err := net.Listen("tcp", "127.0.0.1:"+strconv.Itoa(port))
	require.NoError(t, err)
	ln.Close()
}

func TestInvalidStatusAndPort(t *testing.T) {
	err := executeCommand(context.Background(), NewRootCmd(), new(syncBuffer), "--status", "1000")
	assert.ErrorIs(t, err, mock.ErrInvalidStatus)

	err = executeCommand(context.Background(), NewRootCmd(), new(syncBuffer), "--port", "70000")
	assert.ErrorIs(t, err, server.ErrInvalidPort)
	assert.True(t, strings.HasPrefix(describe(err), "Error: "))
}

func TestPortAlreadyInUse(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()
	port := busy.Addr().(*net.TCPAddr).Port

	out := new(syncBuffer)
	err = executeCommand(context.Background(), NewRootCmd(), out,
		"--host", "127.0.0.1", "--port", strconv.Itoa(port))
	require.ErrorIs(t, err, server.ErrPortInUse)
	assert.Equal(t, fmt.Sprintf("Error: Port %d is already in use.", port), describe(err))
	assert.NotContains(t, out.String(), "Mock API is running")
}

func TestDescribe_BindError(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &server.BindError{Port: 80})
	assert.True(t, strings.HasPrefix(describe(err), "Server error: "))
}

func TestServeJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"message":"This is a test response"}`), 0o644))
	port := freePort(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := new(syncBuffer)
	done := make(chan error, 1)
	go func() {
		done <- executeCommand(ctx, NewRootCmd(), out,
			"--url", "/api/test", "--response", path,
			"--host", "127.0.0.1", "--port", strconv.Itoa(port), "--log-level", "error")
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Mock API is running at")
	}, 5*time.Second, 20*time.Millisecond)
	assert.Contains(t, out.String(), fmt.Sprintf("http://127.0.0.1:%d/api/test", port))

	req, err := http.NewRequest("GET", fmt.Sprintf("http://127.0.0.1:%d/api/test", port), nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://example.com")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, `{"message":"This is a test response"}`, string(body))
	assert.NotEmpty(t, resp.Header.Get("X-Ray-ID"))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
