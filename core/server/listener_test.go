package server

import (
	"errors"
	"net"
	"strconv"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListen(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ln, err := Listen(Config{Host: "127.0.0.1", Port: 0})
		require.NoError(t, err)
		defer ln.Close()
		assert.NotZero(t, ln.Addr().(*net.TCPAddr).Port)
	})

	t.Run("PortInUse", func(t *testing.T) {
		busy, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer busy.Close()
		port := busy.Addr().(*net.TCPAddr).Port

		ln, err := Listen(Config{Host: "127.0.0.1", Port: port})
		assert.Nil(t, ln)
		assert.ErrorIs(t, err, ErrPortInUse)
		assert.NotErrorIs(t, err, ErrBind)
		assert.ErrorIs(t, err, syscall.EADDRINUSE)

		var bindErr *BindError
		require.True(t, errors.As(err, &bindErr))
		assert.Equal(t, port, bindErr.Port)
		assert.Contains(t, err.Error(), strconv.Itoa(port))
	})

	t.Run("OtherBindError", func(t *testing.T) {
		orig := netListen
		defer func() { netListen = orig }()
		netListen = func(network, address string) (net.Listener, error) {
			return nil, &net.OpError{Op: "listen", Net: network, Err: syscall.EACCES}
		}

		ln, err := Listen(Config{Port: 80})
		assert.Nil(t, ln)
		assert.ErrorIs(t, err, ErrBind)
		assert.NotErrorIs(t, err, ErrPortInUse)
		assert.ErrorIs(t, err, syscall.EACCES)
	})
}
