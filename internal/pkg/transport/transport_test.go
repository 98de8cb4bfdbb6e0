package transport

import (
	"path/filepath"
	"testing"

	"evstream/internal/pkg/transport/transporttest"

	"github.com/stretchr/testify/require"
)

func TestInsecure(t *testing.T) {
	c := Config{Security: SecurityInsecure}
	opt, err := c.ServerOption()
	require.NoError(t, err)
	require.NotNil(t, opt)
	dial, err := c.DialOption()
	require.NoError(t, err)
	require.NotNil(t, dial)
}

func TestTLS(t *testing.T) {
	files := transporttest.WriteCerts(t)
	c := Config{
		Security: SecurityTLS,
		CAFile:   files.CAFile,
		CertFile: files.CertFile,
		KeyFile:  files.KeyFile,
	}
	_, err := c.ServerOption()
	require.NoError(t, err)
	_, err = c.DialOption()
	require.NoError(t, err)
}

func TestTLSMissingMaterial(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.pem")
	for _, c := range []Config{
		{Security: SecurityTLS},
		{Security: SecurityTLS, CertFile: missing, KeyFile: missing},
	} {
		_, err := c.ServerOption()
		require.ErrorIs(t, err, ErrCertificateLoad)
	}
	for _, c := range []Config{
		{Security: SecurityTLS},
		{Security: SecurityTLS, CAFile: missing},
	} {
		_, err := c.DialOption()
		require.ErrorIs(t, err, ErrCertificateLoad)
	}
}

func TestUnknownSecurity(t *testing.T) {
	_, err := Config{Security: "plaintext"}.ServerOption()
	require.ErrorIs(t, err, ErrUnknownSecurity)
	_, err = Config{Security: "plaintext"}.DialOption()
	require.ErrorIs(t, err, ErrUnknownSecurity)
}

func TestListenBindFailure(t *testing.T) {
	lis, err := Listen("127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()
	_, err = Listen(lis.Addr().String())
	require.ErrorIs(t, err, ErrBind)
}
