package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func newCommand(t *testing.T, flags ...*Flag) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	require.NoError(t, RegisterCommandFlags(cmd, flags))
	return cmd
}

func TestEnvVar(t *testing.T) {
	require.Equal(t, "EVSTREAM_SERVER_TICKER_MS", ServerTickerMSFlag.EnvVar())
}

func TestRegisterCommandFlagsDuplicate(t *testing.T) {
	cmd := newCommand(t, &PortFlag)
	require.Error(t, RegisterCommandFlags(cmd, []*Flag{&PortFlag}))
}

func TestRegisterCommandFlagsUnsupportedDefault(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	require.Error(t, RegisterCommandFlags(cmd, []*Flag{{Name: "ratio", Default: 0.5}}))
}

func TestValidateEnvDefaults(t *testing.T) {
	newCommand(t, &PortFlag, &ServerTickerMSFlag)
	require.NoError(t, ValidateEnv())
	require.Equal(t, uint(50051), Port)
	require.Equal(t, uint(2000), ServerTickerMS)
	require.Equal(t, "all", Recipients)
	require.Equal(t, "insecure", Transport)
}

func TestValidateEnvFromEnvironment(t *testing.T) {
	newCommand(t, &PortFlag, &MaxTicksFlag, &RecipientsFlag)
	t.Setenv(PortFlag.EnvVar(), "6001")
	t.Setenv(MaxTicksFlag.EnvVar(), "3")
	t.Setenv(RecipientsFlag.EnvVar(), "single")
	require.NoError(t, ValidateEnv())
	require.Equal(t, uint(6001), Port)
	require.Equal(t, uint(3), MaxTicks)
	require.Equal(t, "single", Recipients)
}

func TestValidateEnvFlagOverridesEnvironment(t *testing.T) {
	cmd := newCommand(t, &PortFlag)
	t.Setenv(PortFlag.EnvVar(), "6001")
	require.NoError(t, cmd.ParseFlags([]string{"--port", "7001"}))
	require.NoError(t, ValidateEnv())
	require.Equal(t, uint(7001), Port)
}

func TestValidateEnvRejectsInvalid(t *testing.T) {
	newCommand(t, &RecipientsFlag, &TransportFlag)
	t.Setenv(RecipientsFlag.EnvVar(), "some")
	require.Error(t, ValidateEnv())
	t.Setenv(RecipientsFlag.EnvVar(), "all")
	t.Setenv(TransportFlag.EnvVar(), "plaintext")
	require.Error(t, ValidateEnv())
}

func TestValidateEnvConfigFile(t *testing.T) {
	newCommand(t, &ConfigFlag, &QueueSizeFlag)
	path := filepath.Join(t.TempDir(), "evstream.yaml")
	require.NoError(t, os.WriteFile(path, []byte("queue-size: 4\n"), 0o600))
	t.Setenv(ConfigFlag.EnvVar(), path)
	require.NoError(t, ValidateEnv())
	require.Equal(t, uint(4), QueueSize)
}

func TestValidateEnvMissingConfigFile(t *testing.T) {
	newCommand(t, &ConfigFlag)
	t.Setenv(ConfigFlag.EnvVar(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, ValidateEnv())
}
