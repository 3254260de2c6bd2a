package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"CONFIG",
	"APP_NAME",
	"APP_LOG_LEVEL",
	"SERVER_ADDRESS",
	"SERVER_REQUEST_TIMEOUT",
	"SERVER_SHUTDOWN_TIMEOUT",
	"CLOUD_CLIENT_HOSTNAME",
	"CLOUD_CLIENT_IP_ADDRESS",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		if old, ok := os.LookupEnv(k); ok {
			require.NoError(t, os.Unsetenv(k))
			t.Cleanup(func() { _ = os.Setenv(k, old) })
		}
	}
}

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// stubHostLookups replaces host resolution for the duration of the test.
func stubHostLookups(t *testing.T, hostname, ip string) {
	t.Helper()
	oldHostname, oldIP := lookupHostname, lookupIP
	lookupHostname = func() (string, error) {
		if hostname == "" {
			return "", os.ErrNotExist
		}
		return hostname, nil
	}
	lookupIP = func() (string, error) {
		if ip == "" {
			return "", errNoNonLoopbackAddress
		}
		return ip, nil
	}
	t.Cleanup(func() {
		lookupHostname, lookupIP = oldHostname, oldIP
	})
}
