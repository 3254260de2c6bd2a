package config

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEnvironment_Properties(t *testing.T) {
	cfg := &StructuredConfig{
		App:    App{Name: "service02"},
		Server: Server{HTTPAddress: ":0"},
		Cloud:  Cloud{Hostname: "node-1", IPAddress: "10.0.0.7"},
	}

	env := NewEnvironment(cfg, 51234)

	tests := []struct {
		key  string
		want string
	}{
		{KeyLocalServerPort, "51234"},
		{KeyServerPort, "0"},
		{KeyApplicationName, "service02"},
		{KeyCloudClientHostname, "node-1"},
		{KeyCloudClientIPAddress, "10.0.0.7"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			value, ok := env.Property(tt.key)
			assert.True(t, ok)
			assert.Equal(t, tt.want, value)
		})
	}
}

func TestNewEnvironment_UnsetKeys(t *testing.T) {
	env := NewEnvironment(&StructuredConfig{}, 0)

	for _, key := range []string{KeyLocalServerPort, KeyServerPort, KeyCloudClientHostname, KeyCloudClientIPAddress} {
		_, ok := env.Property(key)
		assert.False(t, ok, key)
		assert.Equal(t, AbsentValue, env.PropertyOrAbsent(key))
	}
	assert.Empty(t, env.Keys())
}

func TestEnvironment_UnknownKey(t *testing.T) {
	env := NewEnvironment(&StructuredConfig{App: App{Name: "x"}}, 8080)

	value, ok := env.Property("does.not.exist")
	assert.False(t, ok)
	assert.Empty(t, value)
	assert.Equal(t, "null", env.PropertyOrAbsent("does.not.exist"))
}

func TestEnvironment_Keys_Sorted(t *testing.T) {
	env := NewEnvironment(&StructuredConfig{
		App:    App{Name: "service02"},
		Server: Server{HTTPAddress: "localhost:8080"},
		Cloud:  Cloud{Hostname: "h"},
	}, 8080)

	assert.Equal(t, []string{
		KeyLocalServerPort,
		KeyServerPort,
		KeyApplicationName,
		KeyCloudClientHostname,
	}, env.Keys())
}

func TestEnvironment_ConcurrentReads(t *testing.T) {
	env := NewEnvironment(&StructuredConfig{App: App{Name: "service02"}}, 8080)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "8080", env.PropertyOrAbsent(KeyLocalServerPort))
		}()
	}
	wg.Wait()
}
