package config

import (
	"net"
	"os"
	"slices"
	"time"
)

const (
	defaultAppName         = "service02"
	defaultLogLevel        = "debug"
	defaultHTTPAddress     = ":0"
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Replaced in tests.
var (
	lookupHostname = os.Hostname
	lookupIP       = firstNonLoopbackIPv4
)

// defaultConfig is the last source merged by the builder, so it only fills
// fields that no other source has set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:     defaultAppName,
			LogLevel: defaultLogLevel,
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Cloud: defaultCloud(),
	}
}

// defaultCloud resolves the instance identity from the host. Values that
// cannot be resolved stay empty and are reported as absent.
func defaultCloud() Cloud {
	var cloud Cloud

	if hostname, err := lookupHostname(); err == nil {
		cloud.Hostname = hostname
	}
	if ip, err := lookupIP(); err == nil {
		cloud.IPAddress = ip
	}

	return cloud
}

// firstNonLoopbackIPv4 returns the first IPv4 address of an up, non-loopback
// interface, visiting interfaces by ascending index.
func firstNonLoopbackIPv4() (string, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return "", err
	}

	slices.SortFunc(ifaces, func(a, b net.Interface) int {
		return a.Index - b.Index
	})

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			if ip4 := ipNet.IP.To4(); ip4 != nil && !ip4.IsLoopback() {
				return ip4.String(), nil
			}
		}
	}

	return "", errNoNonLoopbackAddress
}
