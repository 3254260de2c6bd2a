package config

import (
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int

	set bool
}

// ParseFlags parses the service flags from args (without the program name).
//
// Flags:
//
//	-a listen address in format [host]:[port]
//	-c/-config json file path with configs
//	-name application name
//	-log-level log level (debug, info, warn, error)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
//	-cloud-hostname reported client hostname
//	-cloud-ip reported client IP-address
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var appName, logLevel string
	var requestTimeout, shutdownTimeout time.Duration
	var cloudHostname, cloudIP string

	fs := flag.NewFlagSet("service02", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&appName, "name", "", "Application name")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.StringVar(&cloudHostname, "cloud-hostname", "", "Reported client hostname")
	fs.StringVar(&cloudIP, "cloud-ip", "", "Reported client IP-address")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Name:     appName,
			LogLevel: logLevel,
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Cloud: Cloud{
			Hostname:  cloudHostname,
			IPAddress: cloudIP,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// An address that was never set renders as an empty string.
func (a *NetAddress) String() string {
	if !a.set {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be empty (all interfaces), "localhost" or an IP-address.
func (a *NetAddress) Set(s string) error {
	host, port, err := parseHostPort(s)
	if err != nil {
		return err
	}

	a.Host = host
	a.Port = port
	a.set = true
	return nil
}

func parseHostPort(s string) (string, int, error) {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return "", 0, errAddressFormat
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", errAddressFormat, err)
	}

	if port < 0 || port > 65535 {
		return "", 0, errPortRange
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return "", 0, errHostFormat
	}

	return host, port, nil
}
