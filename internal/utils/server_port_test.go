package utils

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
)

func TestServerPort(t *testing.T) {
	tests := []struct {
		name      string
		host      string
		tls       bool
		localAddr net.Addr
		want      int
	}{
		{name: "host with port", host: "example.com:8080", want: 8080},
		{name: "IPv6 host with port", host: "[::1]:9090", want: 9090},
		{name: "host without port", host: "example.com", want: 80},
		{name: "host without port over TLS", host: "example.com", tls: true, want: 443},
		{name: "no host falls back to local address", localAddr: &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 51000}, want: 51000},
		{name: "nothing known", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/service02/check", nil)
			r.Host = tt.host
			if tt.tls {
				r.TLS = &tls.ConnectionState{}
			} else {
				r.TLS = nil
			}
			if tt.localAddr != nil {
				r = r.WithContext(context.WithValue(r.Context(), http.LocalAddrContextKey, tt.localAddr))
			}

			if got := ServerPort(r); got != tt.want {
				t.Errorf("ServerPort() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLocalPort_RealServer(t *testing.T) {
	var got int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = LocalPort(r)
	}))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	_ = resp.Body.Close()

	_, rawPort, _ := net.SplitHostPort(srv.Listener.Addr().String())
	want, _ := strconv.Atoi(rawPort)
	if got != want {
		t.Errorf("LocalPort() = %d, want %d", got, want)
	}
}
