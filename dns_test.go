package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsPublicIP(t *testing.T) {
	for addr, want := range map[string]bool{
		"8.8.8.8":         true,
		"2001:4860::8888": true,
		"127.0.0.1":       false,
		"10.1.2.3":        false,
		"192.168.0.10":    false,
		"169.254.169.254": false,
		"::1":             false,
		"fd00::1":         false,
		"0.0.0.0":         false,
	} {
		if got := isPublicIP(net.ParseIP(addr)); got != want {
			t.Errorf("isPublicIP(%s) = %v, want %v", addr, got, want)
		}
	}
}

func TestGuardedDialerRefusesLoopback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	g := &guardedDialer{}
	_, err := g.DialContext(context.Background(), "tcp", srv.Listener.Addr().String())
	if !errors.Is(err, ERR_FORBIDDEN_ADDRESS) {
		t.Errorf("DialContext error = %v, want %v", err, ERR_FORBIDDEN_ADDRESS)
	}

	g.allowPrivate = true
	conn, err := g.DialContext(context.Background(), "tcp", srv.Listener.Addr().String())
	if err != nil {
		t.Fatalf("DialContext with allowPrivate: %v", err)
	}
	conn.Close()
}
