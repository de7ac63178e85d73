package health_checker

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

var ErrMissingHost = errors.New("server url has no host")

type TCPClient interface {
	Dial(ctx context.Context, address string) error
}

type tcpClient struct {
	dialer *net.Dialer
}

func (t *tcpClient) Dial(ctx context.Context, address string) error {
	conn, err := t.dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return fmt.Errorf("TCPClient.Dial: %w", err)
	}
	return conn.Close()
}

// hostAndPort extracts the host and port of a server url. Bare host:port values are accepted.
// defaultPort is used when the url omits the port.
func hostAndPort(rawURL string, defaultPort int) (string, int, error) {
	if !strings.Contains(rawURL, "://") {
		rawURL = "tcp://" + rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", 0, err
	}
	host := u.Hostname()
	if host == "" {
		return "", 0, ErrMissingHost
	}
	port := defaultPort
	if p := u.Port(); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil {
			return "", 0, err
		}
	}
	return host, port, nil
}

func tcpAddress(rawURL string, defaultPort int) (string, error) {
	host, port, err := hostAndPort(rawURL, defaultPort)
	if err != nil {
		return "", err
	}
	return net.JoinHostPort(host, strconv.Itoa(port)), nil
}

func NewTCPClient() TCPClient {
	return &tcpClient{
		dialer: &net.Dialer{},
	}
}
