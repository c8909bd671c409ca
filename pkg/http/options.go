package http

import "time"

type ClientOption func(*clientConfig)

func WithConnTimeout(timeout time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.connTimeout = timeout
	}
}

func WithRequestTimeout(timeout time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.requestTimeout = timeout
	}
}

func WithKeepAlive(keepAlive time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.keepAlive = keepAlive
	}
}

func WithTLSHandshakeTimeout(timeout time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.tlsHandshakeTimeout = timeout
	}
}

func WithResponseHeaderTimeout(timeout time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.responseHeaderTimeout = timeout
	}
}

func WithIdleConnTimeout(timeout time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.idleConnTimeout = timeout
	}
}

func WithMaxIdleConns(maxConns int) ClientOption {
	return func(c *clientConfig) {
		c.maxIdleConns = maxConns
	}
}

func WithMaxIdleConnsPerHost(maxConns int) ClientOption {
	return func(c *clientConfig) {
		c.maxIdleConnsPerHost = maxConns
	}
}

func WithTransport(transport TransportFunc) ClientOption {
	return func(c *clientConfig) {
		c.transports = append(c.transports, transport)
	}
}

func WithInsecureSkipVerify(skip bool) ClientOption {
	return func(c *clientConfig) {
		c.insecureSkipVerify = skip
	}
}
