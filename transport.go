package routeros

import (
	"crypto/tls"
	"io"
	"net"
	"strconv"
	"time"
)

// Transport is the injectable byte stream the framer reads and writes.
// Socket construction is treated as an external collaborator: this core
// only ever consumes a Transport, and ships a TCP/TLS implementation of
// it for convenience.
type Transport interface {
	// Read fills and returns exactly n bytes, or fails with
	// *ConnectionClosedError if the peer closes before n bytes arrive.
	Read(n int) ([]byte, error)
	// Write writes all of p or fails.
	Write(p []byte) error
	// SetDeadline bounds every subsequent Read and Write until it is
	// called again. A zero deadline clears it.
	SetDeadline(deadline time.Time) error
	// Close releases the transport. Idempotent: a second Close must not
	// fail.
	Close() error
}

// netTransport adapts a net.Conn into a Transport with exact-length reads:
// Read loops until the requested byte count is collected or the socket
// reports EOF.
type netTransport struct {
	conn   net.Conn
	closed bool
}

// NewTransport wraps an already-established net.Conn.
func NewTransport(conn net.Conn) Transport {
	return &netTransport{conn: conn}
}

func (t *netTransport) Read(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(t.conn, buf); err != nil {
		return nil, &ConnectionClosedError{Err: err}
	}
	return buf, nil
}

func (t *netTransport) Write(p []byte) error {
	_, err := t.conn.Write(p)
	if err != nil {
		return &ConnectionClosedError{Err: err}
	}
	return nil
}

func (t *netTransport) SetDeadline(deadline time.Time) error {
	return t.conn.SetDeadline(deadline)
}

func (t *netTransport) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	return t.conn.Close()
}

// DialOptions configures TCP/TLS construction of a Transport. Encoding
// and LoginMethod live on Config (login.go) since they belong to layers
// above the raw byte stream.
type DialOptions struct {
	Host          string
	Port          int // 0 defaults to 8728 (or 8729 when TLSConfig is set)
	Timeout       time.Duration
	SourceAddress string
	TLSConfig     *tls.Config // non-nil wraps the socket with TLS, like ssl_wrapper
}

func (o DialOptions) port() int {
	if o.Port != 0 {
		return o.Port
	}
	if o.TLSConfig != nil {
		return 8729
	}
	return 8728
}

// buildTLSConfig turns the serializable TLSOptions into a *tls.Config, or
// returns nil when opts is nil (plain TCP).
func buildTLSConfig(opts *TLSOptions) *tls.Config {
	if opts == nil {
		return nil
	}
	return &tls.Config{
		ServerName:         opts.ServerName,
		InsecureSkipVerify: opts.InsecureSkipVerify, //nolint:gosec // opt-in for lab devices with self-signed certs
	}
}

func (o DialOptions) timeout() time.Duration {
	if o.Timeout > 0 {
		return o.Timeout
	}
	return 10 * time.Second
}

// dialTransport opens a TCP (optionally TLS-wrapped) connection per
// DialOptions and returns it as a Transport.
func dialTransport(opts DialOptions) (Transport, error) {
	dialer := &net.Dialer{Timeout: opts.timeout()}
	if opts.SourceAddress != "" {
		addr, err := net.ResolveTCPAddr("tcp", net.JoinHostPort(opts.SourceAddress, "0"))
		if err != nil {
			return nil, &ProtocolError{Msg: "invalid source address: " + err.Error()}
		}
		dialer.LocalAddr = addr
	}

	address := net.JoinHostPort(opts.Host, strconv.Itoa(opts.port()))

	var conn net.Conn
	var err error
	if opts.TLSConfig != nil {
		conn, err = tls.DialWithDialer(dialer, "tcp", address, opts.TLSConfig)
	} else {
		conn, err = dialer.Dial("tcp", address)
	}
	if err != nil {
		return nil, &ConnectionClosedError{Err: err}
	}
	return NewTransport(conn), nil
}
