package routeros

import (
	"context"
	"crypto/md5" //nolint:gosec // required by the wire protocol, not used for security
	"encoding/hex"
	"errors"
	"time"
)

// LoginMethod selects one of the two authentication strategies a device
// may require.
type LoginMethod int

const (
	// LoginPlain sends /login with name and password directly
	// (RouterOS >= 6.43).
	LoginPlain LoginMethod = iota
	// LoginToken performs the legacy MD5 challenge/response handshake
	// (RouterOS < 6.43).
	LoginToken
)

// Config gathers the options needed to dial and authenticate to a device.
type Config struct {
	Host          string
	Port          int // 0 -> 8728, or 8729 when TLS is set
	Username      string
	Password      string
	Timeout       DurationSeconds
	SourceAddress string
	Encoding      string // "ASCII" (default) or "UTF-8"
	TLS           *TLSOptions
	LoginMethod   LoginMethod
	Sink          Sink
}

// DurationSeconds exists so zero-value Config reads naturally as "use the
// default timeout" without importing time at every call site that only
// ever sets whole seconds; Dial converts it to time.Duration.
type DurationSeconds = int

// TLSOptions is a minimal, serializable stand-in for *tls.Config so Config
// itself stays easy to construct from plain data; Dial builds the real
// *tls.Config from it. Set InsecureSkipVerify only for lab devices with
// self-signed certificates.
type TLSOptions struct {
	ServerName         string
	InsecureSkipVerify bool
}

// Dial opens a transport, performs the configured login strategy, and
// returns a ready-to-use Client. On ConnectionClosedError or FatalError
// during login, the transport is closed before the error is returned.
func Dial(cfg Config) (*Client, error) {
	return DialContext(context.Background(), cfg)
}

// DialContext is the context-aware counterpart of Dial.
func DialContext(ctx context.Context, cfg Config) (*Client, error) {
	if err := validatePassword(cfg.Password); err != nil {
		return nil, err
	}

	opts := toDialOptions(cfg)
	transport, err := dialTransport(opts)
	if err != nil {
		return nil, err
	}

	framer := NewFramer(transport, cfg.Encoding, cfg.Sink)
	framer.SetTimeout(opts.timeout())
	client := NewClient(framer)

	loginErr := loginWithContext(ctx, client, cfg)
	if loginErr != nil {
		if isFatalOrClosed(loginErr) {
			_ = transport.Close()
		}
		return nil, loginErr
	}

	return client, nil
}

func loginWithContext(ctx context.Context, client *Client, cfg Config) error {
	switch cfg.LoginMethod {
	case LoginToken:
		return loginToken(ctx, client, cfg.Username, cfg.Password)
	default:
		return loginPlain(ctx, client, cfg.Username, cfg.Password)
	}
}

// loginPlain implements the post-6.43 handshake: send name and password,
// success is !done with no trap.
func loginPlain(ctx context.Context, client *Client, username, password string) error {
	_, err := client.RunContext(ctx, "/login", map[string]Value{
		"name":     String(username),
		"password": String(password),
	})
	return err
}

// loginToken implements the pre-6.43 challenge/response handshake.
func loginToken(ctx context.Context, client *Client, username, password string) error {
	replies, err := client.RunContext(ctx, "/login", nil)
	if err != nil {
		return err
	}
	if len(replies) == 0 {
		return &ProtocolError{Msg: "login challenge response contained no reply"}
	}
	challenge := replies[0].String("ret")

	response, err := encodePassword(challenge, password)
	if err != nil {
		return err
	}

	_, err = client.RunContext(ctx, "/login", map[string]Value{
		"name":     String(username),
		"response": String(response),
	})
	return err
}

// encodePassword computes "00" + hex(md5(0x00 || password || unhex(token))).
func encodePassword(token, password string) (string, error) {
	if err := validatePassword(password); err != nil {
		return "", err
	}
	challengeBytes, err := hex.DecodeString(token)
	if err != nil {
		return "", &ProtocolError{Msg: "invalid login challenge token: " + err.Error()}
	}

	h := md5.New()
	h.Write([]byte{0x00})
	h.Write([]byte(password))
	h.Write(challengeBytes)

	return "00" + hex.EncodeToString(h.Sum(nil)), nil
}

// validatePassword rejects non-ASCII passwords before any bytes reach the
// wire.
func validatePassword(password string) error {
	if !isASCII(password) {
		return &ErrNonASCIIPassword{}
	}
	return nil
}

func isFatalOrClosed(err error) bool {
	var fatal *FatalError
	var closed *ConnectionClosedError
	return errors.As(err, &fatal) || errors.As(err, &closed)
}

func toDialOptions(cfg Config) DialOptions {
	return DialOptions{
		Host:          cfg.Host,
		Port:          cfg.Port,
		Timeout:       time.Duration(cfg.Timeout) * time.Second,
		SourceAddress: cfg.SourceAddress,
		TLSConfig:     buildTLSConfig(cfg.TLS),
	}
}
