package routeros

import "sync"

// Reply is one reply record: a mapping from attribute key to typed value.
// Key order on the wire is not significant, so Reply is backed by a map;
// Keys() recovers the original word order when a caller needs it (e.g. to
// echo back a ".proplist").
type Reply struct {
	attrs map[string]Value
	order []string
}

func newReply() *Reply {
	return &Reply{attrs: make(map[string]Value)}
}

func (r *Reply) set(key string, value Value) {
	if _, exists := r.attrs[key]; !exists {
		r.order = append(r.order, key)
	}
	r.attrs[key] = value
}

// Len reports how many attributes this reply carries.
func (r *Reply) Len() int { return len(r.attrs) }

// Get returns the value for key and whether it was present.
func (r *Reply) Get(key string) (Value, bool) {
	v, ok := r.attrs[key]
	return v, ok
}

// String returns the string representation of key's value, or "" if key
// is absent. Shorthand for the common case of reading a single field.
func (r *Reply) String(key string) string {
	v, ok := r.attrs[key]
	if !ok {
		return ""
	}
	return v.String()
}

// Keys returns the attribute keys in the order their words arrived.
func (r *Reply) Keys() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Client is the protocol engine: it composes/parses attribute words, runs
// commands, folds replies into a response, and surfaces trap/fatal
// failures. One Client owns one Framer which owns one Transport.
//
// Concurrent use of one Client from multiple goroutines is UNDEFINED for
// the synchronous API below — callers must serialize externally, or use
// one Client per goroutine. RunContext enforces the
// single-outstanding-command invariant for the cooperative variant with an
// internal mutex; it does not make concurrent *logical* commands safe to
// interleave, only safe to not corrupt the wire.
type Client struct {
	framer *Framer
	mu     sync.Mutex
}

// NewClient constructs a Client over framer.
func NewClient(framer *Framer) *Client {
	return &Client{framer: framer}
}

// Path is equivalent to NewPath(client).Join(parts...): a shorthand for
// reaching a command path directly from a Client.
func (c *Client) Path(parts ...string) Path {
	return NewPath(c).Join(parts...)
}

// Run composes each kwarg as an attribute word, writes cmd as a sentence,
// and returns the accumulated response.
func (c *Client) Run(cmd string, kwargs map[string]Value) ([]*Reply, error) {
	words := make([]string, 0, len(kwargs))
	for k, v := range kwargs {
		words = append(words, composeWord(k, v))
	}
	return c.RawCmd(cmd, words...)
}

// RawCmd writes cmd and pre-formatted words as a sentence, skipping
// key/value composition — the caller is responsible for word formatting.
func (c *Client) RawCmd(cmd string, words ...string) ([]*Reply, error) {
	if err := c.framer.WriteSentence(cmd, words...); err != nil {
		return nil, err
	}
	return c.ReadResponse()
}

// ReadResponse drives the reply loop for one in-flight command until
// !done. It always reads to completion before returning: there is no
// streaming handle to abandon.
func (c *Client) ReadResponse() ([]*Reply, error) {
	var traps []*TrapError
	var response []*Reply

	for {
		replyWord, words, err := c.framer.ReadSentence()
		if err != nil {
			return nil, err
		}

		record, err := parseRecord(words)
		if err != nil {
			return nil, err
		}

		switch replyWord {
		case "!trap":
			traps = append(traps, trapFromRecord(record))
		case "!re", "!done":
			if record.Len() > 0 {
				response = append(response, record)
			}
		}

		if replyWord == "!done" {
			break
		}
	}

	if len(traps) > 1 {
		return nil, &MultiTrapError{Traps: traps}
	}
	if len(traps) == 1 {
		return nil, traps[0]
	}
	return response, nil
}

// Close closes the underlying transport. Idempotent.
func (c *Client) Close() error {
	return c.framer.Close()
}

func parseRecord(words []string) (*Reply, error) {
	record := newReply()
	for _, w := range words {
		if len(w) == 0 || w[0] != '=' {
			// Only "=k=v" words are accepted after the reply word;
			// anything else, including API attribute words such as
			// .tag, is treated as malformed.
			return nil, &ProtocolError{Msg: "unexpected reply word: " + w}
		}
		key, value, err := parseWord(w)
		if err != nil {
			return nil, err
		}
		record.set(key, value)
	}
	return record, nil
}

func trapFromRecord(record *Reply) *TrapError {
	trap := &TrapError{Message: record.String("message")}
	if v, ok := record.Get("category"); ok {
		if n, isInt := v.Int64(); isInt {
			cat := int(n)
			trap.Category = &cat
		}
	}
	return trap
}
