package routeros

import "context"

// RunContext is the cooperative-variant counterpart of Run: every
// transport suspension point is additionally bounded by ctx. Only
// one RunContext/RawCmdContext call may be in flight on a given Client at
// a time — the internal mutex enforces that invariant, it does not make
// concurrent *logical* commands meaningful to interleave on the wire,
// since this protocol has no .tag-based multiplexing.
func (c *Client) RunContext(ctx context.Context, cmd string, kwargs map[string]Value) ([]*Reply, error) {
	words := make([]string, 0, len(kwargs))
	for k, v := range kwargs {
		words = append(words, composeWord(k, v))
	}
	return c.RawCmdContext(ctx, cmd, words...)
}

// RawCmdContext is the cooperative-variant counterpart of RawCmd.
func (c *Client) RawCmdContext(ctx context.Context, cmd string, words ...string) ([]*Reply, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	type result struct {
		replies []*Reply
		err     error
	}
	done := make(chan result, 1)

	go func() {
		if err := c.framer.WriteSentence(cmd, words...); err != nil {
			done <- result{nil, err}
			return
		}
		replies, err := c.ReadResponse()
		done <- result{replies, err}
	}()

	select {
	case r := <-done:
		return r.replies, r.err
	case <-ctx.Done():
		// The reader may be mid-word: resyncing is unsafe, so the
		// connection is torn down and the caller gets a definitive
		// error instead of a best-effort partial response.
		_ = c.framer.Close()
		return nil, &ConnectionClosedError{Err: ctx.Err()}
	}
}
