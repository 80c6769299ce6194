package routeros

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Sink receives one call per word as sentences cross the wire, tagged
// with a direction marker ("<---" outgoing, "--->" incoming). It is an
// injectable logging collaborator; rosdebug.ZerologSink is the bundled
// default implementation.
type Sink func(direction string, word string)

const (
	dirOut = "<---"
	dirIn  = "--->"
)

// Framer reads and writes sentences: an ordered sequence of words
// terminated on the wire by a single zero-length word.
type Framer struct {
	transport Transport
	encoding  string // "ASCII" or "UTF-8"
	sink      Sink
	timeout   time.Duration // 0 means no per-operation deadline
}

// NewFramer constructs a Framer over transport. encoding selects the word
// text encoding; an empty string defaults to ASCII.
func NewFramer(transport Transport, encoding string, sink Sink) *Framer {
	if encoding == "" {
		encoding = "ASCII"
	}
	return &Framer{transport: transport, encoding: encoding, sink: sink}
}

// SetTimeout bounds every subsequent WriteSentence call and each
// ReadSentence call as a whole by d. A zero d disables the bound.
func (f *Framer) SetTimeout(d time.Duration) {
	f.timeout = d
}

// applyDeadline arms the transport's deadline for the operation about to
// start, or clears it when no timeout is configured.
func (f *Framer) applyDeadline() error {
	if f.timeout <= 0 {
		return f.transport.SetDeadline(time.Time{})
	}
	return f.transport.SetDeadline(time.Now().Add(f.timeout))
}

// WriteSentence encodes cmd and words and writes them as one sentence.
func (f *Framer) WriteSentence(cmd string, words ...string) error {
	if strings.EqualFold(f.encoding, "ASCII") {
		if !isASCII(cmd) {
			return &ProtocolError{Msg: "command word is not ASCII: " + cmd}
		}
		for _, w := range words {
			if !isASCII(w) {
				return &ProtocolError{Msg: "word is not ASCII: " + w}
			}
		}
	} else {
		if !utf8.ValidString(cmd) {
			return &ProtocolError{Msg: "command word is not valid UTF-8: " + cmd}
		}
		for _, w := range words {
			if !utf8.ValidString(w) {
				return &ProtocolError{Msg: "word is not valid UTF-8: " + w}
			}
		}
	}

	encoded, err := encodeSentence(cmd, words...)
	if err != nil {
		return err
	}

	if f.sink != nil {
		f.sink(dirOut, cmd)
		for _, w := range words {
			f.sink(dirOut, w)
		}
	}

	if err := f.applyDeadline(); err != nil {
		return &ConnectionClosedError{Err: err}
	}
	return f.transport.Write(encoded)
}

// ReadSentence reads words until the zero-length terminator, splits the
// first word off as the reply word, and returns the rest. A !fatal reply
// closes the transport and returns a *FatalError. An empty sentence (NUL
// as the very first word) is treated as a protocol error and closes the
// transport rather than being silently skipped.
func (f *Framer) ReadSentence() (replyWord string, words []string, err error) {
	if err := f.applyDeadline(); err != nil {
		return "", nil, &ConnectionClosedError{Err: err}
	}

	var sentence []string
	for {
		word, err := f.readWord()
		if err != nil {
			return "", nil, err
		}
		if word == nil {
			break
		}
		sentence = append(sentence, *word)
	}

	if f.sink != nil {
		for _, w := range sentence {
			f.sink(dirIn, w)
		}
	}

	if len(sentence) == 0 {
		_ = f.transport.Close()
		return "", nil, &ProtocolError{Msg: "empty sentence received where a reply word was expected"}
	}

	replyWord = sentence[0]
	words = sentence[1:]

	if replyWord == "!fatal" {
		_ = f.transport.Close()
		msg := ""
		if len(words) > 0 {
			msg = words[0]
		}
		return "", nil, &FatalError{Message: msg}
	}

	return replyWord, words, nil
}

// readWord reads one word: a single NUL byte means end-of-sentence (nil,
// nil); otherwise determineLength + DecodeLength find the payload size,
// which is then read and decoded leniently: invalid byte sequences are
// dropped, not treated as fatal, on the read path.
func (f *Framer) readWord() (*string, error) {
	first, err := f.transport.Read(1)
	if err != nil {
		return nil, err
	}
	if first[0] == 0x00 {
		return nil, nil
	}

	extra, err := determineLength(first[0])
	if err != nil {
		return nil, err
	}

	lenBytes := first
	if extra > 0 {
		rest, err := f.transport.Read(extra)
		if err != nil {
			return nil, err
		}
		lenBytes = append(lenBytes, rest...)
	}

	length, err := DecodeLength(lenBytes)
	if err != nil {
		return nil, err
	}

	payload, err := f.transport.Read(int(length))
	if err != nil {
		return nil, err
	}

	word := f.lossyDecode(payload)
	return &word, nil
}

// Close closes the underlying transport. Idempotent.
func (f *Framer) Close() error {
	return f.transport.Close()
}

// lossyDecode decodes payload as text in the connection's configured
// encoding, dropping bytes that don't fit rather than failing, to
// tolerate firmware that occasionally emits stray bytes inside values.
// Under ASCII (the default), bytes above 0x7F are stripped even when
// they happen to form valid UTF-8; under UTF-8, only genuinely invalid
// byte sequences are dropped.
func (f *Framer) lossyDecode(payload []byte) string {
	if strings.EqualFold(f.encoding, "ASCII") {
		return stripNonASCII(payload)
	}
	if utf8.Valid(payload) {
		return string(payload)
	}
	return strings.ToValidUTF8(string(payload), "")
}

func stripNonASCII(payload []byte) string {
	var b strings.Builder
	b.Grow(len(payload))
	for _, c := range payload {
		if c <= 0x7F {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return false
		}
	}
	return true
}
