package routeros

import (
	"path"
	"strings"
)

// Path is an absolute command-path handle bound to a Client. Values are
// immutable; Join returns a new Path.
type Path struct {
	path   string
	client *Client
}

// NewPath returns the root path ("/") bound to client.
func NewPath(client *Client) Path {
	return Path{path: "/", client: client}
}

func (p Path) String() string { return p.path }

// Join appends components to p and re-normalizes: leading "/", single
// separators, no trailing "/".
func (p Path) Join(components ...string) Path {
	joined := path.Join(append([]string{p.path}, components...)...)
	if joined == "" || joined == "." {
		joined = "/"
	}
	if joined[0] != '/' {
		joined = "/" + joined
	}
	return Path{path: joined, client: p.client}
}

func (p Path) Call(cmd string, kwargs map[string]Value) ([]*Reply, error) {
	return p.client.Run(p.Join(cmd).path, kwargs)
}

// Select begins a Query rooted at p, projecting only the named keys.
func (p Path) Select(keys ...*Key) *Query {
	return &Query{path: p, keys: keys}
}

// Print runs "print" with no filters and no projection, returning every
// field of every record.
func (p Path) Print() ([]*Reply, error) {
	return p.Call("print", nil)
}

// Add issues "add" with kwargs and returns the ret field of the single
// reply record.
func (p Path) Add(kwargs map[string]Value) (string, error) {
	replies, err := p.Call("add", kwargs)
	if err != nil {
		return "", err
	}
	if len(replies) == 0 {
		return "", &ProtocolError{Msg: "add returned no reply record"}
	}
	return replies[0].String("ret"), nil
}

// Remove issues "remove" with =.id=id1,id2,... for the given ids.
func (p Path) Remove(ids ...string) error {
	_, err := p.Call("remove", map[string]Value{
		".id": String(strings.Join(ids, ",")),
	})
	return err
}

// Update issues "set" with the supplied kwargs; include ".id" to target a
// specific record.
func (p Path) Update(kwargs map[string]Value) error {
	_, err := p.Call("set", kwargs)
	return err
}
