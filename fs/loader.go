// Package fs provides file-based loading of show documents and export of
// show records as markdown files.
package fs

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/edjs/spectacle"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// DefaultLoadTimeout bounds a single document read.
const DefaultLoadTimeout = 5 * time.Second

// Ensure Loader implements spectacle.Loader at compile time.
var _ spectacle.Loader = (*Loader)(nil)

// Loader reads show documents from the local filesystem.
type Loader struct {
	timeout  time.Duration
	readFile func(name string) ([]byte, error)
}

// Option configures a Loader.
type Option func(*Loader)

// WithTimeout sets the timeout for a single document read.
// Defaults to DefaultLoadTimeout if not specified. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		l.timeout = d
	}
}

// WithReadFile replaces the function used to read files.
func WithReadFile(fn func(name string) ([]byte, error)) Option {
	return func(l *Loader) {
		l.readFile = fn
	}
}

// NewLoader creates a new Loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		timeout:  DefaultLoadTimeout,
		readFile: os.ReadFile,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type readResult struct {
	data []byte
	err  error
}

// Load reads the document at path and parses it.
func (l *Loader) Load(ctx context.Context, path string) (*spectacle.ParsedDocument, error) {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	// Buffered so the reader goroutine never blocks after a timeout.
	ch := make(chan readResult, 1)
	go func() {
		data, err := l.readFile(path)
		ch <- readResult{data: data, err: err}
	}()

	var res readResult
	select {
	case <-ctx.Done():
		return nil, spectacle.Errorf(spectacle.EUNAVAILABLE, "read %s: %v", path, ctx.Err())
	case res = <-ch:
	}

	if res.err != nil {
		if errors.Is(res.err, os.ErrNotExist) {
			return nil, spectacle.Errorf(spectacle.ENOTFOUND, "document not found: %s", path)
		}
		return nil, spectacle.Errorf(spectacle.EUNAVAILABLE, "read %s: %v", path, res.err)
	}

	return Parse(path, res.data)
}

// Parse parses raw document bytes. Malformed markup yields a best-effort
// tree; only content that is not markup text at all is rejected with
// EMALFORMED.
func Parse(path string, data []byte) (*spectacle.ParsedDocument, error) {
	if bytes.IndexByte(data, 0) >= 0 {
		return nil, spectacle.Errorf(spectacle.EMALFORMED, "%s: binary content", path)
	}

	// Legacy pages are not always UTF-8; fall back to BOM and meta charset
	// sniffing only when the bytes are not valid UTF-8.
	if !utf8.Valid(data) {
		enc, name, _ := charset.DetermineEncoding(data, "text/html")
		decoded, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			return nil, spectacle.Errorf(spectacle.EMALFORMED, "%s: decode %s: %v", path, name, err)
		}
		data = decoded
	}

	raw := string(data)
	if strings.TrimSpace(raw) == "" {
		return nil, spectacle.Errorf(spectacle.EMALFORMED, "%s: empty document", path)
	}

	root, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, spectacle.Errorf(spectacle.EMALFORMED, "%s: parse markup: %v", path, err)
	}
	if !hasMarkup(root) {
		return nil, spectacle.Errorf(spectacle.EMALFORMED, "%s: no markup elements", path)
	}

	return &spectacle.ParsedDocument{Path: path, Raw: raw, Root: root}, nil
}

// hasMarkup reports whether the tree holds any element besides the
// html, head and body elements the parser always synthesizes.
func hasMarkup(n *html.Node) bool {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "html", "head", "body":
		default:
			return true
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if hasMarkup(c) {
			return true
		}
	}
	return false
}
