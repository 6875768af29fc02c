package httpfile

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/filetug/ftbrowse/pkg/files"
	"golang.org/x/net/html"
)

type StoreOption func(*HttpStore)

// NewStore creates a store that browses auto-index pages of a web server
// (nginx autoindex, Apache mod_autoindex and similar).
func NewStore(root url.URL, o ...StoreOption) *HttpStore {
	store := &HttpStore{
		Root: root,
	}
	for _, opt := range o {
		opt(store)
	}
	return store
}

func WithHttpClient(client *http.Client) StoreOption {
	return func(store *HttpStore) {
		store.client = client
	}
}

var _ files.Store = (*HttpStore)(nil)

type HttpStore struct {
	Root   url.URL
	client *http.Client
}

// RootURL returns the root without user credentials.
func (h HttpStore) RootURL() url.URL {
	root := h.Root
	root.User = nil
	return root
}

func (h HttpStore) RootTitle() string {
	root := h.Root
	root.User = nil
	return root.String()
}

func (h HttpStore) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	u := h.Root
	u.Path = name
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	client := h.client
	if client == nil {
		client = http.DefaultClient
	}

	reqURL := u.String()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch directory listing: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	hrefs, err := readHrefs(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var entries []os.DirEntry
	seen := make(map[string]bool, len(hrefs))
	for _, href := range hrefs {
		entryName, isDir, ok := childName(u.Path, href)
		if !ok || seen[entryName] {
			continue
		}
		seen[entryName] = true
		var mode os.FileMode
		if isDir {
			mode = os.ModeDir
		}
		entries = append(entries, files.NewDirEntry(entryName, mode))
	}

	return entries, nil
}

// readHrefs returns href attributes of all anchors in document order.
func readHrefs(r io.Reader) (hrefs []string, err error) {
	tokenizer := html.NewTokenizer(r)
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			if err = tokenizer.Err(); err == io.EOF {
				return hrefs, nil
			}
			return nil, err
		case html.StartTagToken, html.SelfClosingTagToken:
			token := tokenizer.Token()
			if token.Data != "a" {
				continue
			}
			for _, attr := range token.Attr {
				if attr.Key == "href" {
					hrefs = append(hrefs, attr.Val)
				}
			}
		}
	}
}

// childName resolves href against dirPath and reports the name of the
// immediate child it points to. Links to parents, query links (column sorting)
// and links to other hosts are not children.
func childName(dirPath, href string) (name string, isDir bool, ok bool) {
	ref, err := url.Parse(href)
	if err != nil || ref.Host != "" || ref.RawQuery != "" || ref.Path == "" {
		return "", false, false
	}
	target := ref.Path
	if !strings.HasPrefix(target, "/") {
		target = path.Join(dirPath, target)
		if strings.HasSuffix(ref.Path, "/") {
			target += "/"
		}
	}
	isDir = strings.HasSuffix(target, "/")
	target = strings.TrimSuffix(target, "/")
	parent, name := path.Split(target)
	if name == "" || path.Clean(parent) != path.Clean(dirPath) {
		return "", false, false
	}
	return name, isDir, true
}
