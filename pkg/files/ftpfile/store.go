package ftpfile

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/filetug/ftbrowse/pkg/files"
	"github.com/jlaffaye/ftp"
	"github.com/sirupsen/logrus"
)

const schema = "ftp"

const dialTimeout = 5 * time.Second

var _ files.Store = (*Store)(nil)

// Store lists directories of an FTP server. Every ReadDir opens its own
// control connection.
type Store struct {
	root     url.URL
	explicit bool
	implicit bool
	insecure bool
}

type conn interface {
	Login(user, password string) error
	List(path string) ([]*ftp.Entry, error)
	Quit() error
}

var dial = func(addr string, options ...ftp.DialOption) (conn, error) {
	return ftp.Dial(addr, options...)
}

func NewStore(root url.URL) *Store {
	root.Scheme = schema
	return &Store{root: root}
}

func (s *Store) RootURL() url.URL {
	return url.URL{
		Scheme: schema,
		Host:   s.root.Host,
		Path:   s.root.Path,
	}
}

func (s *Store) RootTitle() string {
	return schema + "://" + s.root.Host
}

func (s *Store) SetTLS(explicit, implicit bool) {
	s.explicit = explicit
	s.implicit = implicit
}

// SetInsecureSkipVerify turns off verification of the server certificate.
func (s *Store) SetInsecureSkipVerify(insecure bool) {
	s.insecure = insecure
}

func (s *Store) tlsConfig(host string) *tls.Config {
	return &tls.Config{
		ServerName:         host,
		InsecureSkipVerify: s.insecure,
	}
}

func (s *Store) addr() (addr, host string) {
	host, port, err := net.SplitHostPort(s.root.Host)
	if err != nil {
		host = s.root.Host
		port = "21"
	}
	return net.JoinHostPort(host, port), host
}

func (s *Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	addr, host := s.addr()
	c, err := dial(addr, s.dialOptions(ctx, host)...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ftp server: %w", err)
	}
	defer func() {
		_ = c.Quit()
	}()

	if user := s.root.User; user != nil {
		password, _ := user.Password()
		if err = c.Login(user.Username(), password); err != nil {
			return nil, fmt.Errorf("failed to login to ftp server: %w", err)
		}
	}

	entries, err := c.List(name)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory: %w", err)
	}

	result := make([]os.DirEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Name == "." || entry.Name == ".." {
			continue
		}
		if strings.Contains(entry.Name, "/") {
			logrus.WithField("entry", entry.Name).Debug("ftpfile: skipping entry with a slash in its name")
			continue
		}
		result = append(result, newDirEntry(entry))
	}

	return result, nil
}

func (s *Store) dialOptions(ctx context.Context, host string) []ftp.DialOption {
	options := []ftp.DialOption{
		ftp.DialWithTimeout(dialTimeout),
		ftp.DialWithContext(ctx),
	}
	if s.implicit {
		options = append(options, ftp.DialWithTLS(s.tlsConfig(host)))
	}
	if s.explicit {
		options = append(options, ftp.DialWithExplicitTLS(s.tlsConfig(host)))
	}
	return options
}

func entryMode(entry *ftp.Entry) os.FileMode {
	switch entry.Type {
	case ftp.EntryTypeFolder:
		return os.ModeDir
	case ftp.EntryTypeLink:
		return os.ModeSymlink
	default:
		return 0
	}
}

func newDirEntry(entry *ftp.Entry) files.DirEntry {
	return files.NewDirEntry(entry.Name, entryMode(entry),
		files.Size(int64(entry.Size)),
		files.ModTime(entry.Time),
		files.Sys(entry),
	)
}
