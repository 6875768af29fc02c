package osfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	origHostname := osHostname
	defer func() { osHostname = origHostname }()

	t.Run("valid_root", func(t *testing.T) {
		osHostname = func() (string, error) {
			return "test-host", nil
		}
		s := NewStore("/tmp")
		assert.NotNil(t, s)
		assert.Equal(t, "/tmp", s.root)
		assert.Equal(t, "🖥️test-host", s.title)
	})

	t.Run("hostname_error", func(t *testing.T) {
		osHostname = func() (string, error) {
			return "", errors.New("hostname error")
		}
		s := NewStore("/tmp")
		assert.NotNil(t, s)
		assert.Equal(t, "🖥️hostname error", s.title)
	})

	t.Run("empty_root_defaults_to_slash", func(t *testing.T) {
		s := NewStore("")
		assert.Equal(t, "/", s.root)
	})
}

func TestStore_RootURL(t *testing.T) {
	s := NewStore("/tmp")
	u := s.RootURL()
	assert.Equal(t, "file", u.Scheme)
	assert.Equal(t, "/tmp", u.Path)
}

func TestStore_RootTitle(t *testing.T) {
	s := Store{title: "my-host.station"}
	assert.Equal(t, "my-host", s.RootTitle())

	s = Store{title: "my-host"}
	assert.Equal(t, "my-host", s.RootTitle())
}

func TestStore_ReadDir(t *testing.T) {
	s := NewStore("/")

	t.Run("real_dir", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "a"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b"), 0o644))

		entries, err := s.ReadDir(context.Background(), dir)
		require.NoError(t, err)
		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			names = append(names, entry.Name())
		}
		assert.ElementsMatch(t, []string{"a", "b.txt"}, names)
	})

	t.Run("not_a_dir", func(t *testing.T) {
		filePath := filepath.Join(t.TempDir(), "file.txt")
		require.NoError(t, os.WriteFile(filePath, nil, 0o644))
		_, err := s.ReadDir(context.Background(), filePath)
		assert.Error(t, err)
	})

	t.Run("context_cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		entries, err := s.ReadDir(ctx, "/tmp")
		assert.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
		assert.Nil(t, entries)
	})
}

func TestStore_ReadDir_Seam(t *testing.T) {
	origReadDir := osReadDir
	defer func() { osReadDir = origReadDir }()

	s := NewStore("/tmp")

	t.Run("success", func(t *testing.T) {
		osReadDir = func(name string) ([]os.DirEntry, error) {
			return []os.DirEntry{}, nil
		}
		entries, err := s.ReadDir(context.Background(), "/tmp")
		assert.NoError(t, err)
		assert.NotNil(t, entries)
	})

	t.Run("read_error", func(t *testing.T) {
		osReadDir = func(name string) ([]os.DirEntry, error) {
			return nil, errors.New("read error")
		}
		entries, err := s.ReadDir(context.Background(), "/tmp")
		assert.Error(t, err)
		assert.Nil(t, entries)
	})
}
