package assets

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// Source fetches raw resource bytes by name. Implementations exist for the
// local filesystem (desktop) and HTTP (the served browser build); both are
// used off the render goroutine, once, at startup.
type Source interface {
	Fetch(name string) ([]byte, error)
}

// DirSource reads resources from a directory on disk.
type DirSource struct {
	Root string
}

func (s DirSource) Fetch(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.Root, name))
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", name, err)
	}
	return data, nil
}

// HTTPSource downloads resources relative to a base URL.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

func (s HTTPSource) Fetch(name string) ([]byte, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Get(s.BaseURL + "/" + name)
	if err != nil {
		return nil, fmt.Errorf("assets: fetch %s: %w", name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("assets: fetch %s: unexpected status %s", name, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("assets: fetch %s: %w", name, err)
	}
	return data, nil
}
