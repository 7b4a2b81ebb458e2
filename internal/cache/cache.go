package cache

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Manager is a file-backed JSON cache with a fixed TTL. Entries live under
// a single directory as source_kind_hash.json files; freshness is judged
// from the file modification time.
type Manager struct {
	dir     string
	ttl     time.Duration
	enabled bool
}

// New creates a cache manager. A disabled manager misses every Get and
// drops every Set.
func New(dir string, ttl time.Duration, enabled bool) *Manager {
	return &Manager{dir: dir, ttl: ttl, enabled: enabled}
}

func (m *Manager) fileName(source, kind string, params interface{}) string {
	data, _ := json.Marshal(params)
	hash := md5.Sum(data)
	return fmt.Sprintf("%s_%s_%x.json", source, kind, hash)
}

// Get loads a cached value into out and reports whether a fresh entry was
// found. Expired entries are removed on the way out.
func (m *Manager) Get(source, kind string, params, out interface{}) bool {
	if !m.enabled {
		return false
	}

	path := filepath.Join(m.dir, m.fileName(source, kind, params))
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if time.Since(info.ModTime()) > m.ttl {
		os.Remove(path)
		return false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

// Set stores a value. The cache is best effort; callers may ignore the error.
func (m *Manager) Set(source, kind string, params, value interface{}) error {
	if !m.enabled {
		return nil
	}

	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(m.dir, m.fileName(source, kind, params)), data, 0644)
}

// Clear removes every cache file under the directory.
func (m *Manager) Clear() error {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		if err := os.Remove(filepath.Join(m.dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}
