// Package config provides thread-safe configuration management for
// scaffold-check. Settings are key=value pairs in a file in the project root;
// writes are atomic and safe for concurrent use.
package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Config manages scaffold-check settings with thread-safe operations
type Config struct {
	mu       sync.Mutex
	filePath string
	data     map[string]string
	loaded   bool
}

// ensureLoaded reads the file on first use. The caller must hold c.mu.
func (c *Config) ensureLoaded() error {
	if c.loaded {
		return nil
	}
	return c.load()
}

// New creates a new Config instance. An empty filePath selects
// DefaultFileName in the current working directory.
func New(filePath string) *Config {
	if filePath == "" {
		filePath = DefaultFileName
	}

	return &Config{
		filePath: filePath,
		data:     make(map[string]string),
	}
}

// ForRoot creates a Config stored in the given project root
func ForRoot(root string) *Config {
	return New(filepath.Join(root, DefaultFileName))
}

// Load reads configuration from file
func (c *Config) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

func (c *Config) load() error {
	file, err := os.Open(c.filePath)
	if os.IsNotExist(err) {
		// A missing file means every key takes its default
		c.loaded = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	data, err := parse(file)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", c.filePath, err)
	}

	c.data = data
	c.loaded = true
	return nil
}

// parse reads key=value lines. Blank lines, # comments and lines without
// '=' are skipped; a repeated key keeps its last value.
func parse(r io.Reader) (map[string]string, error) {
	data := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		data[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return data, scanner.Err()
}

// encode writes data sorted by key under a generated header
func encode(w io.Writer, data map[string]string, now time.Time) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# scaffold-check configuration")
	fmt.Fprintf(bw, "# Generated: %s\n", now.Format(time.RFC3339))
	fmt.Fprintln(bw)

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(bw, "%s=%s\n", key, data[key])
	}
	return bw.Flush()
}

// save writes configuration to file using atomic write pattern.
// The caller must hold c.mu.Lock.
func (c *Config) save() error {
	dir := filepath.Dir(c.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, DefaultFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath) // Cleanup on error

	if err := tmpFile.Chmod(0644); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to set permissions on temp file: %w", err)
	}

	if err := encode(tmpFile, c.data, time.Now()); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, c.filePath); err != nil {
		return fmt.Errorf("failed to rename temp file to config: %w", err)
	}

	return nil
}

// Get retrieves a configuration value (thread-safe)
func (c *Config) Get(key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	value, exists := c.data[key]
	if !exists {
		return "", fmt.Errorf("config key not found: %s", key)
	}
	return value, nil
}

// GetOrDefault retrieves a value or returns default if not found (thread-safe)
// First checks the config, then the Defaults table, then the provided fallback
func (c *Config) GetOrDefault(key, defaultValue string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return defaultValue
	}
	if value, exists := c.data[key]; exists {
		return value
	}
	if tableDefault, exists := Defaults[key]; exists {
		return tableDefault
	}
	return defaultValue
}

// GetList splits a space separated value into its fields
func (c *Config) GetList(key string) []string {
	return strings.Fields(c.GetOrDefault(key, ""))
}

// Set sets a configuration value and persists it (thread-safe)
func (c *Config) Set(key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Load existing configuration first to avoid overwriting
	if err := c.ensureLoaded(); err != nil {
		return fmt.Errorf("failed to load existing config before set: %w", err)
	}

	c.data[key] = value
	return c.save()
}

// Exists checks if a key exists (thread-safe)
func (c *Config) Exists(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return false
	}
	_, exists := c.data[key]
	return exists
}

// GetAll returns all configuration data (thread-safe)
func (c *Config) GetAll() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return map[string]string{}
	}
	// Return a copy to prevent external modification
	result := make(map[string]string, len(c.data))
	for k, v := range c.data {
		result[k] = v
	}
	return result
}

// Delete removes a configuration key and persists the change (thread-safe)
func (c *Config) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return fmt.Errorf("failed to load existing config before delete: %w", err)
	}

	if _, exists := c.data[key]; !exists {
		return nil
	}

	delete(c.data, key)
	return c.save()
}

// FilePath returns the configuration file path
func (c *Config) FilePath() string {
	return c.filePath
}
