package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	migrationFile = regexp.MustCompile(`^(\d+)_([a-z0-9_]+)\.(up|down)\.sql$`)
	nameChars     = regexp.MustCompile(`[^a-z0-9]+`)
)

// Created names the two files written by Create
type Created struct {
	Version  uint
	UpPath   string
	DownPath string
}

// Create writes an empty up/down pair numbered after the highest existing version
func Create(dir, name string) (*Created, error) {
	slug := strings.Trim(nameChars.ReplaceAllString(strings.ToLower(name), "_"), "_")
	if slug == "" {
		return nil, fmt.Errorf("migration name %q has no usable characters", name)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create migrations directory: %w", err)
	}

	versions, err := Versions(dir)
	if err != nil {
		return nil, err
	}
	next := uint(1)
	if len(versions) > 0 {
		next = versions[len(versions)-1] + 1
	}

	base := fmt.Sprintf("%06d_%s", next, slug)
	c := &Created{
		Version:  next,
		UpPath:   filepath.Join(dir, base+".up.sql"),
		DownPath: filepath.Join(dir, base+".down.sql"),
	}
	header := fmt.Sprintf("-- %s\n-- created %s\n\n", slug, time.Now().UTC().Format(time.RFC3339))
	if err := os.WriteFile(c.UpPath, []byte(header), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write up migration: %w", err)
	}
	if err := os.WriteFile(c.DownPath, []byte(header), 0o644); err != nil {
		_ = os.Remove(c.UpPath)
		return nil, fmt.Errorf("failed to write down migration: %w", err)
	}
	return c, nil
}

// Versions lists the distinct versions found in dir, ascending
func Versions(dir string) ([]uint, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	seen := map[uint]bool{}
	var out []uint
	for _, e := range entries {
		match := migrationFile.FindStringSubmatch(e.Name())
		if e.IsDir() || match == nil {
			continue
		}
		v, err := strconv.ParseUint(match[1], 10, 64)
		if err != nil || seen[uint(v)] {
			continue
		}
		seen[uint(v)] = true
		out = append(out, uint(v))
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}
