package persist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"path-cache/core/store"
	"path-cache/core/world"
)

const (
	// BinaryFile is the compact snapshot tried first on load.
	BinaryFile = "paths.bin"
	// JSONFile is the human-readable fallback snapshot.
	JSONFile = "paths.json"
)

// Snapshot is the persisted state: all cached paths plus the sector grid the
// paths were computed against. Sectors are informational on load; the grid is
// rebuilt from configuration at startup.
type Snapshot struct {
	Paths   []*store.CachedPath
	Sectors []world.Sector
}

type jsonSnapshot struct {
	Version int                 `json:"version"`
	Paths   []*store.CachedPath `json:"paths"`
	Sectors []world.Sector      `json:"sectors"`
}

// Save writes both snapshot files into dir, creating it if needed. The two
// writes are independent and not atomic; a partial binary write is recovered
// from the JSON file on the next load.
func Save(dir string, snap *Snapshot) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	bin, err := EncodeBinary(snap.Paths)
	if err != nil {
		return fmt.Errorf("encode binary snapshot: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, BinaryFile), bin, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", BinaryFile, err)
	}

	js, err := json.MarshalIndent(jsonSnapshot{
		Version: Version,
		Paths:   snap.Paths,
		Sectors: snap.Sectors,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json snapshot: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, JSONFile), js, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", JSONFile, err)
	}

	return nil
}

// Load reads a snapshot from dir. The binary file is tried first; a version
// mismatch or decode failure falls back to the JSON file. A directory with
// neither file yields an empty snapshot and no error.
func Load(dir string) (*Snapshot, error) {
	binPath := filepath.Join(dir, BinaryFile)
	jsonPath := filepath.Join(dir, JSONFile)

	data, binErr := os.ReadFile(binPath)
	if binErr == nil {
		paths, err := DecodeBinary(data)
		if err == nil {
			return &Snapshot{Paths: paths}, nil
		}
		binErr = err
	}

	js, jsonErr := os.ReadFile(jsonPath)
	if jsonErr == nil {
		var snap jsonSnapshot
		if err := json.Unmarshal(js, &snap); err != nil {
			return &Snapshot{}, fmt.Errorf("binary snapshot unusable (%v) and json snapshot corrupt: %w", binErr, err)
		}
		for _, p := range snap.Paths {
			p.RecomputeDistance()
		}
		return &Snapshot{Paths: snap.Paths, Sectors: snap.Sectors}, nil
	}

	if os.IsNotExist(jsonErr) && (binErr == nil || os.IsNotExist(binErr)) {
		// No snapshot at all: an empty store is a valid starting point.
		return &Snapshot{}, nil
	}
	if os.IsNotExist(jsonErr) {
		return &Snapshot{}, fmt.Errorf("binary snapshot unusable and no json fallback: %w", binErr)
	}
	return &Snapshot{}, fmt.Errorf("read %s: %w", JSONFile, jsonErr)
}
