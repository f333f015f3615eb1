package pool

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rickgao/kalshi-trader/internal/model"
)

// Save writes the pool to path as a JSON array. This is the interchange file
// the buyer binary reads when pool construction and trading run decoupled.
func Save(path string, p model.Pool) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal pool: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write pool file: %w", err)
	}
	return nil
}

// Load reads a pool previously written by Save.
func Load(path string) (model.Pool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pool file: %w", err)
	}

	var p model.Pool
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse pool file: %w", err)
	}
	return p, nil
}
