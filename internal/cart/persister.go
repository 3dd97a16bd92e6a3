package cart

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/satellitegroup/printshop/internal/models"
)

// FilePersister keeps the guest cart as a JSON file, the server-side
// stand-in for browser local storage.
type FilePersister struct {
	Path string
}

func (p *FilePersister) Load() ([]models.CartItem, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var lines []models.CartItem
	if err := json.Unmarshal(data, &lines); err != nil {
		// a corrupt cache is discarded, not fatal
		return nil, nil
	}
	return lines, nil
}

func (p *FilePersister) Save(lines []models.CartItem) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p.Path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(p.Path, data, 0o644)
}

// MemoryPersister holds the cart in memory only. Used in tests and for
// sessions with no durable cache.
type MemoryPersister struct {
	lines []models.CartItem
}

func (p *MemoryPersister) Load() ([]models.CartItem, error) {
	return p.lines, nil
}

func (p *MemoryPersister) Save(lines []models.CartItem) error {
	p.lines = make([]models.CartItem, len(lines))
	copy(p.lines, lines)
	return nil
}
