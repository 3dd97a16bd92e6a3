// Package storage holds uploaded receipt images and design files.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	MaxReceiptSize = 5 << 20  // 5MB
	MaxDesignSize  = 10 << 20 // 10MB
)

var (
	ErrNotImage = errors.New("only image files are accepted")
	ErrBadType  = errors.New("file type not allowed, use pdf, ai, psd, png or jpg")
	ErrTooLarge = errors.New("file too large")
)

// designExts is the artwork formats print prep can open.
var designExts = map[string]bool{
	".pdf":  true,
	".ai":   true,
	".psd":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

type Uploads interface {
	Save(ctx context.Context, kind, name, contentType string, size int64, r io.Reader) (string, error)
}

// ValidateReceipt enforces the receipt upload constraints before any
// bytes are stored.
func ValidateReceipt(contentType string, size int64) error {
	if !strings.HasPrefix(contentType, "image/") {
		return ErrNotImage
	}
	if size > MaxReceiptSize {
		return fmt.Errorf("%w: receipts must be under 5MB", ErrTooLarge)
	}
	return nil
}

// ValidateDesign checks a design/artwork file by extension, since
// formats like .ai and .psd arrive with generic content types.
func ValidateDesign(name string, size int64) error {
	if !designExts[strings.ToLower(filepath.Ext(name))] {
		return ErrBadType
	}
	if size > MaxDesignSize {
		return fmt.Errorf("%w: design files must be under 10MB", ErrTooLarge)
	}
	return nil
}

// DiskStore writes uploads under Dir and serves them below PublicBase.
type DiskStore struct {
	Dir        string
	PublicBase string
}

func (s *DiskStore) Save(ctx context.Context, kind, name, contentType string, size int64, r io.Reader) (string, error) {
	ext := filepath.Ext(name)
	key := fmt.Sprintf("%s/%s%s", kind, uuid.NewString(), ext)

	path := filepath.Join(s.Dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	// size is the declared length; LimitReader stops an oversized body
	// from slipping past the pre-check.
	if _, err := io.Copy(f, io.LimitReader(r, size)); err != nil {
		os.Remove(path)
		return "", err
	}

	return s.PublicBase + "/" + key, nil
}
