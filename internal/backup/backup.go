package backup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/balkashynov/learnlog/internal/models"
)

// FormatVersion is bumped whenever the backup layout changes
const FormatVersion = 1

// CompressedExt marks backups that are zstd-compressed
const CompressedExt = ".zst"

var ErrUnsupportedVersion = errors.New("unsupported backup version")

// File is the serialized form of a backup
type File struct {
	Version    int              `json:"version"`
	ExportedAt time.Time        `json:"exported_at"`
	Sessions   []models.Session `json:"sessions"`
}

// compressorFor picks the codec from the file name
func compressorFor(path string) (Compressor, error) {
	if strings.EqualFold(filepath.Ext(path), CompressedExt) {
		return NewZstdCompressor()
	}
	return plain{}, nil
}

// Encode serializes sessions into a backup payload
func Encode(sessions []models.Session, exportedAt time.Time, c Compressor) ([]byte, error) {
	if sessions == nil {
		sessions = []models.Session{}
	}
	data, err := json.MarshalIndent(File{
		Version:    FormatVersion,
		ExportedAt: exportedAt,
		Sessions:   sessions,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}
	return c.Compress(data)
}

// Decode parses a backup payload
func Decode(data []byte, c Compressor) (*File, error) {
	raw, err := c.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress backup: %w", err)
	}

	var f File
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to decode backup: %w", err)
	}
	if f.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, f.Version)
	}
	return &f, nil
}

// Write stores sessions at path, compressing when it ends in .zst
func Write(path string, sessions []models.Session, exportedAt time.Time) error {
	c, err := compressorFor(path)
	if err != nil {
		return err
	}
	data, err := Encode(sessions, exportedAt, c)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create backup directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	return nil
}

// Read loads a backup written by Write
func Read(path string) (*File, error) {
	c, err := compressorFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup: %w", err)
	}
	return Decode(data, c)
}
