// Package upload manages the scratch storage for uploaded documents. Files
// are keyed by a generated UUID token rather than the client filename, so
// concurrent uploads of identically named files cannot collide; the sha256
// content hash is computed while streaming to disk.
package upload

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/finadvisor/finadvisor/constants"
	"github.com/finadvisor/finadvisor/internal/common"
)

type Store struct {
	dir    string
	logger *slog.Logger
}

func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, common.NewError(common.KindInternal, "create upload dir", err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Saved describes one scratch artifact. Remove deletes it; callers must
// defer Remove regardless of pipeline outcome.
type Saved struct {
	Path    string
	Token   uuid.UUID
	Ext     string
	HashHex string
	Size    int64

	logger *slog.Logger
}

func (s *Saved) Remove() {
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("upload.remove_failed", "path", s.Path, "error", err)
	}
}

// Save streams the upload to <dir>/<uuid>.<ext>. The client filename is used
// only to derive the extension; it never reaches the filesystem.
func (s *Store) Save(filename string, r io.Reader) (*Saved, error) {
	ext := constants.NormalizeExt(filepath.Ext(filename))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return nil, common.Errorf(common.KindUnsupportedFormat, "unsupported file type: %q", ext)
	}

	token := uuid.New()
	path := filepath.Join(s.dir, token.String()+"."+ext)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, common.NewError(common.KindInternal, "create scratch file", err)
	}

	h := sha256.New()
	size, err := io.Copy(io.MultiWriter(f, h), r)
	cerr := f.Close()
	if err != nil || cerr != nil {
		if err == nil {
			err = cerr
		}
		if rerr := os.Remove(path); rerr != nil {
			s.logger.Warn("upload.cleanup_failed", "path", path, "error", rerr)
		}
		return nil, common.NewError(common.KindInternal, "write scratch file", err)
	}

	saved := &Saved{
		Path:    path,
		Token:   token,
		Ext:     ext,
		HashHex: hex.EncodeToString(h.Sum(nil)),
		Size:    size,
		logger:  s.logger,
	}
	s.logger.Debug("upload.saved", "path", path, "size", size, "hash", saved.HashHex)
	return saved, nil
}
