package static

import (
	"fmt"
	"os"
	"path/filepath"

	"devserve/core/server"

	"go.uber.org/zap"
)

// Service owns the directory files are served from.
type Service struct {
	cfg    server.Config
	logger *zap.Logger
}

// NewService creates a new static file service.
func NewService(cfg server.Config, logger *zap.Logger) *Service {
	return &Service{
		cfg:    cfg,
		logger: logger,
	}
}

// Resolve returns the absolute serving root, verifying that it exists and
// is a directory. A bad root aborts startup rather than producing a server
// that 404s everything.
func (s *Service) Resolve() (string, error) {
	root, err := filepath.Abs(s.cfg.Root)
	if err != nil {
		return "", fmt.Errorf("resolving serving root: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("serving root: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("serving root %s is not a directory", root)
	}

	return root, nil
}

// Index returns the file name served for directory requests.
func (s *Service) Index() string {
	return s.cfg.Index
}
