package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/IvanShishkin/dirlist/pkg/models"
	"go.uber.org/zap"
)

// Walker walks the filesystem and finds files to inventory
type Walker struct {
	logger *zap.Logger
}

// NewWalker creates a new filesystem walker
func NewWalker(logger *zap.Logger) *Walker {
	return &Walker{logger: logger}
}

// List recursively enumerates every regular file under root, hidden entries
// included. Paths are returned in lexical depth-first order, joined onto root.
func (w *Walker) List(root string) ([]string, error) {
	var files []string
	err := w.Walk(root, func(path string) error {
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	w.logger.Debug("Listed files", zap.String("root", root), zap.Int("count", len(files)))
	return files, nil
}

// Walk calls fn for each regular file under root as it is discovered.
// A symlinked root is followed; emitted paths keep the root as given.
func (w *Walker) Walk(root string, fn func(path string) error) error {
	info, err := os.Stat(root)
	if err != nil {
		return models.NewError(models.KindScanFatal, "list", root, err)
	}
	if !info.IsDir() {
		return models.NewError(models.KindScanFatal, "list", root, errors.New("not a directory"))
	}

	// WalkDir does not descend a symlinked root, so walk its target
	walkRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return models.NewError(models.KindScanFatal, "list", root, err)
	}

	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == walkRoot {
				return err
			}
			w.logger.Warn("Error accessing path", zap.String("path", path), zap.Error(err))
			return nil // Continue walking
		}

		if d.IsDir() {
			return nil
		}

		if !isRegular(path, d) {
			w.logger.Debug("Skipping non-regular entry", zap.String("path", path))
			return nil
		}

		if walkRoot != root {
			rel, err := filepath.Rel(walkRoot, path)
			if err != nil {
				return err
			}
			path = filepath.Join(root, rel)
		}
		return fn(path)
	})
	if err != nil {
		if models.IsKind(err, models.KindScanFatal) {
			return err
		}
		return models.NewError(models.KindScanFatal, "list", root, err)
	}
	return nil
}

// isRegular keeps regular files and symlinks that resolve to one.
// WalkDir does not follow symlinked directories, so they are never descended.
func isRegular(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}

	target, err := os.Stat(path)
	if err != nil {
		return false
	}
	return target.Mode().IsRegular()
}
