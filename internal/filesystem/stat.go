package filesystem

import (
	"fmt"
	"os"

	"github.com/IvanShishkin/dirlist/pkg/models"
)

// Stat reads the size and the creation, access and modification times of path.
// Symlinks are followed.
func Stat(path string) (*models.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	created, accessed, modified, err := fileTimes(path, info)
	if err != nil {
		return nil, fmt.Errorf("failed to read file times: %w", err)
	}

	return &models.FileInfo{
		Path:       path,
		Size:       info.Size(),
		CreatedAt:  created,
		AccessedAt: accessed,
		ModifiedAt: modified,
	}, nil
}
