// Package digest computes content hashes of files
package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"strings"

	"github.com/IvanShishkin/dirlist/internal/filesystem"
	"github.com/IvanShishkin/dirlist/pkg/models"
)

// New returns a fresh hash state for alg
func New(alg models.Algorithm) (hash.Hash, error) {
	switch alg {
	case models.MD5:
		return md5.New(), nil
	case models.SHA1:
		return sha1.New(), nil
	case models.SHA256:
		return sha256.New(), nil
	default:
		return nil, fmt.Errorf("unsupported digest algorithm: %q", alg)
	}
}

// ParseAlgorithm converts a case-insensitive name into an Algorithm
func ParseAlgorithm(name string) (models.Algorithm, error) {
	alg := models.Algorithm(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range models.Algorithms {
		if alg == known {
			return alg, nil
		}
	}
	return "", fmt.Errorf("unsupported digest algorithm: %q", name)
}

// Compute hashes the file at path with alg. Failures are carried in the result.
func Compute(path string, alg models.Algorithm) models.Digest {
	return ComputeAll(path, []models.Algorithm{alg})[alg]
}

// ComputeAll hashes the file once, feeding every algorithm from the same read
// pass. On a read failure every requested algorithm reports the same error.
func ComputeAll(path string, algs []models.Algorithm) map[models.Algorithm]models.Digest {
	results := make(map[models.Algorithm]models.Digest, len(algs))
	if len(algs) == 0 {
		return results
	}

	hashes := make(map[models.Algorithm]hash.Hash, len(algs))
	writers := make([]io.Writer, 0, len(algs))
	for _, alg := range algs {
		h, err := New(alg)
		if err != nil {
			results[alg] = models.Digest{Err: models.NewError(models.KindDigestFailed, "digest", path, err)}
			continue
		}
		hashes[alg] = h
		writers = append(writers, h)
	}
	if len(writers) == 0 {
		return results
	}

	w := io.MultiWriter(writers...)
	err := filesystem.ReadChunks(path, filesystem.ChunkSize, func(chunk []byte) error {
		_, err := w.Write(chunk)
		return err
	})

	for alg, h := range hashes {
		if err != nil {
			results[alg] = models.Digest{Err: models.NewError(models.KindDigestFailed, "digest", path, err)}
			continue
		}
		results[alg] = models.Digest{Hex: hex.EncodeToString(h.Sum(nil))}
	}
	return results
}
