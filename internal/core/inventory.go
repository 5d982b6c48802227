package core

import (
	"time"

	"github.com/IvanShishkin/dirlist/internal/digest"
	"github.com/IvanShishkin/dirlist/internal/filesystem"
	"github.com/IvanShishkin/dirlist/internal/sniff"
	"github.com/IvanShishkin/dirlist/pkg/bytesize"
	"github.com/IvanShishkin/dirlist/pkg/models"
	"go.uber.org/zap"
)

// Progress phases
const (
	PhaseLoading    = "loading"    // one event per file found in pass 1
	PhaseLoaded     = "loaded"     // pass 1 finished
	PhaseProcessing = "processing" // one event per row in pass 2
)

// Lister enumerates the regular files under a root, calling fn as each is found
type Lister interface {
	Walk(root string, fn func(path string) error) error
}

// Sniffer classifies a file by content
type Sniffer interface {
	Sniff(path string) string
}

// Progress is a snapshot of a running inventory
type Progress struct {
	Phase          string
	Processed      int
	Total          int
	BytesProcessed uint64
	Elapsed        time.Duration
	ETA            time.Duration
	Path           string
}

// ProgressCallback is called to report inventory progress
type ProgressCallback func(p Progress)

// Inventory builds a file listing of one directory tree
type Inventory struct {
	opts             models.ScanOptions
	logger           *zap.Logger
	lister           Lister
	sniffer          Sniffer
	progressCallback ProgressCallback
	now              func() time.Time
}

// NewInventory creates an inventory with the filesystem walker and content sniffer
func NewInventory(opts models.ScanOptions, logger *zap.Logger) *Inventory {
	return &Inventory{
		opts:    opts,
		logger:  logger,
		lister:  filesystem.NewWalker(logger),
		sniffer: sniff.NewSniffer(logger),
		now:     time.Now,
	}
}

// SetLister replaces the file lister
func (inv *Inventory) SetLister(l Lister) {
	inv.lister = l
}

// SetSniffer replaces the type sniffer
func (inv *Inventory) SetSniffer(s Sniffer) {
	inv.sniffer = s
}

// SetProgressCallback sets the progress callback function.
// It is only invoked for verbose runs.
func (inv *Inventory) SetProgressCallback(cb ProgressCallback) {
	inv.progressCallback = cb
}

// reportProgress calls the progress callback if set
func (inv *Inventory) reportProgress(p Progress) {
	if inv.opts.Verbose && inv.progressCallback != nil {
		inv.progressCallback(p)
	}
}

// BuildReport lists every regular file under the root, then records its
// metadata and requested digests. Per-file failures degrade that row only;
// an invalid root fails the whole run and no report is returned.
func (inv *Inventory) BuildReport() (*models.InventoryReport, error) {
	inv.logger.Info("Starting inventory",
		zap.String("path", inv.opts.RootPath),
		zap.Bool("md5", inv.opts.IncludeMD5),
		zap.Bool("sha1", inv.opts.IncludeSHA1),
		zap.Bool("sha256", inv.opts.IncludeSHA256))

	report := models.NewInventoryReport(inv.opts)
	report.StartTime = inv.now()

	// Pass 1: materialize the file list
	var files []string
	err := inv.lister.Walk(inv.opts.RootPath, func(path string) error {
		files = append(files, path)
		inv.reportProgress(Progress{Phase: PhaseLoading, Processed: len(files), Path: path})
		return nil
	})
	if err != nil {
		if !models.IsKind(err, models.KindScanFatal) {
			err = models.NewError(models.KindScanFatal, "list", inv.opts.RootPath, err)
		}
		inv.logger.Error("Inventory failed", zap.Error(err))
		return nil, err
	}

	total := len(files)
	inv.reportProgress(Progress{Phase: PhaseLoaded, Processed: total, Total: total})

	// Pass 2: one row per file
	start := inv.now()
	var bytesProcessed uint64
	for i, path := range files {
		rec := inv.record(path, report.Algorithms)
		report.Add(rec)
		bytesProcessed += rec.SizeBytes

		elapsed := inv.now().Sub(start)
		inv.reportProgress(Progress{
			Phase:          PhaseProcessing,
			Processed:      i + 1,
			Total:          total,
			BytesProcessed: bytesProcessed,
			Elapsed:        elapsed,
			ETA:            EstimateRemaining(elapsed, i+1, total),
			Path:           path,
		})
	}

	// Finalize results
	report.EndTime = inv.now()
	report.Duration = report.EndTime.Sub(report.StartTime)

	inv.logger.Info("Inventory completed",
		zap.Duration("duration", report.Duration),
		zap.Int("files", report.Len()),
		zap.Uint64("bytes", report.TotalBytes),
		zap.Int("stat_failures", report.StatFailures),
		zap.Int("digest_failures", report.DigestFailures))

	return report, nil
}

// record builds the row for a single file
func (inv *Inventory) record(path string, algs []models.Algorithm) *models.FileRecord {
	rec := &models.FileRecord{Path: path}

	info, err := filesystem.Stat(path)
	if err != nil {
		inv.logger.Warn("Failed to stat file", zap.String("path", path), zap.Error(err))
		rec.StatErr = err
		rec.SizeHuman = bytesize.Format(0)
		rec.MimeType = models.MimeUnknown
	} else {
		if info.Size > 0 {
			rec.SizeBytes = uint64(info.Size)
		}
		rec.SizeHuman = bytesize.Format(rec.SizeBytes)
		rec.CreatedAt = info.CreatedAt
		rec.AccessedAt = info.AccessedAt
		rec.ModifiedAt = info.ModifiedAt
		rec.MimeType = inv.sniffer.Sniff(path)
	}

	if len(algs) > 0 {
		rec.Digests = digest.ComputeAll(path, algs)
		for _, alg := range algs {
			if d := rec.Digests[alg]; !d.OK() {
				inv.logger.Warn("Error reading input file",
					zap.String("path", path),
					zap.String("algorithm", string(alg)),
					zap.Error(d.Err))
			}
		}
	}

	return rec
}
