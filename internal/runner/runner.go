// Package runner distributes per-file tagging work across a bounded pool
// of workers. Files are independent, so there is no ordering or shared
// state beyond the run statistics.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/sync/semaphore"

	"go3tag/internal/bpm"
	"go3tag/internal/config"
	"go3tag/internal/shared"
	"go3tag/internal/tagger"
)

type fileError struct {
	Path string
	Err  error
}

// Runner executes a tagging run over directory groups.
type Runner struct {
	cfg      *config.Config
	warnings *shared.WarningCollector
}

// New creates a Runner for the given configuration.
func New(cfg *config.Config, warnings *shared.WarningCollector) *Runner {
	return &Runner{cfg: cfg, warnings: warnings}
}

// Process tags every parsed track in the groups. Per-file failures are
// collected into the returned stats and never abort the batch.
func (r *Runner) Process(ctx context.Context, groups []*shared.DirectoryGroup) *shared.TagStats {
	total := 0
	for _, group := range groups {
		total += len(group.Tracks)
	}

	stats := &shared.TagStats{}
	if total == 0 {
		return stats
	}

	workers := r.cfg.Parallelism
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var bar *pb.ProgressBar
	if shared.IsTTY() && !r.cfg.Verbose {
		bar = pb.StartNew(total)
	}

	// Load each directory's cover once, shared by all its tracks
	for _, group := range groups {
		cover, err := tagger.LoadCover(group.Dir, r.cfg.CoverMaxSize)
		switch {
		case err == nil:
		case errors.Is(err, fs.ErrNotExist):
			if r.cfg.WarningBehavior == "immediate" {
				shared.ColorWarning.Printf("⚠️ No %s in directory %s\n", tagger.CoverFileName, group.Dir)
			} else {
				r.warnings.AddMissingCoverWarning(group.Dir)
			}
		default:
			// Cover.jpg exists but could not be read or decoded
			if r.cfg.WarningBehavior == "immediate" {
				shared.ColorWarning.Printf("⚠️ Could not load %s in directory %s: %v\n", tagger.CoverFileName, group.Dir, err)
			} else {
				r.warnings.AddCoverLoadWarning(group.Dir, err.Error())
			}
		}
		group.Cover = cover
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	sem := semaphore.NewWeighted(int64(workers))
	errorChan := make(chan fileError, total)

	for _, group := range groups {
		for _, track := range group.Tracks {
			wg.Add(1)
			if err := sem.Acquire(ctx, 1); err != nil {
				shared.ColorError.Printf("Failed to acquire semaphore: %v\n", err)
				wg.Done()
				continue
			}

			go func(tf shared.TrackFile, cover []byte) {
				defer wg.Done()
				defer sem.Release(1)

				if err := r.processFile(tf, cover, bar); err != nil {
					errorChan <- fileError{tf.Path, err}
					return
				}

				mu.Lock()
				stats.TaggedCount++
				mu.Unlock()
			}(track, group.Cover)
		}
	}

	wg.Wait()
	if bar != nil {
		bar.Finish()
	}
	close(errorChan)

	for ferr := range errorChan {
		stats.FailedCount++
		stats.FailedItems = append(stats.FailedItems, fmt.Sprintf("%s: %v", ferr.Path, ferr.Err))
		if r.cfg.WarningBehavior == "immediate" {
			shared.ColorError.Printf("❌ Failed to tag %s: %v\n", ferr.Path, ferr.Err)
		} else {
			r.warnings.AddTagWriteWarning(ferr.Path, ferr.Err.Error())
		}
	}

	return stats
}

// processFile estimates the tempo if enabled, reports progress, and
// writes the tags unless the run is a dry run.
func (r *Runner) processFile(tf shared.TrackFile, cover []byte, bar *pb.ProgressBar) error {
	if bar != nil {
		defer bar.Increment()
	}

	tempo := 0.0
	if !r.cfg.DisableBPM {
		estimated, err := bpm.EstimateFile(tf.Path)
		if err != nil {
			if r.cfg.WarningBehavior == "immediate" {
				shared.ColorWarning.Printf("⚠️ Could not estimate BPM for %s: %v\n", tf.Path, err)
			} else {
				r.warnings.AddBPMEstimateWarning(tf.Path, err.Error())
			}
		} else {
			tempo = estimated
		}
	}

	r.report(tf, tempo)

	if r.cfg.DryRun {
		return nil
	}
	return tagger.WriteTags(tf, cover, tempo, r.cfg.Genre)
}

// report prints per-file output: the bare name normally, the full tag
// set when verbose.
func (r *Runner) report(tf shared.TrackFile, tempo float64) {
	if !r.cfg.Verbose {
		if !shared.IsTTY() {
			fmt.Println(filepath.Base(tf.Path))
		}
		return
	}

	shared.ColorInfo.Printf("🎵 %s\n", shared.TruncateString(filepath.Base(tf.Path), 70))
	fmt.Printf("   Artist:      %s\n", tf.Artist)
	fmt.Printf("   Album:       %s\n", tf.Album)
	fmt.Printf("   Track:       %d/%d\n", tf.Track, tf.TotalTracks)
	fmt.Printf("   Title:       %s\n", tf.Title)
	fmt.Printf("   Year:        %s\n", tf.Year)
	fmt.Printf("   Genre:       %s\n", r.cfg.Genre)
	if tempo > 0 {
		fmt.Printf("   BPM:         %.3f\n", tempo)
	}
	fmt.Printf("   Compilation: %v\n", tf.Compilation)
}
