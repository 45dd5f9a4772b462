package services

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Sweeper reclaims attachment files orphaned by crashes in the request path.
// It only ever touches entries older than the retention threshold, which must
// sit far above worst-case request latency: that margin, not locking, is what
// keeps it from racing an in-flight request.
type Sweeper struct {
	dir       string
	retention time.Duration
	interval  time.Duration
	logger    *zap.Logger
	now       func() time.Time

	stop chan struct{}
	done chan struct{}
}

func NewSweeper(dir string, retention, interval time.Duration, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		dir:       dir,
		retention: retention,
		interval:  interval,
		logger:    logger,
		now:       time.Now,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start launches the periodic sweep. It returns immediately; use Stop to shut
// the sweeper down.
func (s *Sweeper) Start() {
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.sweepOnce()
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop halts the periodic sweep and waits for an in-progress cycle to finish.
func (s *Sweeper) Stop() {
	close(s.stop)
	<-s.done
}

// sweepOnce walks the attachment directory and deletes every regular file
// strictly older than the retention threshold. A listing failure aborts the
// cycle; a single failed delete does not.
func (s *Sweeper) sweepOnce() {
	cutoff := s.now().Add(-s.retention)
	removed := 0

	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			s.logger.Warn("failed to stat sweep candidate", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.ModTime().Before(cutoff) {
			return nil
		}
		if err := os.Remove(path); err != nil {
			s.logger.Warn("failed to remove orphaned file", zap.String("path", path), zap.Error(err))
			return nil
		}
		removed++
		return nil
	})
	if err != nil {
		s.logger.Error("sweep cycle aborted", zap.String("dir", s.dir), zap.Error(err))
		return
	}

	if removed > 0 {
		s.logger.Info("sweep cycle finished", zap.Int("removed", removed))
	}
}
