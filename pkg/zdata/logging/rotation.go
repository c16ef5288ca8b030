package logging

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// RotationConfig configures log file rotation behavior.
type RotationConfig struct {
	// MaxSize is the file size in bytes that triggers rotation.
	// Zero uses the default of 10MB.
	MaxSize int64

	// MaxAge is the number of days a rotated file is kept. Zero keeps
	// rotated files regardless of age.
	MaxAge int

	// MaxBackups is the number of rotated files kept. Zero keeps all.
	MaxBackups int

	// Daily starts a new file on the first write of each calendar day.
	Daily bool
}

// DefaultRotationConfig returns sensible defaults for rotation.
func DefaultRotationConfig() RotationConfig {
	return RotationConfig{
		MaxSize:    10 * 1024 * 1024,
		MaxAge:     30,
		MaxBackups: 5,
		Daily:      true,
	}
}

const backupStamp = "20060102T150405.000000000"

// RotatingWriter is an io.WriteCloser that rotates its file by size and
// by day. Writes take an advisory file lock where the platform supports it,
// so owner and usage invocations running side by side can share one log.
type RotatingWriter struct {
	path string
	cfg  RotationConfig

	mu   sync.Mutex
	file *os.File
	size int64
	// day is the calendar day the current file was started on.
	day time.Time
}

// NewRotatingWriter opens path for appending, creating parent directories
// as needed, and prunes stale rotated files.
func NewRotatingWriter(path string, cfg RotationConfig) (*RotatingWriter, error) {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = DefaultRotationConfig().MaxSize
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	w := &RotatingWriter{path: path, cfg: cfg}
	if err := w.open(); err != nil {
		return nil, err
	}
	w.prune(time.Now())
	return w, nil
}

// Write appends p, starting a new file first when p would overflow MaxSize
// or the day has changed.
func (w *RotatingWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return 0, os.ErrClosed
	}

	now := time.Now()
	if w.due(int64(len(p)), now) {
		if err := w.rotate(now); err != nil {
			return 0, fmt.Errorf("rotating log file: %w", err)
		}
	}

	if err := lockFile(w.file); err != nil {
		return 0, fmt.Errorf("acquiring file lock: %w", err)
	}
	defer unlockFile(w.file)

	n, err := w.file.Write(p)
	w.size += int64(n)
	if err != nil {
		return n, fmt.Errorf("writing to log file: %w", err)
	}
	return n, nil
}

// Close syncs and closes the file. Closing twice is a no-op.
func (w *RotatingWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}
	f := w.file
	w.file = nil
	return errors.Join(f.Sync(), f.Close())
}

func (w *RotatingWriter) open() error {
	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		return errors.Join(fmt.Errorf("stat log file: %w", err), f.Close())
	}

	w.file = f
	w.size = info.Size()
	w.day = startOfDay(info.ModTime())
	return nil
}

// due reports whether n more bytes written at now belong in a new file.
// An empty file is never rotated.
func (w *RotatingWriter) due(n int64, now time.Time) bool {
	switch {
	case w.size == 0:
		return false
	case w.size+n > w.cfg.MaxSize:
		return true
	default:
		return w.cfg.Daily && !startOfDay(now).Equal(w.day)
	}
}

func (w *RotatingWriter) rotate(now time.Time) error {
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("closing current file: %w", err)
	}
	w.file = nil

	if err := os.Rename(w.path, w.backupName(now)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("renaming log file: %w", err)
	}
	if err := w.open(); err != nil {
		return err
	}
	w.day = startOfDay(now)
	w.prune(now)
	return nil
}

// backupName turns dir/zdata.log into dir/zdata.<stamp>.log.
func (w *RotatingWriter) backupName(at time.Time) string {
	stem, ext := w.split()
	return stem + "." + at.Format(backupStamp) + ext
}

func (w *RotatingWriter) split() (stem, ext string) {
	ext = filepath.Ext(w.path)
	return strings.TrimSuffix(w.path, ext), ext
}

// prune deletes rotated files past MaxBackups or older than MaxAge days.
// Failures are ignored; the next rotation retries.
func (w *RotatingWriter) prune(now time.Time) {
	stem, ext := w.split()
	matches, err := filepath.Glob(globEscape(stem) + ".*" + globEscape(ext))
	if err != nil {
		return
	}

	type backup struct {
		path string
		mod  time.Time
	}
	backups := make([]backup, 0, len(matches))
	for _, m := range matches {
		info, err := os.Lstat(m)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		backups = append(backups, backup{m, info.ModTime()})
	}
	slices.SortFunc(backups, func(a, b backup) int { return b.mod.Compare(a.mod) })

	cutoff := now.AddDate(0, 0, -w.cfg.MaxAge)
	for i, b := range backups {
		if (w.cfg.MaxBackups > 0 && i >= w.cfg.MaxBackups) || (w.cfg.MaxAge > 0 && b.mod.Before(cutoff)) {
			_ = os.Remove(b.path)
		}
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// globEscape quotes the filepath.Match wildcards in s. Backslash is left
// alone since it separates paths on Windows.
func globEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune("*?[", r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
