// Package walker performs the physical, device-bounded directory walk used
// by the usage accumulator. Symbolic links are never followed and
// directories that live on a different device than the root are reported
// but not descended into.
package walker

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/refi64/zdata/pkg/zdata/logging"
	"github.com/refi64/zdata/pkg/zdata/types"
)

var logger = logging.Get("walker")

// ErrOpen is returned when the root of the walk cannot be opened.
var ErrOpen = errors.New("cannot open root for traversal")

// ErrRead is returned when an entry cannot be read in the middle of a walk.
var ErrRead = errors.New("traversal read failed")

// maxWorkers is the largest accepted worker count.
const maxWorkers = 64

// Options configures the walk.
type Options struct {
	// Workers is the number of fastwalk workers. Values below 1 mean a
	// single worker and values above 64 are capped. Nodes are always
	// delivered to the callback one at a time regardless of this setting.
	Workers int
}

func (o Options) workers() int {
	return min(max(o.Workers, 1), maxWorkers)
}

// Func is called once for every node visited by Walk, including nodes that
// do not qualify for usage accounting. Returning an error aborts the walk
// and Walk returns that error unchanged.
type Func func(types.Node) error

// Walk visits root and every descendant exactly once.
//
// A root that cannot be lstat'ed yields an error wrapping ErrOpen. A root
// that is not a directory yields exactly one node. Errors reported by the
// underlying walk abort immediately with an error wrapping ErrRead.
func Walk(ctx context.Context, root string, opts Options, fn Func) error {
	rootNode, err := lstatNode(root)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOpen, err)
	}

	if rootNode.Type != types.TypeDir {
		logger.Debug("root is not a directory", "path", root, "type", rootNode.Type)
		return fn(rootNode)
	}

	w := &walk{
		ctx:     ctx,
		rootDev: rootNode.Dev,
		fn:      fn,
	}

	conf := fastwalk.Config{
		Follow:     false,
		NumWorkers: opts.workers(),
	}

	logger.Debug("walk started", "path", root, "dev", rootNode.Dev, "workers", conf.NumWorkers)
	if err := fastwalk.Walk(&conf, root, w.visit); err != nil {
		if fnErr := w.fnErr(); fnErr != nil {
			return fnErr
		}
		return err
	}
	logger.Debug("walk finished", "path", root)
	return nil
}

// walk holds the state shared by fastwalk callbacks.
type walk struct {
	ctx     context.Context
	rootDev uint64
	fn      Func

	// mu serializes delivery to fn; fastwalk may call visit from several
	// goroutines.
	mu sync.Mutex
	// err is the first error returned by fn. fastwalk reports it a second
	// time as the parent directory's read error.
	err error
}

func (w *walk) fnErr() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

// visit is the fs.WalkDirFunc handed to fastwalk.
func (w *walk) visit(path string, d fs.DirEntry, walkErr error) error {
	if err := w.ctx.Err(); err != nil {
		return err
	}

	if walkErr != nil {
		if fnErr := w.fnErr(); fnErr != nil {
			return fnErr
		}
		return fmt.Errorf("%w: %s: %w", ErrRead, path, walkErr)
	}

	node, err := lstatNode(path)
	if err != nil {
		// The entry vanished between readdir and lstat; it has no metadata
		// to count, so it is skipped like any other unstattable node.
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug("entry vanished during walk", "path", path)
			return nil
		}
		return fmt.Errorf("%w: %w", ErrRead, err)
	}

	w.mu.Lock()
	if w.err == nil {
		w.err = w.fn(node)
	}
	err = w.err
	w.mu.Unlock()
	if err != nil {
		return err
	}

	if node.Type == types.TypeDir && node.Dev != w.rootDev {
		logger.Debug("not crossing device boundary", "path", path, "dev", node.Dev)
		return fastwalk.SkipDir
	}

	return nil
}
