//go:build !unix

package owner

import (
	"errors"
	"os"

	"github.com/refi64/zdata/pkg/zdata/types"
)

// lookup reports the stat error if path is missing, otherwise
// errors.ErrUnsupported since there is no uid/gid to report.
func lookup(path string) (types.Owner, error) {
	if _, err := os.Stat(path); err != nil {
		return types.Owner{}, err
	}
	return types.Owner{}, &os.PathError{Op: "stat", Path: path, Err: errors.ErrUnsupported}
}
