//go:build unix

package owner

import (
	"os"

	"github.com/refi64/zdata/pkg/zdata/types"
	"golang.org/x/sys/unix"
)

func lookup(path string) (types.Owner, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return types.Owner{}, &os.PathError{Op: "stat", Path: path, Err: err}
	}
	return types.Owner{UID: st.Uid, GID: st.Gid}, nil
}
