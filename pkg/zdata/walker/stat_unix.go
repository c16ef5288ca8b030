//go:build unix

package walker

import (
	"os"

	"github.com/refi64/zdata/pkg/zdata/types"
	"golang.org/x/sys/unix"
)

// lstatNode builds a Node from lstat(2) without following symlinks.
func lstatNode(path string) (types.Node, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return types.Node{}, &os.PathError{Op: "lstat", Path: path, Err: err}
	}

	return types.Node{
		Path:   path,
		Type:   typeFromStatMode(uint32(st.Mode)),
		Size:   st.Size,
		Blocks: int64(st.Blocks),
		Dev:    uint64(st.Dev),
		UID:    st.Uid,
		GID:    st.Gid,
	}, nil
}

// typeFromStatMode classifies the S_IFMT bits of a stat mode.
func typeFromStatMode(mode uint32) types.NodeType {
	switch mode & unix.S_IFMT {
	case unix.S_IFREG:
		return types.TypeFile
	case unix.S_IFDIR:
		return types.TypeDir
	default:
		return types.TypeOther
	}
}
