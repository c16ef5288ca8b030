//go:build !unix

package walker

import (
	"os"

	"github.com/refi64/zdata/pkg/zdata/types"
)

// lstatNode builds a Node from os.Lstat.
// On platforms without stat blocks, allocation is estimated from the size
// rounded up to whole 512-byte blocks, and every node reports device 0.
func lstatNode(path string) (types.Node, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return types.Node{}, err
	}

	size := info.Size()
	return types.Node{
		Path:   path,
		Type:   types.TypeFromMode(info.Mode()),
		Size:   size,
		Blocks: (size + types.BlockSize - 1) / types.BlockSize,
	}, nil
}
