// Package types provides core data types for the zdata filesystem tools.
// It includes the traversal node produced while walking a tree, the owner
// pair reported by the owner lookup, and the unit constants used when
// converting byte and block counts into kilobytes.
package types

import (
	"fmt"
	"io/fs"

	"github.com/dustin/go-humanize"
)

// Unit constants for size conversion.
const (
	// KiB is the number of bytes in one kilobyte.
	KiB int64 = 1024

	// BlockSize is the size of one allocation block as reported by stat(2).
	BlockSize int64 = 512

	// BlocksPerKiB is the number of allocation blocks in one kilobyte.
	BlocksPerKiB = KiB / BlockSize
)

// NodeType classifies a traversal node.
type NodeType int

// Node types. Only files and directories are counted towards usage.
const (
	TypeOther NodeType = iota
	TypeFile
	TypeDir
)

// String returns the string representation of the node type.
func (t NodeType) String() string {
	switch t {
	case TypeFile:
		return "file"
	case TypeDir:
		return "dir"
	default:
		return "other"
	}
}

// TypeFromMode maps file mode bits to a NodeType.
func TypeFromMode(mode fs.FileMode) NodeType {
	switch {
	case mode.IsRegular():
		return TypeFile
	case mode.IsDir():
		return TypeDir
	default:
		return TypeOther
	}
}

// Node is a filesystem entry produced during traversal.
// It only lives for the duration of one traversal step.
type Node struct {
	// Path is the path of the entry as produced by the walk.
	Path string `json:"path"`

	// Type classifies the entry.
	Type NodeType `json:"type"`

	// Size is the apparent size in bytes.
	Size int64 `json:"size"`

	// Blocks is the number of 512-byte blocks allocated on disk.
	Blocks int64 `json:"blocks"`

	// Dev is the device the entry lives on.
	Dev uint64 `json:"dev"`

	UID uint32 `json:"uid"`
	GID uint32 `json:"gid"`
}

// Qualifies reports whether the node counts towards usage totals.
// Symlinks, sockets, devices and fifos are visited but never counted.
func (n Node) Qualifies() bool {
	return n.Type == TypeFile || n.Type == TypeDir
}

// Owner is the numeric user and group that own a file.
type Owner struct {
	UID uint32 `json:"uid"`
	GID uint32 `json:"gid"`
}

// String returns the owner as "<uid>:<gid>" in decimal.
func (o Owner) String() string {
	return fmt.Sprintf("%d:%d", o.UID, o.GID)
}

// FormatKiB converts a kilobyte count to a human-readable string using
// binary (IEC) units.
//
// Examples:
//   - FormatKiB(0) returns "0 B"
//   - FormatKiB(1) returns "1.0 KiB"
//   - FormatKiB(1536) returns "1.5 MiB"
func FormatKiB(kib int64) string {
	if kib < 0 {
		kib = 0
	}
	return humanize.IBytes(uint64(kib) * uint64(KiB))
}
