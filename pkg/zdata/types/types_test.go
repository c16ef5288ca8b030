package types

import (
	"io/fs"
	"testing"
)

func TestNodeQualifies(t *testing.T) {
	tests := []struct {
		name string
		typ  NodeType
		want bool
	}{
		{name: "regular file", typ: TypeFile, want: true},
		{name: "directory", typ: TypeDir, want: true},
		{name: "other", typ: TypeOther, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Node{Path: "/x", Type: tt.typ}
			if got := n.Qualifies(); got != tt.want {
				t.Errorf("Qualifies() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTypeFromMode(t *testing.T) {
	tests := []struct {
		mode fs.FileMode
		want NodeType
	}{
		{0o644, TypeFile},
		{fs.ModeDir | 0o755, TypeDir},
		{fs.ModeSymlink | 0o777, TypeOther},
		{fs.ModeSocket, TypeOther},
		{fs.ModeNamedPipe, TypeOther},
		{fs.ModeDevice | fs.ModeCharDevice, TypeOther},
	}

	for _, tt := range tests {
		if got := TypeFromMode(tt.mode); got != tt.want {
			t.Errorf("TypeFromMode(%v) = %v, want %v", tt.mode, got, tt.want)
		}
	}
}

func TestNodeTypeString(t *testing.T) {
	if TypeFile.String() != "file" {
		t.Errorf("TypeFile.String() = %q", TypeFile.String())
	}
	if TypeDir.String() != "dir" {
		t.Errorf("TypeDir.String() = %q", TypeDir.String())
	}
	if TypeOther.String() != "other" {
		t.Errorf("TypeOther.String() = %q", TypeOther.String())
	}
}

func TestOwnerString(t *testing.T) {
	tests := []struct {
		owner Owner
		want  string
	}{
		{Owner{UID: 1000, GID: 1000}, "1000:1000"},
		{Owner{UID: 0, GID: 0}, "0:0"},
		{Owner{UID: 4294967294, GID: 65534}, "4294967294:65534"},
	}

	for _, tt := range tests {
		if got := tt.owner.String(); got != tt.want {
			t.Errorf("Owner%+v.String() = %q, want %q", tt.owner, got, tt.want)
		}
	}
}

func TestBlocksPerKiB(t *testing.T) {
	if BlocksPerKiB != 2 {
		t.Errorf("BlocksPerKiB = %d, want 2", BlocksPerKiB)
	}
}

func TestFormatKiB(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{0, "0 B"},
		{1, "1.0 KiB"},
		{1536, "1.5 MiB"},
		{1024 * 1024, "1.0 GiB"},
		{-5, "0 B"},
	}

	for _, tt := range tests {
		if got := FormatKiB(tt.input); got != tt.want {
			t.Errorf("FormatKiB(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
