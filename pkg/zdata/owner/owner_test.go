//go:build unix

package owner

import (
	"errors"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/refi64/zdata/pkg/zdata/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupOwnFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	o, err := Lookup(path)
	require.NoError(t, err)

	assert.Equal(t, uint32(os.Getuid()), o.UID)
	assert.Equal(t, o.String(), strconv.Itoa(int(o.UID))+":"+strconv.Itoa(int(o.GID)))
}

func TestLookupChownedFile(t *testing.T) {
	if os.Geteuid() != 0 {
		t.Skip("chown to another uid requires root")
	}

	path := filepath.Join(t.TempDir(), "owned")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	require.NoError(t, os.Chown(path, 1000, 1000))

	o, err := Lookup(path)
	require.NoError(t, err)
	assert.Equal(t, "1000:1000", o.String())
}

func TestLookupFollowsSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	link := filepath.Join(dir, "link")
	require.NoError(t, os.WriteFile(target, nil, 0o644))
	require.NoError(t, os.Symlink(target, link))

	want, err := Lookup(target)
	require.NoError(t, err)
	got, err := Lookup(link)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestLookupMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	_, err := Lookup(missing)
	require.Error(t, err)

	var pathErr *fs.PathError
	require.True(t, errors.As(err, &pathErr))
	assert.Equal(t, "stat", pathErr.Op)
	assert.Equal(t, missing, pathErr.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNames(t *testing.T) {
	current, err := user.Current()
	require.NoError(t, err)
	if _, err := user.LookupId(current.Uid); err != nil {
		t.Skipf("current user is not in the user database: %v", err)
	}

	uid, err := strconv.ParseUint(current.Uid, 10, 32)
	require.NoError(t, err)

	username, _ := Names(types.Owner{UID: uint32(uid), GID: 0})
	assert.Equal(t, current.Username, username)
}

func TestNamesFallsBackToIDs(t *testing.T) {
	// Very unlikely to exist in any passwd or group database.
	o := types.Owner{UID: 3999999999, GID: 3999999998}

	username, group := Names(o)
	assert.Equal(t, "3999999999", username)
	assert.Equal(t, "3999999998", group)
}
