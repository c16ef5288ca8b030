// Package owner looks up the user and group that own a file.
package owner

import (
	"os/user"
	"strconv"

	"github.com/refi64/zdata/pkg/zdata/logging"
	"github.com/refi64/zdata/pkg/zdata/types"
)

var logger = logging.Get("owner")

// Lookup returns the numeric owner of path. Symlinks are followed.
// Failures are returned as *os.PathError with Op "stat".
func Lookup(path string) (types.Owner, error) {
	o, err := lookup(path)
	if err != nil {
		logger.Debug("owner lookup failed", "path", path, "err", err)
		return types.Owner{}, err
	}
	logger.Debug("owner lookup", "path", path, "uid", o.UID, "gid", o.GID)
	return o, nil
}

// Names resolves the owner to user and group names.
// Falls back to the decimal ids when a name cannot be resolved.
func Names(o types.Owner) (username, group string) {
	uid := strconv.FormatUint(uint64(o.UID), 10)
	if u, err := user.LookupId(uid); err == nil {
		username = u.Username
	} else {
		username = uid
	}

	gid := strconv.FormatUint(uint64(o.GID), 10)
	if g, err := user.LookupGroupId(gid); err == nil {
		group = g.Name
	} else {
		group = gid
	}

	return username, group
}
