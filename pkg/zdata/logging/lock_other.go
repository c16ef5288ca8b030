//go:build !unix

package logging

import "os"

// Advisory locking is not available; the in-process mutex still applies.
func lockFile(*os.File) error { return nil }

func unlockFile(*os.File) {}
