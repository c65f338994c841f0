//go:build !windows

package netrc

import (
	"fmt"
	"os"
	"syscall"

	"github.com/pkg/errors"
)

// checkPermissions refuses netrc files that other users could read or
// tamper with: any group/world permission bit, or ownership by a
// different effective user.
func checkPermissions(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return errors.Wrap(err, "unable to stat netrc file")
	}
	if fi.Mode().Perm()&0o077 != 0 {
		return ErrUnsafePermissions.Msg(fmt.Sprintf("%s is accessible by group or world (mode %04o)", path, fi.Mode().Perm()))
	}
	if st, ok := fi.Sys().(*syscall.Stat_t); ok {
		if int(st.Uid) != os.Geteuid() {
			return ErrUnsafePermissions.Msg(fmt.Sprintf("%s is not owned by the current user", path))
		}
	}
	return nil
}
