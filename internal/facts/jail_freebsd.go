//go:build freebsd

package facts

import "golang.org/x/sys/unix"

// jailed reports whether the process runs inside a FreeBSD jail.
func jailed() bool {
	v, err := unix.SysctlUint32("security.jail.jailed")
	return err == nil && v == 1
}
