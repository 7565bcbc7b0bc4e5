//go:build !freebsd

package facts

func jailed() bool {
	return false
}
