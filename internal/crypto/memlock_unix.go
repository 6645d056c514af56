//go:build linux || darwin || freebsd

package crypto

import "golang.org/x/sys/unix"

// lockMemory pins b in RAM. It reports whether the lock took effect; a
// failure (RLIMIT_MEMLOCK, missing capability) leaves b usable but swappable.
func lockMemory(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	return unix.Mlock(b) == nil
}

func unlockMemory(b []byte) {
	if len(b) == 0 {
		return
	}
	_ = unix.Munlock(b)
}
