//go:build !linux && !darwin && !freebsd

package crypto

func lockMemory([]byte) bool { return false }

func unlockMemory([]byte) {}
