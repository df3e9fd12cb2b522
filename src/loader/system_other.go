//go:build !windows

package loader

func newSystem() system { return nil }
