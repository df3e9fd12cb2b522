//go:build !windows

package dpi

func newPlatform() platform { return nil }

func newAwarenessSetter() awarenessSetter { return nil }
