//go:build windows

package main

import (
	"github.com/lxn/win"

	"desktop-utils/src/winapi"
)

func foregroundWindow() winapi.HWND {
	return winapi.HWND(win.GetForegroundWindow())
}
