//go:build windows

package main

import (
	"github.com/lxn/win"

	"desktop-utils/src/winapi"
)

func defaultWindow() winapi.HWND {
	if h := win.GetConsoleWindow(); h != 0 {
		return winapi.HWND(h)
	}
	return winapi.HWND(win.GetForegroundWindow())
}
