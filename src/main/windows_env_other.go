//go:build !windows

package main

import "desktop-utils/src/winapi"

func foregroundWindow() winapi.HWND { return 0 }
