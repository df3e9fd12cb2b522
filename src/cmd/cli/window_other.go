//go:build !windows

package main

import "desktop-utils/src/winapi"

func defaultWindow() winapi.HWND { return 0 }
