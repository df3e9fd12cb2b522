//go:build windows

package notification

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	MB_OK              = 0x00000000
	MB_ICONERROR       = 0x00000010
	MB_ICONINFORMATION = 0x00000040
	MB_SYSTEMMODAL     = 0x00001000
)

var (
	user32          = windows.NewLazySystemDLL("user32.dll")
	procMessageBoxW = user32.NewProc("MessageBoxW")
)

func showMessageBox(title, message string, isError bool) error {
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return err
	}
	messagePtr, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return err
	}

	flags := uintptr(MB_OK | MB_ICONINFORMATION)
	if isError {
		flags = MB_OK | MB_ICONERROR | MB_SYSTEMMODAL
	}
	r, _, callErr := procMessageBoxW.Call(
		0, // hwnd (no parent window)
		uintptr(unsafe.Pointer(messagePtr)),
		uintptr(unsafe.Pointer(titlePtr)),
		flags,
	)
	if r == 0 {
		return fmt.Errorf("MessageBoxW failed: %w", callErr)
	}
	return nil
}
