//go:build windows

package ffi

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func dlopen(path string) (uintptr, error) {
	lib, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, fmt.Errorf("LoadLibrary %s: %w", path, err)
	}
	return uintptr(lib), nil
}
