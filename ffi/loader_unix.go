//go:build !windows

package ffi

import (
	"fmt"

	"github.com/ebitengine/purego"
)

func dlopen(path string) (uintptr, error) {
	lib, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, fmt.Errorf("dlopen %s: %w", path, err)
	}
	if lib == 0 {
		return 0, fmt.Errorf("dlopen %s: nil library handle", path)
	}
	return lib, nil
}
