// SPDX-License-Identifier: MPL-2.0

//go:build windows

package watch

import "syscall"

// fatalErrnos are Win32 errors after which ReadDirectoryChangesW cannot
// recover: ERROR_TOO_MANY_OPEN_FILES (4), ERROR_INVALID_HANDLE (6) and
// ERROR_NOT_ENOUGH_MEMORY (8).
var fatalErrnos = []error{syscall.Errno(4), syscall.Errno(6), syscall.Errno(8)}
