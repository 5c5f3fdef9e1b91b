// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ccore

import "errors"

// ErrArg indicates a bounds violation, a nil argument, or an operation
// requiring a non-empty container that was given an empty one.
//
// ErrArg is always returned unwrapped or wrapped with fmt.Errorf's %w, so
// errors.Is(err, ccore.ErrArg) finds it either way.
var ErrArg = errors.New("ccore: invalid argument")

// ErrNoAlloc indicates that an operation needed to grow a container's
// backing storage but the container has no allocator installed (arena
// mode). The container's prior state is left untouched; see the
// no-partial-growth invariant in spec.md §7/§8.
var ErrNoAlloc = errors.New("ccore: growth required but no allocator installed")

// ErrMem indicates that an installed allocator returned a nil slice (and
// a nil error) when asked to grow. As with ErrNoAlloc, the container's
// prior state is left untouched.
var ErrMem = errors.New("ccore: allocator returned nil")

// IsArgError reports whether err is (or wraps) ErrArg.
func IsArgError(err error) bool {
	return errors.Is(err, ErrArg)
}

// IsNoAlloc reports whether err is (or wraps) ErrNoAlloc.
func IsNoAlloc(err error) bool {
	return errors.Is(err, ErrNoAlloc)
}

// IsMemError reports whether err is (or wraps) ErrMem.
func IsMemError(err error) bool {
	return errors.Is(err, ErrMem)
}

// IsCapacityError reports whether err represents any growth failure
// (ErrNoAlloc or ErrMem), as opposed to a caller argument mistake.
func IsCapacityError(err error) bool {
	return IsNoAlloc(err) || IsMemError(err)
}
