// Package osthread provides a uniform view of the identity and timing
// primitives of the host operating system: process and thread identifiers,
// a monotonic high-resolution counter, the scheduler tick resolution, and
// sleep/yield helpers.
//
// The clock family is fixed when the package is compiled. Linux and Darwin
// use CLOCK_MONOTONIC_RAW, FreeBSD uses CLOCK_MONOTONIC_PRECISE,
// Solaris and illumos use CLOCK_HIGHRES, NetBSD and OpenBSD use
// CLOCK_MONOTONIC, and Windows uses QueryPerformanceCounter. Darwin builds
// with cgo enabled and the "machtime" build tag use mach_absolute_time
// instead. Platforms that expose none of these do not build.
//
// None of the functions in this package return errors. Unknown or unset
// values are expressed with sentinels (see [InvalidProcessID],
// [InvalidThreadID] and [ZeroHighResCount]) and failing queries degrade to
// conservative defaults.
package osthread
