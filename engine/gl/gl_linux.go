//go:build linux

package gl

const libraryPath = "libGL.so.1"
