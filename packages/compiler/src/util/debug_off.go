//go:build !vapordebug

package util

const debugBuild = false
