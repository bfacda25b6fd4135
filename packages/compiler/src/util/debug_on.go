//go:build vapordebug

package util

const debugBuild = true
