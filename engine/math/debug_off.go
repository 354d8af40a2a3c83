//go:build !extramath_debug

package math

const debugChecks = false
