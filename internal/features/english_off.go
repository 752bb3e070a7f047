//go:build !english

package features

const english = false
