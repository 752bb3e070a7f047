//go:build !no_color

package features

const noColor = false
