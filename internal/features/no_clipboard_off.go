//go:build !no_clipboard

package features

const noClipboard = false
