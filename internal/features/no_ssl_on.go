//go:build no_ssl

package features

const noSSL = true
