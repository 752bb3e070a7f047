package models

import (
	"net/netip"
	"strings"
)

const (
	DefaultHTTPPort  uint16 = 80
	DefaultHTTPSPort uint16 = 443
)

// DefaultIPv4Addr Адрес, на котором слушает сервер.
var DefaultIPv4Addr = netip.IPv4Unspecified()

// TLSMaterial Цепочка сертификатов и приватный ключ в PEM.
type TLSMaterial struct {
	CertChainPEM  []byte
	PrivateKeyPEM []byte
}

// BuildPlan Полностью проверенная конфигурация сервера, готовая к запуску.
type BuildPlan struct {
	BindAddress netip.AddrPort
	DistDir     string
	URIPrefix   string
	TLS         *TLSMaterial
}

// NewBuildPlan Конструктор плана для HTTP на 0.0.0.0:port.
func NewBuildPlan(port uint16, distDir, uriPrefix string) BuildPlan {
	return BuildPlan{
		BindAddress: netip.AddrPortFrom(DefaultIPv4Addr, port),
		DistDir:     distDir,
		URIPrefix:   uriPrefix,
	}
}

// Port Порт из адреса привязки.
func (p BuildPlan) Port() uint16 {
	return p.BindAddress.Port()
}

// Scheme "https" при наличии TLS, иначе "http".
func (p BuildPlan) Scheme() string {
	if p.TLS != nil {
		return "https"
	}

	return "http"
}

// DefaultPort Порт по умолчанию для схемы плана.
func (p BuildPlan) DefaultPort() uint16 {
	if p.TLS != nil {
		return DefaultHTTPSPort
	}

	return DefaultHTTPPort
}

// ValidURIPrefix Префикс не начинается с "/" и не содержит "//". Пустая строка допустима.
func ValidURIPrefix(prefix string) bool {
	return !strings.HasPrefix(prefix, "/") && !strings.Contains(prefix, "//")
}

// ErrorReport Упорядоченный список локализованных абзацев об ошибках.
// Если отчёт существует, плана сборки нет.
type ErrorReport struct {
	Paragraphs []string
}

// ClipboardIntent Намерение скопировать URL в буфер обмена.
type ClipboardIntent int

const (
	// ClipboardUnavailable Поддержка буфера обмена не собрана.
	ClipboardUnavailable ClipboardIntent = iota
	// ClipboardCopy Копировать URL.
	ClipboardCopy
	// ClipboardSkip Пользователь передал --no_clipboard.
	ClipboardSkip
)
