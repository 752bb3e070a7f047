package viewer

import "github.com/atotto/clipboard"

// SystemClipboard Буфер обмена ОС через atotto/clipboard.
type SystemClipboard struct{}

// NewSystemClipboard Конструктор.
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

func (c *SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}

	return clipboard.WriteAll(text)
}
