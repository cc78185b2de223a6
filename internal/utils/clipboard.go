// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnsupported is returned when the host has no usable clipboard
// utility.
var ErrClipboardUnsupported = errors.New("clipboard is not supported on this system")

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

// NewSystemClipboard returns a [Clipboard] backed by the OS clipboard
// (atotto/clipboard).
func NewSystemClipboard() Clipboard {
	return systemClipboard{}
}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}

	return clipboard.WriteAll(text)
}
