// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"strconv"
	"strings"
)

// AppendDefaultProperty appends "key=value" to the comma separated
// properties unless the key is already present.
func AppendDefaultProperty(properties, key, value string) string {
	if strings.Contains(properties, key+"=") {
		return properties
	}

	if properties == "" {
		return key + "=" + value
	}

	return properties + "," + key + "=" + value
}

func onOff(b bool) string {
	if b {
		return "on"
	}

	return "off"
}

func property(key string, value int) string {
	return key + "=" + strconv.Itoa(value)
}
