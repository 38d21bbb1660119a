// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

//go:build aix || darwin || dragonfly || freebsd || (js && wasm) || linux || netbsd || openbsd || solaris

package loader

import (
	"os"
	"path/filepath"
	"strings"
)

// getDefaultRoots lists PCCONF_PATH entries when set and otherwise the
// pcconf directory inside every XDG configuration directory.
func getDefaultRoots(lookup func(string) (string, bool)) []string {
	if explicit, ok := lookup("PCCONF_PATH"); ok && explicit != "" {
		return filepath.SplitList(explicit)
	}
	xdgDirs, ok := lookup("XDG_CONFIG_DIRS")
	if !ok || xdgDirs == "" {
		xdgDirs = "/etc/xdg"
	}
	configDirs := strings.Split(xdgDirs, ":")
	for offset, configDir := range configDirs {
		p := filepath.Join(configDir, "pcconf")
		p = os.Expand(p, func(s string) string {
			v, _ := lookup(s)
			return v
		})
		configDirs[offset] = p
	}
	return configDirs
}
