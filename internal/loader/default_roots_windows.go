// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

//go:build windows

package loader

import (
	"path/filepath"
)

func getDefaultRoots(lookup func(string) (string, bool)) []string {
	if explicit, ok := lookup("PCCONF_PATH"); ok && explicit != "" {
		return filepath.SplitList(explicit)
	}
	appdata, _ := lookup("APPDATA")
	programdata, _ := lookup("ProgramData")

	return []string{
		filepath.Join(appdata, "pcconf"),
		filepath.Join(programdata, "pcconf"),
	}
}
