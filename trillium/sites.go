// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trillium

// Sites maps the two-letter study site codes to location names.
var Sites = map[string]string{
	"TB": "Tilton Bridge",
	"PB": "Pocket Branch",
	"OM": "Old Mine",
	"CA": "Cave",
	"WF": "WhiteWater Falls",
	"BR": "Boat Ramp",
	"JG": "Jocassee Gorges",
}

// LocationName returns the location name for a site code.
func LocationName(code string) (string, bool) {
	name, ok := Sites[code]
	return name, ok
}

// SiteCode returns the site code of a location name. It is the inverse
// of LocationName.
func SiteCode(location string) (string, bool) {
	for code, name := range Sites {
		if name == location {
			return code, true
		}
	}
	return "", false
}
