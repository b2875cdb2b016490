// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package record

import "strings"

// pin names never contain spaces.
func joinPins(pins []string) string { return strings.Join(pins, " ") }

func splitPins(s string) []string { return strings.Fields(s) }
