/*
 * warnings.go, part of chemfiles.
 *
 * Copyright 2024 Raul Mera <rauldotmeraatusachdotcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package chemfiles

import (
	"fmt"
	"log"
	"sync"
)

var (
	warningMu       sync.RWMutex
	warningCallback = defaultWarning
)

func defaultWarning(message string) {
	log.Printf("[chemfiles] %s", message)
}

// SetWarningCallback replaces the function receiving the warnings emitted by the library.
// By default, warnings go to the standard logger. A nil callback silences them.
func SetWarningCallback(callback func(message string)) {
	if callback == nil {
		callback = func(string) {}
	}
	warningMu.Lock()
	warningCallback = callback
	warningMu.Unlock()
}

// Warning formats a message and sends it to the current warning callback.
// Warnings are for heads-up conditions that do not stop the current operation.
func Warning(format string, a ...interface{}) {
	warningMu.RLock()
	callback := warningCallback
	warningMu.RUnlock()
	callback(fmt.Sprintf(format, a...))
}
