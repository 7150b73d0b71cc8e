// Copyright (C) 2020 - 2023 iDigitalFlame
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
//

package util

import (
	// Import unsafe to use faster "cputicks" function instead of "time.Now().UnixNano()"
	_ "unsafe"
)

// Rand is the custom Random number generator, based on the current time as a
// seed.
var Rand = getRandom()

//go:linkname cputicks runtime.cputicks
func cputicks() int64

// FastRand is a fast thread local random function. This should be used in
// place instead of 'Rand.Uint32()'.
//
// Taken from https://github.com/dgraph-io/ristretto/blob/master/z/rtutil.go Thanks!
//
//go:linkname FastRand runtime.fastrand
func FastRand() uint32
