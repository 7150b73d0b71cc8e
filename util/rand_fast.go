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

//go:build !stdrand
// +build !stdrand

package util

type random struct{}

func getRandom() *random {
	return new(random)
}
func abs64(v uint64) uint64 {
	return v &^ (1 << 63)
}
func (random) Uint32() uint32 {
	return FastRand()
}
func (random) Uint64() uint64 {
	return uint64(FastRand())<<32 | uint64(FastRand())
}
func (r random) Intn(n int) int {
	return int(abs64(r.Uint64())) % n
}
