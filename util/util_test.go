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

import "testing"

func TestItoa(t *testing.T) {
	if v := Itoa(-455); v != "-455" {
		t.Fatalf(`TestItoa(): Itoa result "%s" does not match the expected value "-455"!`, v)
	}
	if v := Itoa(0); v != "0" {
		t.Fatalf(`TestItoa(): Itoa result "%s" does not match the expected value "0"!`, v)
	}
}
func TestUitoa(t *testing.T) {
	if v := Uitoa(0); v != "0" {
		t.Fatalf(`TestUitoa(): Uitoa result "%s" does not match the expected value "0"!`, v)
	}
	if v := Uitoa(1337); v != "1337" {
		t.Fatalf(`TestUitoa(): Uitoa result "%s" does not match the expected value "1337"!`, v)
	}
	if v := Uitoa(18446744073709551615); v != "18446744073709551615" {
		t.Fatalf(`TestUitoa(): Uitoa result "%s" does not match the expected value "18446744073709551615"!`, v)
	}
}
func TestRandom(t *testing.T) {
	if a, b := Rand.Uint64(), Rand.Uint64(); a == b {
		t.Fatalf(`TestRandom(): Sequential Uint64 results "%d" and "%d" should not match!`, a, b)
	}
	for i := 0; i < 256; i++ {
		if v := Rand.Intn(10); v < 0 || v >= 10 {
			t.Fatalf(`TestRandom(): Intn result "%d" is outside the range "[0, 10)"!`, v)
		}
	}
}
