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

package pipe

import (
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/iDigitalFlame/anonpipe/util/xerr"
)

var (
	errTaken   = xerr.Sub("name already taken", 0x10)
	errNoLocal = xerr.Sub("local-only restriction refused", 0x11)
	errBroken  = xerr.Sub("something else entirely", 0x12)
)

func sortTest(err error) uint8 {
	switch err {
	case errTaken:
		return resultAgain
	case errNoLocal:
		return resultFree
	}
	return resultFatal
}
func TestName(t *testing.T) {
	n := name()
	if !strings.HasPrefix(n, prefix) {
		t.Fatalf(`TestName(): Name "%s" does not start with the expected namespace prefix!`, n)
	}
	v := strings.Split(n[len(prefix):], ".")
	if len(v) != 2 {
		t.Fatalf(`TestName(): Name "%s" does not have two dot separated fields!`, n)
	}
	p, err := strconv.ParseUint(v[0], 10, 64)
	if err != nil {
		t.Fatalf(`TestName(): Name PID field "%s" failed to parse with error: %s!`, v[0], err.Error())
	}
	if p != uint64(os.Getpid()) {
		t.Fatalf(`TestName(): Name PID field "%d" does not match the process PID "%d"!`, p, os.Getpid())
	}
	if _, err = strconv.ParseUint(v[1], 10, 64); err != nil {
		t.Fatalf(`TestName(): Name random field "%s" failed to parse with error: %s!`, v[1], err.Error())
	}
	if n == name() {
		t.Fatalf(`TestName(): Sequential names "%s" should not match!`, n)
	}
}
func TestEstablish(t *testing.T) {
	var c int
	f := func(n string, reject, _ bool) (*server, error) {
		if len(n) == 0 {
			t.Fatalf("TestEstablish(): Created with an empty name!")
		}
		if !reject {
			t.Fatalf("TestEstablish(): Created with the local-only restriction disabled!")
		}
		if c++; c < 3 {
			return nil, errTaken
		}
		return new(server), nil
	}
	n, s, err := establish(f, sortTest, false)
	if err != nil {
		t.Fatalf("TestEstablish(): Establish failed with error: %s!", err.Error())
	}
	if s == nil || len(n) == 0 {
		t.Fatalf("TestEstablish(): Establish returned an empty endpoint or name!")
	}
	if c != 3 {
		t.Fatalf(`TestEstablish(): Create count "%d" does not match the expected value "3"!`, c)
	}
}
func TestEstablishCollision(t *testing.T) {
	var (
		c int
		u = make(map[string]bool, limit)
	)
	f := func(n string, _, _ bool) (*server, error) {
		c++
		u[n] = true
		return nil, errTaken
	}
	if _, _, err := establish(f, sortTest, false); err != errTaken {
		t.Fatalf(`TestEstablishCollision(): Establish error "%s" does not match the last creation error!`, err)
	}
	if c != limit {
		t.Fatalf(`TestEstablishCollision(): Create count "%d" does not match the attempt budget "%d"!`, c, limit)
	}
	if len(u) != limit {
		t.Fatalf(`TestEstablishCollision(): Only "%d" unique names were tried across "%d" attempts!`, len(u), limit)
	}
}
func TestEstablishRestriction(t *testing.T) {
	var c int
	f := func(_ string, reject, _ bool) (*server, error) {
		if c++; c == 1 {
			if !reject {
				t.Fatalf("TestEstablishRestriction(): First create should have the local-only restriction enabled!")
			}
			return nil, errNoLocal
		}
		if reject {
			t.Fatalf("TestEstablishRestriction(): Create after the restriction fallback should have it disabled!")
		}
		return nil, errTaken
	}
	if _, _, err := establish(f, sortTest, false); err != errTaken {
		t.Fatalf(`TestEstablishRestriction(): Establish error "%s" does not match the last creation error!`, err)
	}
	if c != limit+1 {
		t.Fatalf(`TestEstablishRestriction(): Create count "%d" shows the restriction fallback consumed budget!`, c)
	}
}
func TestEstablishRestrictionOnce(t *testing.T) {
	var c int
	f := func(_ string, _, _ bool) (*server, error) {
		c++
		return nil, errNoLocal
	}
	if _, _, err := establish(f, sortTest, false); err != errNoLocal {
		t.Fatalf(`TestEstablishRestrictionOnce(): Establish error "%s" does not match the creation error!`, err)
	}
	if c != 2 {
		t.Fatalf(`TestEstablishRestrictionOnce(): Create count "%d" does not match the expected value "2"!`, c)
	}
}
func TestEstablishFatal(t *testing.T) {
	var c int
	f := func(_ string, _, _ bool) (*server, error) {
		c++
		return nil, errBroken
	}
	if _, _, err := establish(f, sortTest, false); err != errBroken {
		t.Fatalf(`TestEstablishFatal(): Establish error "%s" does not match the creation error!`, err)
	}
	if c != 1 {
		t.Fatalf(`TestEstablishFatal(): Create count "%d" does not match the expected value "1"!`, c)
	}
}
