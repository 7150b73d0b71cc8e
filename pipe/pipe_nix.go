//go:build !windows
// +build !windows

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
	"context"

	"github.com/iDigitalFlame/anonpipe/util/xerr"
)

// ErrNoWindows is an error that is returned when a non-Windows device
// attempts to create an anonymous pipe pair.
var ErrNoWindows = xerr.Sub("only supported on Windows devices", 0xFA)

// conn is a stand-in for the Windows pipe end so the package keeps the same
// surface everywhere. None of these are ever creatable here, every creation
// function fails with 'ErrNoWindows' first.
type conn struct {
	_ [0]func()
}
type server struct {
	conn
}
type client struct {
	conn
}

func (conn) fd() uintptr {
	return 0
}
func (conn) detach() uintptr {
	return 0
}
func (conn) close() error {
	return nil
}
func (conn) flush() error {
	return ErrNoWindows
}
func (conn) shutdown() error {
	return ErrNoWindows
}
func (conn) read(_ []byte) (int, error) {
	return 0, ErrNoWindows
}
func (conn) write(_ []byte) (int, error) {
	return 0, ErrNoWindows
}
func (*server) connect(_ context.Context) error {
	return ErrNoWindows
}
func newServer(_ string, _, _ bool) (*server, error) {
	return nil, ErrNoWindows
}
func newClient(_ string, _ bool) (*client, error) {
	return nil, ErrNoWindows
}
func classify(_ error) uint8 {
	return resultFatal
}
