// This file is part of Gopher2A03.
//
// Gopher2A03 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2A03 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2A03.  If not, see <https://www.gnu.org/licenses/>.

package hardware

import (
	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/debugger/govern"
)

// Sentinal error patterns.
const (
	UntilNotReached = "nes: address %04X not reached after %d steps"
)

// While the continueCheck() function only runs at the end of a CPU
// instruction it can still be expensive to do a full continue check every
// time.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called after every step and the emulation continues for as
// long as it returns govern.Running. A nil continueCheck function runs until
// an error occurs.
func (nes *NES) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running:
			_, err := nes.Step()
			if err != nil {
				return err
			}
		case govern.Paused:
			return nil
		default:
			return curated.Errorf("nes: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunFor executes the number of steps. Interrupt service counts as a step.
func (nes *NES) RunFor(steps int) error {
	for i := 0; i < steps; i++ {
		if _, err := nes.Step(); err != nil {
			return err
		}
	}
	return nil
}

// RunUntil executes until the PC is at the address. The instruction at the
// address is not executed. Returns an UntilNotReached error if the address
// has not been reached after limit steps. A limit of zero means no limit.
func (nes *NES) RunUntil(address uint16, limit int) error {
	for n := 0; limit <= 0 || n < limit; n++ {
		if nes.CPU.PC.Address() == address {
			return nil
		}
		if _, err := nes.Step(); err != nil {
			return err
		}
	}
	if nes.CPU.PC.Address() == address {
		return nil
	}
	return curated.Errorf(UntilNotReached, address, limit)
}
