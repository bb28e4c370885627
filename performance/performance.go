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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/debugger/govern"
	"github.com/jetsetilly/gopher2a03/hardware"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// the emulation runs for this period before measurement begins.
var leadTime = 2 * time.Second

// Check the performance of the emulator by running the NES for the specified
// duration. The NES should have a cartridge attached.
//
// A cpu, memory or trace profile (or a combination of those) will be created
// as defined by the Profile argument.
func Check(output io.Writer, profile Profile, nes *hardware.NES, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}

	var startCycles uint64
	var startInstructions int

	runner := func() error {
		// signals false when the lead time has elapsed and true when the
		// measurement period has finished
		timerChan := make(chan bool, 1)

		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		// only check for end of measurement period every PerformanceBrake CPU
		// instructions
		performanceBrake := 0

		return nes.Run(func() (govern.State, error) {
			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0

				select {
				case v := <-timerChan:
					if v {
						return govern.Ending, timedOut
					}
					startCycles = nes.CPU.Cycles()
					startInstructions = nes.Instructions
				default:
				}
			}
			return govern.Running, nil
		})
	}

	// errors from the emulation are returned as they are
	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return err
	}

	cycles := nes.CPU.Cycles() - startCycles
	instructions := nes.Instructions - startInstructions

	mhz, accuracy := CalcSpeed(cycles, dur.Seconds())
	_, err = io.WriteString(output, fmt.Sprintf("%.2f MHz (%d instructions, %d cycles in %.2f seconds) %.1f%%\n",
		mhz, instructions, cycles, dur.Seconds(), accuracy))

	return err
}
