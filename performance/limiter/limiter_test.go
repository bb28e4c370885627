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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher2a03/performance/limiter"
	"github.com/jetsetilly/gopher2a03/test"
)

func TestLimiter(t *testing.T) {
	lim := limiter.NewLimiter(100)
	defer lim.Stop()

	// the first tick is immediate
	lim.Wait()

	start := time.Now()
	for i := 0; i < 10; i++ {
		lim.Wait()
	}
	elapsed := time.Since(start)

	// ten ticks at 100Hz should take roughly 100ms
	test.ExpectSuccess(t, elapsed >= 50*time.Millisecond, elapsed)
	test.ExpectSuccess(t, elapsed < time.Second, elapsed)
}
