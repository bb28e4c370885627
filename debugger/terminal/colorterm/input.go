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

package colorterm

import (
	"bufio"
	"os"
	"unicode"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/debugger/terminal"
	"github.com/jetsetilly/gopher2a03/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/gopher2a03/debugger/terminal/colorterm/easyterm/ansi"
)

type readRune struct {
	r   rune
	err error
}

// runeReader reads from the input file in its own goroutine so that
// TermRead() can also wait on interrupt events.
type runeReader struct {
	ch chan readRune
}

func initRuneReader(input *os.File) runeReader {
	rr := runeReader{ch: make(chan readRune)}
	go func() {
		b := bufio.NewReader(input)
		for {
			r, _, err := b.ReadRune()
			rr.ch <- readRune{r: r, err: err}
			if err != nil {
				return
			}
		}
	}()
	return rr
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(input []byte, prompt terminal.Prompt, events *terminal.ReadEvents) (int, error) {
	if ct.silenced {
		return 0, nil
	}

	ct.EasyTerm.CBreakMode()
	defer ct.EasyTerm.CanonicalMode()

	if ct.tabCompletion != nil {
		ct.tabCompletion.Reset()
	}

	var intEvents chan os.Signal
	if events != nil {
		intEvents = events.IntEvents
	}

	p := prompt.String()

	n := 0
	cursor := 0
	history := len(ct.commandHistory)

	// buffInput is used to store the latest input when we scroll through
	// history - we don't want to lose what we've typed in case the user wants
	// to resume where we left off
	buffInput := make([]byte, cap(input))
	buffN := 0

	// the method for cursor placement is as follows:
	//	1. for each iteration in the loop
	//		2. store current cursor position
	//		3. clear the current line
	//		4. output the prompt
	//		5. output the input buffer
	//		6. restore the cursor position
	//
	// for this to work we need to place the cursor in it's initial position
	ct.EasyTerm.TermPrint("\r")
	ct.EasyTerm.TermPrint(ansi.CursorMove(len(p)))

	for {
		ct.EasyTerm.TermPrint(ansi.CursorStore)
		ct.EasyTerm.TermPrint(ansi.ClearLine)
		ct.EasyTerm.TermPrint("\r")
		ct.EasyTerm.TermPrint(ansi.PenStyles["bold"])
		ct.EasyTerm.TermPrint(p)
		ct.EasyTerm.TermPrint(ansi.NormalPen)
		ct.EasyTerm.TermPrint(string(input[:n]))
		ct.EasyTerm.TermPrint(ansi.CursorRestore)

		var rr readRune
		select {
		case rr = <-ct.reader.ch:
		case <-intEvents:
			ct.EasyTerm.TermPrint("\n")
			return 0, curated.Errorf(terminal.UserInterrupt)
		}

		if rr.err != nil {
			return n, rr.err
		}

		switch rr.r {
		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				s := ct.tabCompletion.Complete(string(input[:cursor]))

				// the difference in the length of the new input and the old
				// input
				d := len(s) - cursor

				if n+d < len(input) {
					// append everything after the cursor to the new string
					// and copy into input array
					s += string(input[cursor:n])
					copy(input, []byte(s))

					// advance cursor to end of completed word
					ct.EasyTerm.TermPrint(ansi.CursorMove(d))
					cursor += d
					n += d
				}
			}

		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\n")
			return 0, curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeySuspend:
			easyterm.SuspendProcess()

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			ct.addHistory(input[:n])
			ct.EasyTerm.TermPrint("\n")
			return n, nil

		case easyterm.KeyEsc:
			rr = <-ct.reader.ch
			if rr.err != nil {
				return n, rr.err
			}
			if rr.r != easyterm.EscCursor {
				break // switch
			}

			rr = <-ct.reader.ch
			if rr.err != nil {
				return n, rr.err
			}

			switch rr.r {
			case easyterm.CursorUp:
				// move up through command history
				if len(ct.commandHistory) > 0 {
					// if we're at the end of the command history then store
					// the current input in buffInput for possible later editing
					if history == len(ct.commandHistory) {
						copy(buffInput, input[:n])
						buffN = n
					}

					if history > 0 {
						history--
						n = copy(input, ct.commandHistory[history].input)
						ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
						cursor = n
					}
				}

			case easyterm.CursorDown:
				// move down through command history
				if history < len(ct.commandHistory)-1 {
					history++
					n = copy(input, ct.commandHistory[history].input)
					ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
					cursor = n
				} else if history == len(ct.commandHistory)-1 {
					history++
					n = copy(input, buffInput[:buffN])
					ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
					cursor = n
				}

			case easyterm.CursorForward:
				if cursor < n {
					ct.EasyTerm.TermPrint(ansi.CursorForwardOne)
					cursor++
				}

			case easyterm.CursorBackward:
				if cursor > 0 {
					ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
					cursor--
				}

			case easyterm.EscDelete:
				// the delete key sends a trailing tilde
				<-ct.reader.ch
				if cursor < n {
					copy(input[cursor:], input[cursor+1:n])
					n--
					history = len(ct.commandHistory)
				}
			}

		case easyterm.KeyBackspace, easyterm.KeyCtrlH:
			if cursor > 0 {
				copy(input[cursor-1:], input[cursor:n])
				ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
				cursor--
				n--
				history = len(ct.commandHistory)
			}

		default:
			// input is limited to printable ASCII so that the cursor position
			// and the byte position are always the same
			if rr.r < unicode.MaxASCII && unicode.IsPrint(rr.r) && n < len(input)-1 {
				ct.EasyTerm.TermPrint(string(rr.r))
				copy(input[cursor+1:], input[cursor:n])
				input[cursor] = byte(rr.r)
				cursor++
				n++
				history = len(ct.commandHistory)
			}
		}
	}
}

// addHistory appends the input to the command history unless it is empty or
// the same as the most recent entry.
func (ct *ColorTerminal) addHistory(input []byte) {
	if len(input) == 0 {
		return
	}
	if len(ct.commandHistory) > 0 {
		if string(ct.commandHistory[len(ct.commandHistory)-1].input) == string(input) {
			return
		}
	}
	nh := make([]byte, len(input))
	copy(nh, input)
	ct.commandHistory = append(ct.commandHistory, command{input: nh})
}
