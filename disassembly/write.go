// This file is part of Gopherdmg.
//
// Gopherdmg is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherdmg is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherdmg.  If not, see <https://www.gnu.org/licenses/>.

package disassembly

import (
	"fmt"
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	Cycles   bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) {
	for _, e := range dsm.Entries {
		dsm.WriteLine(output, attr, e)
	}
}

// WriteLine writes a single Entry to io.Writer.
func (dsm *Disassembly) WriteLine(output io.Writer, attr WriteAttr, e Entry) {
	s := strings.Builder{}

	s.WriteString(fmt.Sprintf("%04x ", e.Address))

	if attr.ByteCode {
		b := make([]string, len(e.Bytecode))
		for i, v := range e.Bytecode {
			b[i] = fmt.Sprintf("%02x", v)
		}
		s.WriteString(fmt.Sprintf("%-9s ", strings.Join(b, " ")))
	}

	if attr.Cycles {
		s.WriteString(fmt.Sprintf("%-18s %s", e.Operator(), e.Cycles()))
	} else {
		s.WriteString(e.Operator())
	}

	s.WriteString("\n")
	output.Write([]byte(s.String()))
}
