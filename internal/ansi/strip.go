// Package ansi removes terminal escape sequences from captured output so that
// colored logs can be scanned, and maps positions in the cleaned text back to
// the raw bytes.
package ansi

type escState int

const (
	stateText escState = iota
	stateEscStart
	stateCSI
	// string-terminated sequences: OSC, DCS, SOS, PM, APC
	stateString
)

// Stripped is text with escape sequences removed.
type Stripped struct {
	Text []byte
	// offsets[i] is the raw index of Text[i]; the extra last entry is the raw
	// length.
	offsets []int
}

// Strip removes CSI, OSC, DCS, SOS, PM and APC sequences as well as
// two-byte escapes from raw. An unterminated sequence at the end of raw is
// dropped.
func Strip(raw []byte) Stripped {
	s := Stripped{
		Text:    make([]byte, 0, len(raw)),
		offsets: make([]int, 0, len(raw)+1),
	}
	state := stateText
	osc := false
	inST := false
	for i, b := range raw {
		switch state {
		case stateText:
			if b == 0x1b {
				state = stateEscStart
				continue
			}
			s.Text = append(s.Text, b)
			s.offsets = append(s.offsets, i)
		case stateEscStart:
			osc = false
			switch b {
			case '[':
				state = stateCSI
			case ']':
				state, osc = stateString, true
			case 'P', 'X', '^', '_':
				state = stateString
			default:
				state = stateText
			}
		case stateCSI:
			if b >= 0x40 && b <= 0x7e {
				state = stateText
			}
		case stateString:
			switch {
			case osc && b == 0x07: // BEL
				state = stateText
			case inST:
				inST = false
				if b == '\\' {
					state = stateText
				}
			case b == 0x1b:
				inST = true
			}
		}
	}
	s.offsets = append(s.offsets, len(raw))
	return s
}

// Changed reports whether any bytes were removed.
func (s Stripped) Changed() bool {
	return s.offsets[len(s.offsets)-1] != len(s.Text)
}

// Raw maps the half-open range [start, end) of Text to the raw range that
// covers the same characters, including any escapes between them.
func (s Stripped) Raw(start, end int) (int, int) {
	if end <= start {
		return s.offsets[start], s.offsets[start]
	}
	return s.offsets[start], s.offsets[end-1] + 1
}
