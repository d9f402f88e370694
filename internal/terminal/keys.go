package terminal

import "bufio"

// Key is a decoded keypress.
type Key int

const (
	// KeyOther is any key the prompts do not react to.
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyEnter
	// KeyInterrupt is Ctrl+C delivered as a byte in raw mode.
	KeyInterrupt
)

const (
	esc       = 0x1b
	ctrlC     = 0x03
	carriage  = '\r'
	lineFeed  = '\n'
	csiPrefix = '['
	ss3Prefix = 'O'
)

// String returns a readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEnter:
		return "enter"
	case KeyInterrupt:
		return "interrupt"
	default:
		return "other"
	}
}

// ReadKey reads and decodes one keypress from r.
//
// Escape sequences are consumed whole so that a single press never yields
// more than one Key. Only bytes already buffered are considered part of a
// sequence; a lone ESC does not block waiting for more input.
func ReadKey(r *bufio.Reader) (Key, error) {
	b, err := r.ReadByte()
	if err != nil {
		return KeyOther, err
	}

	switch b {
	case carriage, lineFeed:
		return KeyEnter, nil
	case ctrlC:
		return KeyInterrupt, nil
	case esc:
		return readEscape(r), nil
	default:
		return KeyOther, nil
	}
}

func readEscape(r *bufio.Reader) Key {
	if r.Buffered() == 0 {
		return KeyOther
	}
	prefix, _ := r.ReadByte()
	if prefix != csiPrefix && prefix != ss3Prefix {
		return KeyOther
	}

	// Parameters and intermediates run until a final byte in 0x40..0x7e.
	for r.Buffered() > 0 {
		c, _ := r.ReadByte()
		if c < 0x40 || c > 0x7e {
			continue
		}
		switch c {
		case 'A':
			return KeyUp
		case 'B':
			return KeyDown
		default:
			return KeyOther
		}
	}
	return KeyOther
}
