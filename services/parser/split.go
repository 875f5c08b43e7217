package parser

import "bytes"

// SplitCommands is a bufio.SplitFunc yielding one command per token.
// Commands end at a newline or at a ';' outside double quotes. Tokens are
// returned without the terminator and may be blank.
func SplitCommands(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	inQuote := false
	for i, b := range data {
		switch {
		case b == '"':
			inQuote = !inQuote
		case b == '\n':
			return i + 1, bytes.TrimSuffix(data[:i], []byte{'\r'}), nil
		case b == ';' && !inQuote:
			return i + 1, data[:i], nil
		}
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
