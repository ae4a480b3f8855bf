package domain

import "strings"

// ExtractCommand picks the literal command out of a model reply.
//
// It returns the first non-blank line that is not a ``` fence marker, with one
// pair of surrounding backticks removed. Multi-line commands are not
// reassembled; only the first line is returned.
func ExtractCommand(reply string) string {
	lines := splitLines(reply)
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "```") {
			continue
		}
		if len(line) > 2 && strings.HasPrefix(line, "`") && strings.HasSuffix(line, "`") {
			line = line[1 : len(line)-1]
		}
		return strings.TrimSpace(line)
	}
	if len(lines) > 0 {
		return strings.TrimSpace(lines[0])
	}
	return strings.TrimSpace(reply)
}

// splitLines splits on \n, \r\n and \r and drops a trailing empty line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
