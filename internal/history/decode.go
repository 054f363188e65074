package history

import (
	"bytes"
	"strconv"
	"strings"
	"time"
)

// Entry is one recorded invocation decoded from a history file.
type Entry struct {
	Command   string
	Timestamp time.Time // Zero value if the dialect carries no timestamp
}

// decoders maps each shell kind to its dialect. Every dialect receives the
// file one line at a time, already converted to valid UTF-8.
var decoders = map[ShellKind]func(lines []string) []Entry{
	Zsh:  decodeZsh,
	Bash: decodeBash,
	Fish: decodeFish,
}

// Decode extracts one command string per recorded entry from raw history
// file contents. Undecodable bytes are replaced line by line, so a corrupted
// line never affects its neighbours. Unknown kinds decode to nothing.
func Decode(kind ShellKind, data []byte) []Entry {
	decode, ok := decoders[kind]
	if !ok || len(data) == 0 {
		return nil
	}
	return decode(splitLines(data))
}

// splitLines splits data on '\n' and converts each line to lossy UTF-8.
// Lines are not length-limited.
func splitLines(data []byte) []string {
	raw := bytes.Split(data, []byte{'\n'})
	if n := len(raw); n > 0 && len(raw[n-1]) == 0 {
		raw = raw[:n-1]
	}
	lines := make([]string, len(raw))
	for i, line := range raw {
		lines[i] = ToLossyUTF8(bytes.TrimSuffix(line, []byte{'\r'}))
	}
	return lines
}

// decodeZsh handles `: <timestamp>:<duration>;<command>` lines. Lines that
// do not start with ':' are commands verbatim, which covers files written
// without EXTENDED_HISTORY.
func decodeZsh(lines []string) []Entry {
	var entries []Entry
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, ":") {
			entries = append(entries, Entry{Command: line})
			continue
		}
		idx := strings.IndexByte(line, ';')
		if idx == -1 {
			continue
		}
		entries = append(entries, Entry{
			Command:   strings.TrimSpace(line[idx+1:]),
			Timestamp: parseZshTimestamp(line[1:idx]),
		})
	}
	return entries
}

// parseZshTimestamp parses the " <ts>:<dur>" metadata of an extended line.
func parseZshTimestamp(meta string) time.Time {
	meta = strings.TrimSpace(meta)
	if colonIdx := strings.IndexByte(meta, ':'); colonIdx != -1 {
		meta = meta[:colonIdx]
	}
	return parseUnix(meta)
}

// decodeBash treats each non-comment line as one command. With
// HISTTIMEFORMAT set, bash writes `#<unix_ts>` before each command; those
// lines become the timestamp of the following command.
func decodeBash(lines []string) []Entry {
	var entries []Entry
	var pending time.Time
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			if ts := parseUnix(line[1:]); !ts.IsZero() {
				pending = ts
			}
			continue
		}
		entries = append(entries, Entry{Command: line, Timestamp: pending})
		pending = time.Time{}
	}
	return entries
}

// decodeFish handles the pseudo-YAML fish history:
//
//   - cmd: <command>
//     when: <unix_timestamp>
//     paths:
//   - <path>
func decodeFish(lines []string) []Entry {
	p := &fishDecoder{}
	for _, line := range lines {
		p.decodeLine(strings.TrimSpace(line))
	}
	return p.finish()
}

type fishDecoder struct {
	entries []Entry
	current string
	open    bool
}

func (p *fishDecoder) decodeLine(line string) {
	switch {
	case strings.HasPrefix(line, "- cmd:"):
		p.flush(time.Time{})
		p.current = strings.TrimSpace(strings.TrimPrefix(line, "- cmd:"))
		p.open = true
	case strings.HasPrefix(line, "when:"):
		p.flush(parseUnix(strings.TrimPrefix(line, "when:")))
	case strings.HasPrefix(line, "- when:"):
		p.flush(parseUnix(strings.TrimPrefix(line, "- when:")))
	}
}

// flush emits the open command, if any.
func (p *fishDecoder) flush(ts time.Time) {
	if !p.open {
		return
	}
	if p.current != "" {
		p.entries = append(p.entries, Entry{Command: p.current, Timestamp: ts})
	}
	p.current = ""
	p.open = false
}

func (p *fishDecoder) finish() []Entry {
	p.flush(time.Time{})
	return p.entries
}

// parseUnix parses a decimal unix timestamp, returning the zero time when
// s is not one.
func parseUnix(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	ts, err := strconv.ParseInt(s, 10, 64)
	if err != nil || ts <= 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0)
}
