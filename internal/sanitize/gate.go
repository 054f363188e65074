// Package sanitize decides whether a command may run, labels how risky it
// looks, and redacts secrets from text before it is logged.
package sanitize

import (
	"fmt"
	"strings"
)

// ReasonEmpty is the denial reason for empty or whitespace-only commands.
const ReasonEmpty = "empty command"

// defaultDenyPatterns are matched case-insensitively as substrings.
// Matching is advisory: indirection and variable expansion defeat it.
var defaultDenyPatterns = []string{
	"rm -rf /",       // full-filesystem recursive delete
	"rm -rf *",       // wildcard recursive delete
	"sudo rm -rf",    // privileged recursive delete
	"mkfs.",          // filesystem format
	"dd if=",         // raw block-device copy
	"> /dev/",        // redirection into a device file
	"chmod -R 777 /", // recursive world-writable permissions
	"chown -R",       // recursive ownership change
}

// DefaultDenyPatterns returns a copy of the built-in deny-list.
func DefaultDenyPatterns() []string {
	return append([]string(nil), defaultDenyPatterns...)
}

// Verdict is the outcome of a safety check.
type Verdict struct {
	Allowed bool
	Reason  string // Empty when allowed
	Pattern string // Deny-list entry that matched, if any
}

// Gate blocks commands matching a deny-list before execution.
type Gate struct {
	patterns []denyPattern
}

type denyPattern struct {
	text  string // as listed, used in denial reasons
	lower string
}

// NewGate creates a Gate with the built-in deny-list plus extra patterns.
// Blank extra patterns are ignored.
func NewGate(extra ...string) *Gate {
	g := &Gate{}
	for _, p := range append(DefaultDenyPatterns(), extra...) {
		if strings.TrimSpace(p) == "" {
			continue
		}
		g.patterns = append(g.patterns, denyPattern{text: p, lower: strings.ToLower(p)})
	}
	return g
}

// Check reports whether cmd may run. Empty commands are always denied.
func (g *Gate) Check(cmd string) Verdict {
	lower := strings.ToLower(strings.TrimSpace(cmd))
	if lower == "" {
		return Verdict{Reason: ReasonEmpty}
	}
	for _, pat := range g.patterns {
		if strings.Contains(lower, pat.lower) {
			return Verdict{
				Reason:  "potentially dangerous command detected: " + pat.text,
				Pattern: pat.text,
			}
		}
	}
	return Verdict{Allowed: true}
}

// CheckExpanded checks a command both as selected and after alias
// expansion; a match in either denies it. Aliases that add flags
// (rm='rm -i') would otherwise hide a listed pattern. The returned
// string is the text the verdict applies to.
func (g *Gate) CheckExpanded(selected, expanded string) (Verdict, string) {
	if v := g.Check(selected); !v.Allowed {
		return v, strings.TrimSpace(selected)
	}
	return g.Check(expanded), expanded
}

// Err returns nil for an allowed verdict, otherwise a *DeniedError for cmd.
func (v Verdict) Err(cmd string) error {
	if v.Allowed {
		return nil
	}
	return &DeniedError{Command: cmd, Reason: v.Reason}
}

// DeniedError reports a command the Gate refused to run.
type DeniedError struct {
	Command string
	Reason  string
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("command blocked: %s", e.Reason)
}
