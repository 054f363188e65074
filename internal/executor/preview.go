package executor

import (
	"strings"

	"github.com/javiplav/terminal-command-menu/internal/sanitize"
)

// Summary is a short, human-readable account of what a command will do.
type Summary struct {
	Description string
	Risk        sanitize.RiskLevel
	RiskPattern string // Destructive pattern that matched, if any
}

// Preview describes cmd by its leading word and labels its risk.
func Preview(cmd string) Summary {
	level, pattern := sanitize.Risk(cmd)
	return Summary{
		Description: describe(cmd),
		Risk:        level,
		RiskPattern: pattern,
	}
}

func describe(cmd string) string {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return "Empty command"
	}
	rest := strings.Join(parts[1:], " ")

	switch parts[0] {
	case "cd":
		if rest == "" {
			rest = "~"
		}
		return "Change directory to: " + rest
	case "ls":
		if rest == "" {
			rest = "current directory"
		}
		return "List contents of: " + rest
	case "git":
		return operation("Git", rest)
	case "docker":
		return operation("Docker", rest)
	case "kubectl":
		return operation("Kubernetes", rest)
	case "npm":
		return operation("NPM", rest)
	case "yarn":
		return operation("Yarn", rest)
	case "pip":
		return operation("Pip", rest)
	default:
		return "Execute: " + strings.Join(parts, " ")
	}
}

func operation(tool, rest string) string {
	return strings.TrimSpace(tool + " operation: " + rest)
}
