package sanitize

import (
	"regexp"
	"strings"
)

// RiskLevel labels how risky a command looks. It is shown to the user
// before confirmation and never blocks anything on its own.
type RiskLevel string

const (
	RiskSafe        RiskLevel = "safe"
	RiskDestructive RiskLevel = "destructive"
)

type riskPattern struct {
	name    string
	pattern *regexp.Regexp
}

var destructivePatterns = []riskPattern{
	// File deletion
	{name: "rm -rf", pattern: regexp.MustCompile(`\brm\s+(-[a-zA-Z]*r[a-zA-Z]*f|--recursive\s+--force|-[a-zA-Z]*f[a-zA-Z]*r)\b`)},
	{name: "rm -r", pattern: regexp.MustCompile(`\brm\s+-[a-zA-Z]*r\b`)},
	{name: "rm -f", pattern: regexp.MustCompile(`\brm\s+-[a-zA-Z]*f\b`)},
	{name: "rmdir", pattern: regexp.MustCompile(`\brmdir\b`)},

	// SQL
	{name: "DROP TABLE", pattern: regexp.MustCompile(`(?i)\bDROP\s+(TABLE|DATABASE)\b`)},
	{name: "TRUNCATE", pattern: regexp.MustCompile(`(?i)\bTRUNCATE\b`)},
	{name: "DELETE FROM", pattern: regexp.MustCompile(`(?i)\bDELETE\s+FROM\b`)},

	// Git
	{name: "git force push", pattern: regexp.MustCompile(`\bgit\s+push\s+.*(-f\b|--force)`)},
	{name: "git reset --hard", pattern: regexp.MustCompile(`\bgit\s+reset\s+--hard\b`)},
	{name: "git clean", pattern: regexp.MustCompile(`\bgit\s+clean\s+-[a-zA-Z]*[fd]`)},
	{name: "git checkout .", pattern: regexp.MustCompile(`\bgit\s+checkout\s+\.`)},

	// Permissions
	{name: "chmod 777", pattern: regexp.MustCompile(`\bchmod\s+(-[a-zA-Z]+\s+)?777\b`)},
	{name: "chmod -R", pattern: regexp.MustCompile(`\bchmod\s+-[a-zA-Z]*R\b`)},
	{name: "chown -R", pattern: regexp.MustCompile(`\bchown\s+-[a-zA-Z]*R\b`)},

	// Disks
	{name: "write to device", pattern: regexp.MustCompile(`>\s*/dev/(sd|hd|nvme|vd|xvd|disk)`)},
	{name: "dd to device", pattern: regexp.MustCompile(`\bdd\s+.*of=/dev/`)},
	{name: "mkfs", pattern: regexp.MustCompile(`\bmkfs\b`)},
	{name: "fdisk", pattern: regexp.MustCompile(`\bfdisk\b`)},

	// System
	{name: "shutdown", pattern: regexp.MustCompile(`\b(shutdown|reboot|halt|poweroff)\b`)},
	{name: "systemctl stop", pattern: regexp.MustCompile(`\bsystemctl\s+(stop|disable)\b`)},
	{name: "kill -9", pattern: regexp.MustCompile(`\bkill\s+-9\b`)},
	{name: "killall", pattern: regexp.MustCompile(`\b(killall|pkill)\b`)},

	// Packages
	{name: "package removal", pattern: regexp.MustCompile(`\b(apt|apt-get)\s+(remove|purge)\b|\bbrew\s+uninstall\b|\bpip\s+uninstall\b`)},

	// Containers
	{name: "docker rm -f", pattern: regexp.MustCompile(`\bdocker\s+(rm|container\s+rm)\s+-[a-zA-Z]*f\b`)},
	{name: "docker prune", pattern: regexp.MustCompile(`\bdocker\s+(system|volume|image)\s+prune\b`)},
	{name: "kubectl delete", pattern: regexp.MustCompile(`\bkubectl\s+delete\b`)},
}

// Risk labels cmd and names the first destructive pattern it matches.
func Risk(cmd string) (RiskLevel, string) {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return RiskSafe, ""
	}
	for _, p := range destructivePatterns {
		if p.pattern.MatchString(cmd) {
			return RiskDestructive, p.name
		}
	}
	return RiskSafe, ""
}

// IsDestructive reports whether cmd matches any destructive pattern.
func IsDestructive(cmd string) bool {
	level, _ := Risk(cmd)
	return level == RiskDestructive
}
