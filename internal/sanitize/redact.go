package sanitize

import "regexp"

type secretPattern struct {
	regex       *regexp.Regexp
	replacement string
}

// secretPatterns are applied in order by Redact.
var secretPatterns = []secretPattern{
	{regexp.MustCompile(`AKIA[0-9A-Z]{16}`), "[AWS_ACCESS_KEY_REDACTED]"},
	{regexp.MustCompile(`(?i)(aws_secret_access_key|secret_access_key)\s*[=:]\s*\S+`), "$1=[AWS_SECRET_REDACTED]"},
	{regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`), "[JWT_REDACTED]"},
	{regexp.MustCompile(`xox[baprs]-[0-9a-zA-Z-]+`), "[SLACK_TOKEN_REDACTED]"},
	{regexp.MustCompile(`gh[pousr]_[A-Za-z0-9]{36}`), "[GITHUB_TOKEN_REDACTED]"},
	{regexp.MustCompile(`(?i)(password|passwd|token|secret|api_key|apikey)\s*[=:]\s*\S+`), "$1=[REDACTED]"},
	{regexp.MustCompile(`(?i)(--password|--token)\s+\S+`), "$1 [REDACTED]"},
	{regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9._-]{20,}`), "Bearer [TOKEN_REDACTED]"},
	{regexp.MustCompile(`(?i)basic\s+[A-Za-z0-9+/=]{20,}`), "Basic [CREDENTIALS_REDACTED]"},
	{regexp.MustCompile(`://([^:/\s]+):([^@/\s]+)@`), "://$1:[REDACTED]@"},
}

// Redact replaces secrets in s with placeholders. It is applied to
// commands before they reach log output.
func Redact(s string) string {
	if s == "" {
		return s
	}
	for _, p := range secretPatterns {
		s = p.regex.ReplaceAllString(s, p.replacement)
	}
	return s
}
