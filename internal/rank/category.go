package rank

import "strings"

// Other is the category of commands whose leading token is not in the table.
const Other = "Other"

// categories maps each category key to its member tokens.
var categories = map[string][]string{
	"git":        {"git", "gco", "gst", "gaa", "gcm", "gp", "gl", "gh"},
	"docker":     {"docker", "docker-compose", "podman"},
	"kubernetes": {"kubectl", "k", "helm", "kustomize"},
	"npm":        {"npm", "yarn", "pnpm", "node"},
	"python":     {"python", "pip", "conda", "poetry", "pytest"},
	"system":     {"ls", "cd", "pwd", "mkdir", "rm", "cp", "mv", "find", "grep"},
	"editor":     {"vim", "nvim", "code", "nano", "emacs"},
}

// tokenCategory is the inverted table: member token -> label.
var tokenCategory = func() map[string]string {
	m := make(map[string]string)
	for key, members := range categories {
		label := categoryLabel(key)
		for _, token := range members {
			m[token] = label
		}
	}
	return m
}()

func categoryLabel(key string) string {
	return strings.ToUpper(key[:1]) + key[1:]
}

// Categorize classifies a normalized command by its leading token.
func Categorize(text string) string {
	if label, ok := tokenCategory[LeadingToken(text)]; ok {
		return label
	}
	return Other
}

// Categories returns every category label, including Other, sorted.
func Categories() []string {
	return []string{"Docker", "Editor", "Git", "Kubernetes", "Npm", Other, "Python", "System"}
}
