package alias

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/javiplav/terminal-command-menu/internal/history"
)

// --- bash ---

func TestParseBash_Simple(t *testing.T) {
	output := `alias gs='git status'
alias ll='ls -la'
alias gp='git push'
`
	aliases := Parse(history.Bash, output)
	assert.Equal(t, Table{"gs": "git status", "ll": "ls -la", "gp": "git push"}, aliases)
}

func TestParseBash_DoubleQuoted(t *testing.T) {
	aliases := Parse(history.Bash, `alias gs="git status"`+"\n")
	assert.Equal(t, "git status", aliases["gs"])
}

func TestParseBash_EscapedSingleQuote(t *testing.T) {
	aliases := Parse(history.Bash, `alias hi='echo '\''hello'\'''`+"\n")
	assert.Equal(t, "echo 'hello'", aliases["hi"])
}

func TestParseBash_WithSpecialChars(t *testing.T) {
	output := `alias grep='grep --color=auto'
alias la='ls -A'
`
	aliases := Parse(history.Bash, output)
	assert.Equal(t, "grep --color=auto", aliases["grep"])
	assert.Equal(t, "ls -A", aliases["la"])
}

func TestParseBash_SkipsNoise(t *testing.T) {
	output := `bash: cannot set terminal process group (-1): Inappropriate ioctl for device
some random output
alias broken
alias gs='git status'
`
	aliases := Parse(history.Bash, output)
	assert.Equal(t, Table{"gs": "git status"}, aliases)
}

func TestParseBash_UnbalancedQuoteFallsBack(t *testing.T) {
	aliases := Parse(history.Bash, `alias x='it's'`+"\n")
	assert.Equal(t, "it's", aliases["x"])
}

func TestParseBash_EmptyOutput(t *testing.T) {
	assert.Empty(t, Parse(history.Bash, ""))
}

// --- zsh ---

func TestParseZsh_AliasL(t *testing.T) {
	output := `alias gco='git checkout'
alias k=kubectl
alias -g G='| grep'
alias -s txt=vim
alias -- -='cd -'
`
	aliases := Parse(history.Zsh, output)
	assert.Equal(t, "git checkout", aliases["gco"])
	assert.Equal(t, "kubectl", aliases["k"])
	assert.Equal(t, "| grep", aliases["G"])
	assert.Equal(t, "cd -", aliases["-"])
	assert.NotContains(t, aliases, "txt")
}

func TestParseZsh_WithoutKeyword(t *testing.T) {
	output := `gs='git status'
ll=ls
`
	aliases := Parse(history.Zsh, output)
	assert.Equal(t, Table{"gs": "git status", "ll": "ls"}, aliases)
}

// --- fish ---

func TestParseFish_AliasesAndAbbreviations(t *testing.T) {
	output := `alias ll 'ls -la'
alias k kubectl
abbr -a -- gco git checkout
abbr -a --position anywhere -- L '| less'
abbr gs git status
`
	aliases := Parse(history.Fish, output)
	assert.Equal(t, "ls -la", aliases["ll"])
	assert.Equal(t, "kubectl", aliases["k"])
	assert.Equal(t, "git checkout", aliases["gco"])
	assert.Equal(t, "| less", aliases["L"])
	assert.Equal(t, "git status", aliases["gs"])
}

func TestParseFish_SkipsIncomplete(t *testing.T) {
	output := `alias lonely
abbr
Welcome to fish
`
	assert.Empty(t, Parse(history.Fish, output))
}

func TestParse_UnknownShell(t *testing.T) {
	aliases := Parse(history.ShellKind("tcsh"), "alias gs='git status'")
	assert.NotNil(t, aliases)
	assert.Empty(t, aliases)
}

func TestSplitFirstWord(t *testing.T) {
	tests := []struct {
		input     string
		wantFirst string
		wantRest  string
	}{
		{input: "gs git status", wantFirst: "gs", wantRest: "git status"},
		{input: "single", wantFirst: "single", wantRest: ""},
		{input: "  spaced   out  ", wantFirst: "spaced", wantRest: "out"},
		{input: "", wantFirst: "", wantRest: ""},
	}
	for _, tt := range tests {
		first, rest := splitFirstWord(tt.input)
		assert.Equal(t, tt.wantFirst, first)
		assert.Equal(t, tt.wantRest, rest)
	}
}
