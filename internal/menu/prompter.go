package menu

import (
	"io"

	"github.com/chzyer/readline"
)

// Prompter reads one line of input at a time.
type Prompter interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

// NewReadline returns a readline-backed Prompter. Ctrl-C is reported as
// readline.ErrInterrupt and Ctrl-D as io.EOF. Input history is not kept.
func NewReadline(stdin io.ReadCloser, stdout io.Writer) (Prompter, error) {
	cfg := &readline.Config{
		Prompt:                 "> ",
		InterruptPrompt:        "^C",
		EOFPrompt:              "",
		HistoryLimit:           -1,
		DisableAutoSaveHistory: true,
	}
	if stdin != nil {
		cfg.Stdin = stdin
	}
	if stdout != nil {
		cfg.Stdout = stdout
	}
	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}
	return rl, nil
}
