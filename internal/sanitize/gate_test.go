package sanitize

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate_Check(t *testing.T) {
	t.Parallel()

	gate := NewGate()
	tests := []struct {
		name    string
		command string
		allowed bool
		pattern string
	}{
		{name: "sudo rm root", command: "sudo rm -rf /", pattern: "rm -rf /"},
		{name: "chmod world writable", command: "chmod -R 777 /", pattern: "chmod -R 777 /"},
		{name: "wildcard delete", command: "rm -rf *", pattern: "rm -rf *"},
		{name: "privileged delete", command: "sudo rm -rf build", pattern: "sudo rm -rf"},
		{name: "format", command: "mkfs.ext4 /dev/sdb1", pattern: "mkfs."},
		{name: "raw copy", command: "dd if=/dev/zero of=/dev/sda", pattern: "dd if="},
		{name: "device redirect", command: "echo x > /dev/sda", pattern: "> /dev/"},
		{name: "chown recursive", command: "chown -R me:me .", pattern: "chown -R"},
		{name: "case insensitive", command: "RM -RF /", pattern: "rm -rf /"},
		{name: "safe push", command: "git push origin main", allowed: true},
		{name: "safe listing", command: "ls -la", allowed: true},
		{name: "single rm", command: "rm file.txt", allowed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := gate.Check(tt.command)
			assert.Equal(t, tt.allowed, v.Allowed)
			if tt.allowed {
				assert.Empty(t, v.Reason)
				return
			}
			assert.Equal(t, tt.pattern, v.Pattern)
			assert.Equal(t, "potentially dangerous command detected: "+tt.pattern, v.Reason)
		})
	}
}

func TestGate_EmptyCommandDenied(t *testing.T) {
	t.Parallel()

	for _, cmd := range []string{"", "   ", "\t\n"} {
		v := NewGate().Check(cmd)
		assert.False(t, v.Allowed)
		assert.Equal(t, ReasonEmpty, v.Reason)
	}
}

func TestGate_ExtraPatterns(t *testing.T) {
	t.Parallel()

	gate := NewGate("terraform destroy", "  ", "")
	v := gate.Check("Terraform Destroy -auto-approve")
	assert.False(t, v.Allowed)
	assert.Equal(t, "terraform destroy", v.Pattern)

	assert.True(t, gate.Check("terraform plan").Allowed)
	assert.False(t, gate.Check("sudo rm -rf /").Allowed)
}

func TestGate_ReasonKeepsListedSpelling(t *testing.T) {
	t.Parallel()

	gate := NewGate("Terraform Destroy")
	assert.Equal(t, "potentially dangerous command detected: chmod -R 777 /",
		gate.Check("CHMOD -r 777 /").Reason)
	assert.Equal(t, "Terraform Destroy", gate.Check("terraform destroy").Pattern)
}

func TestGate_CheckExpanded(t *testing.T) {
	t.Parallel()

	gate := NewGate()
	tests := []struct {
		name     string
		selected string
		expanded string
		allowed  bool
		text     string
		pattern  string
	}{
		{name: "flag added by alias", selected: "rm -rf /", expanded: "rm -i -rf /", text: "rm -rf /", pattern: "rm -rf /"},
		{name: "dd alias", selected: "dd if=/dev/zero of=/dev/sda", expanded: "dd status=progress if=/dev/zero of=/dev/sda", text: "dd if=/dev/zero of=/dev/sda", pattern: "dd if="},
		{name: "alias hides pattern", selected: "nuke", expanded: "rm -rf /", text: "rm -rf /", pattern: "rm -rf /"},
		{name: "both safe", selected: "gs", expanded: "git status", allowed: true, text: "git status"},
		{name: "empty", selected: " ", expanded: "", text: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v, text := gate.CheckExpanded(tt.selected, tt.expanded)
			assert.Equal(t, tt.allowed, v.Allowed)
			assert.Equal(t, tt.text, text)
			assert.Equal(t, tt.pattern, v.Pattern)
		})
	}
}

func TestDefaultDenyPatterns_ReturnsCopy(t *testing.T) {
	t.Parallel()

	patterns := DefaultDenyPatterns()
	require.Len(t, patterns, 8)
	patterns[0] = "mutated"
	assert.Equal(t, "rm -rf /", DefaultDenyPatterns()[0])
}

func TestVerdict_Err(t *testing.T) {
	t.Parallel()

	gate := NewGate()
	assert.NoError(t, gate.Check("git status").Err("git status"))

	err := gate.Check("sudo rm -rf /").Err("sudo rm -rf /")
	require.Error(t, err)

	var denied *DeniedError
	require.True(t, errors.As(err, &denied))
	assert.Equal(t, "sudo rm -rf /", denied.Command)
	assert.Equal(t, "command blocked: potentially dangerous command detected: rm -rf /", err.Error())
}
