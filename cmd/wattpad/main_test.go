package main

import (
	"testing"

	"github.com/alecthomas/kong"
)

func TestCLIParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"user", []string{"user", "alice"}, "user <username>"},
		{"story", []string{"story", "42"}, "story <id>"},
		{"story brief", []string{"story", "42", "--brief"}, "story <id>"},
		{"part", []string{"part", "101"}, "part <id>"},
		{"text", []string{"text", "101", "--json"}, "text <part-id>"},
		{"archive", []string{"archive", "42", "-o", "out.zip"}, "archive <story-id>"},
		{"login check", []string{"login-check"}, "login-check"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli := &CLI{}
			parser, err := kong.New(cli, kong.Name("wattpad"))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			ctx, err := parser.Parse(tt.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := ctx.Command(); got != tt.want {
				t.Errorf("expected command %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCLIParseRejectsUnknownCommand(t *testing.T) {
	cli := &CLI{}
	parser, err := kong.New(cli, kong.Name("wattpad"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := parser.Parse([]string{"frobnicate"}); err == nil {
		t.Error("expected an unknown command to fail parsing")
	}
}
