package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfirmOverwriteAccepts(t *testing.T) {
	for _, answer := range []string{"y\n", "yes\n", "Y\n", "YES\n", "  y  \n", "y"} {
		var out bytes.Buffer
		if !confirmOverwrite(strings.NewReader(answer), &out, "out.txt") {
			t.Errorf("answer %q declined, expected accept", answer)
		}
	}
}

func TestConfirmOverwriteDeclines(t *testing.T) {
	for _, answer := range []string{"n\n", "no\n", "\n", "maybe\n", "yess\n"} {
		var out bytes.Buffer
		if confirmOverwrite(strings.NewReader(answer), &out, "out.txt") {
			t.Errorf("answer %q accepted, expected decline", answer)
		}
	}
}

func TestConfirmOverwriteClosedInput(t *testing.T) {
	var out bytes.Buffer
	if confirmOverwrite(strings.NewReader(""), &out, "out.txt") {
		t.Error("closed input accepted, expected decline")
	}
}

func TestConfirmOverwritePromptText(t *testing.T) {
	var out bytes.Buffer
	confirmOverwrite(strings.NewReader("n\n"), &out, "result.txt")

	prompt := out.String()
	if !strings.Contains(prompt, "'result.txt'") {
		t.Errorf("prompt %q does not name the file", prompt)
	}
	if !strings.Contains(prompt, "(y/n)") {
		t.Errorf("prompt %q does not offer y/n", prompt)
	}
}
