package console_test

import (
	"bytes"
	"testing"

	"github.com/UnknownOlympus/metamap/internal/console"
	"github.com/stretchr/testify/assert"
)

func TestPrinter_Log(t *testing.T) {
	tests := []struct {
		level console.Level
		want  string
	}{
		{console.Error, "[-] File does not exist\n"},
		{console.Warning, "[!] File does not exist\n"},
		{console.Success, "[+] File does not exist\n"},
		{console.Info, "[*] File does not exist\n"},
		{console.Level(42), "[*] File does not exist\n"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		console.NewPrinter(&buf, false).Log(tt.level, "File %s", "does not exist")

		assert.Equal(t, tt.want, buf.String())
	}
}

func TestPrinter_Item(t *testing.T) {
	var buf bytes.Buffer
	console.NewPrinter(&buf, false).Item("- %s", "a.jpg")

	assert.Equal(t, "    - a.jpg\n", buf.String())
}

func TestPrinter_Banner(t *testing.T) {
	var buf bytes.Buffer
	console.NewPrinter(&buf, false).Banner()

	assert.Contains(t, buf.String(), `|__|_|  /\___  >__|`)
	assert.NotContains(t, buf.String(), "\x1b[")
}
