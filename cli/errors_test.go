package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/rescode/cli/internal/config"
	"github.com/aledsdavies/rescode/core/colorcode"
	"github.com/aledsdavies/rescode/runtime/parser"
)

func TestFormatError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "cli error",
			err:  &CLIError{Type: "input", Message: "no values given", Hint: "pipe them"},
			want: []string{"Error: no values given\n", "Hint: pipe them\n"},
		},
		{
			name: "lines",
			err:  &colorcode.EncodingError{Kind: colorcode.ErrLines, Spec: colorcode.Spec{Resistance: 1, Tolerance: 5, Lines: 3}},
			want: []string{"Error: ", "Hint: pass --lines 4, 5 or 6\n"},
		},
		{
			name: "tolerance",
			err:  &colorcode.EncodingError{Kind: colorcode.ErrTolerance, Spec: colorcode.Spec{Resistance: 1, Tolerance: 3, Lines: 4}},
			want: []string{"Hint: use one of the standard tolerances"},
		},
		{
			name: "unknown color",
			err:  &colorcode.UnknownColorError{Name: "yelow", Suggestion: "yellow"},
			want: []string{`did you mean "yellow"`, "Colors: black, brown, red"},
		},
		{
			name: "decode",
			err:  &colorcode.DecodeError{Band: 4, Color: colorcode.Black, Reason: "not a tolerance color"},
			want: []string{"Error: band 4 (black): not a tolerance color\n", "Hint: bands are digit colors"},
		},
		{
			name: "generic",
			err:  errors.New("disk full"),
			want: []string{"Error: disk full\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			FormatError(&buf, tt.err, false)
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
			assert.NotContains(t, buf.String(), "\033[")
		})
	}
}

func TestFormatParseError(t *testing.T) {
	_, err := parser.Parse("10*5")
	require.Error(t, err)

	var buf bytes.Buffer
	FormatError(&buf, err, false)
	assert.Contains(t, buf.String(), "--> column 3")
	assert.Contains(t, buf.String(), " 1 | 10*5\n")
}

func TestFormatErrorNil(t *testing.T) {
	var buf bytes.Buffer
	FormatError(&buf, nil, true)
	assert.Empty(t, buf.String())
}

func TestCLIErrorString(t *testing.T) {
	err := &CLIError{Message: "cannot open transcript", Details: "no such file", Hint: "check the path"}
	assert.Equal(t, "cannot open transcript\nno such file\ncheck the path", err.Error())
}

func TestShouldUseColor(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.False(t, ShouldUseColor(false, config.Config{}, &bytes.Buffer{}), "buffers are not terminals")
	assert.False(t, ShouldUseColor(false, config.Config{}, f), "regular files are not terminals")
	assert.False(t, ShouldUseColor(true, config.Config{}, f))
	assert.False(t, ShouldUseColor(false, config.Config{NoColorStd: "1"}, f))
}

func TestInputValues(t *testing.T) {
	a := &app{in: strings.NewReader("4k7\n\n  330 \n")}

	got, err := a.inputValues(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"4k7", "330"}, got)

	got, err = a.inputValues([]string{"1k", "2k2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1k", "2k2"}, got)

	a = &app{in: strings.NewReader("1M\n")}
	got, err = a.inputValues([]string{"-"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1M"}, got)

	a = &app{}
	_, err = a.inputValues(nil)
	var cliErr *CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, "no values given", cliErr.Message)
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "  a\n  b\n", indent("a\nb\n"))
	assert.Equal(t, "  a\n  b", indent("a\nb"))
	assert.Equal(t, "", indent(""))
}
