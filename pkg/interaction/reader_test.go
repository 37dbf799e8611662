// pkg/interaction/reader_test.go

package interaction

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLine(t *testing.T) {
	ctx := context.Background()

	reader := bufio.NewReader(strings.NewReader("  8443  \n"))
	out, err := ReadLine(ctx, reader, "Port")
	require.NoError(t, err)
	assert.Equal(t, "8443", out)

	reader = bufio.NewReader(strings.NewReader("\n"))
	out, err = ReadLine(ctx, reader, "Port")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestReadLineEOF(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("no newline"))
	_, err := ReadLine(context.Background(), reader, "Port")
	assert.Error(t, err)
}

func TestNormalizeYesNoInput(t *testing.T) {
	tests := []struct {
		input          string
		want           bool
		wantRecognized bool
	}{
		{"y", true, true},
		{"Y", true, true},
		{"yes", true, true},
		{"YES", true, true},
		{"  yes  ", true, true},
		{"n", false, true},
		{"no", false, true},
		{"No", false, true},
		{"", false, false},
		{"maybe", false, false},
		{"yep", false, false},
	}

	for _, tt := range tests {
		got, recognized := NormalizeYesNoInput(tt.input)
		assert.Equal(t, tt.wantRecognized, recognized, "input %q", tt.input)
		if recognized {
			assert.Equal(t, tt.want, got, "input %q", tt.input)
		}
	}
}
