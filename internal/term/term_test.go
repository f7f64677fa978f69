//go:build unix

package term

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSize_fallsBackOffTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	w, h := Size(f)
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)
	assert.False(t, IsTerminal(f))
}

func TestPollByte_pipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	tt := &Terminal{in: r, inFd: int(r.Fd())}

	_, ok, err := tt.PollByte()
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = w.Write([]byte("qC"))
	require.NoError(t, err)

	b, ok, err := tt.PollByte()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, byte('q'), b)

	b, ok, err = tt.PollByte()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, byte('C'), b)

	_, ok, err = tt.PollByte()
	require.NoError(t, err)
	assert.False(t, ok)
}
