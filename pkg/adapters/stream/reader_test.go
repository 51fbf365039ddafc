package stream_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aretw0/togglewalk/pkg/adapters/stream"
	"github.com/aretw0/togglewalk/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_Batch(t *testing.T) {
	input := `3
2
2 2
3
3 2
1 3
1
`
	r := stream.NewReader(strings.NewReader(input))
	n, err := r.ReadCount()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	g, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, []int{1}, g.Left)
	assert.Equal(t, []int{1}, g.Right)
	assert.Equal(t, 1, r.Case())

	g, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0}, g.Left)
	assert.Equal(t, []int{1, 2}, g.Right)
	assert.Equal(t, 2, g.Terminal())

	g, err = r.Next()
	require.NoError(t, err)
	assert.Zero(t, g.Len())

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  error
		wantCase int
	}{
		{name: "Truncated case", input: "1\n3\n1 2\n", wantErr: domain.ErrMalformedInput, wantCase: 1},
		{name: "Not a number", input: "1\n2\nx 1\n", wantErr: domain.ErrMalformedInput, wantCase: 1},
		{name: "Edge out of range", input: "1\n2\n3 1\n", wantErr: domain.ErrMalformedGraph, wantCase: 1},
		{name: "Zero edge", input: "1\n2\n0 1\n", wantErr: domain.ErrMalformedGraph, wantCase: 1},
		{name: "Zero node count", input: "1\n0\n", wantErr: domain.ErrMalformedInput, wantCase: 1},
		{name: "Too many nodes", input: "1\n66\n", wantErr: domain.ErrTooManyNodes, wantCase: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := stream.NewReader(strings.NewReader(tt.input))
			_, err := r.ReadCount()
			require.NoError(t, err)

			_, err = r.Next()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var inErr *domain.InputError
			require.True(t, errors.As(err, &inErr))
			assert.Equal(t, tt.wantCase, inErr.Case)
		})
	}

	t.Run("Missing header", func(t *testing.T) {
		_, err := stream.NewReader(strings.NewReader("")).ReadCount()
		assert.ErrorIs(t, err, domain.ErrMalformedInput)
	})
}

func TestWriteBatch_RoundTrip(t *testing.T) {
	a, _ := domain.NewGraph([]int{1, 0}, []int{2, 2})
	b, _ := domain.NewGraph([]int{0}, []int{1})

	var buf bytes.Buffer
	require.NoError(t, stream.WriteBatch(&buf, a, b))
	assert.Equal(t, "2\n3\n2 3\n1 3\n2\n1 2\n", buf.String())

	r := stream.NewReader(&buf)
	n, err := r.ReadCount()
	require.NoError(t, err)
	require.Equal(t, 2, n)
	for _, want := range []*domain.Graph{a, b} {
		got, err := r.Next()
		require.NoError(t, err)
		assert.Equal(t, want.Fingerprint(), got.Fingerprint())
	}
}
