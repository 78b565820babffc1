package gio_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amguinto/treepcg/core"
	"github.com/amguinto/treepcg/gio"
)

func TestBinaryRoundTrip(t *testing.T) {
	el := core.NewEdgeListR(4)
	require.NoError(t, core.AddR(&el, 0, 1, 1.5))
	require.NoError(t, core.AddR(&el, 1, 2, 2))
	require.NoError(t, core.AddR(&el, 2, 3, 0.25))

	var buf bytes.Buffer
	require.NoError(t, gio.WriteBinary(&buf, el))

	got, err := gio.ReadBinary(&buf)
	require.NoError(t, err)
	assert.Equal(t, el.N, got.N)
	assert.Equal(t, el.Edges, got.Edges)
}

func TestReadBinaryRejectsMalformedEdge(t *testing.T) {
	var buf bytes.Buffer
	el := core.NewEdgeListR(2)
	require.NoError(t, core.AddR(&el, 0, 1, 1))
	require.NoError(t, gio.WriteBinary(&buf, el))

	raw := buf.Bytes()
	// corrupt the first edge's u endpoint to point out of range
	raw[8] = 0xFF
	raw[9] = 0xFF

	_, err := gio.ReadBinary(bytes.NewReader(raw))
	assert.ErrorIs(t, err, core.ErrMalformedEdge)
}

func TestReadBinaryTruncatedInput(t *testing.T) {
	_, err := gio.ReadBinary(bytes.NewReader([]byte{1, 0, 0}))
	assert.Error(t, err)
}
