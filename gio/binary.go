package gio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/amguinto/treepcg/core"
)

// ReadBinary reads a graph in the compact binary sparse format: a
// little-endian uint32 vertex count n, a little-endian uint32 edge
// count m, then m records of (uint32 u, uint32 v, float64 weight)
// interpreted as a resistance.
func ReadBinary(r io.Reader) (core.EdgeList[core.EdgeR], error) {
	br := bufio.NewReader(r)

	var n, m uint32
	if err := binary.Read(br, binary.LittleEndian, &n); err != nil {
		return core.EdgeList[core.EdgeR]{}, fmt.Errorf("gio: reading vertex count: %w", err)
	}
	if err := binary.Read(br, binary.LittleEndian, &m); err != nil {
		return core.EdgeList[core.EdgeR]{}, fmt.Errorf("gio: reading edge count: %w", err)
	}

	el := core.NewEdgeListR(int(n))
	for i := uint32(0); i < m; i++ {
		var u, v uint32
		var w float64
		if err := binary.Read(br, binary.LittleEndian, &u); err != nil {
			return core.EdgeList[core.EdgeR]{}, fmt.Errorf("gio: reading edge %d endpoint u: %w", i, err)
		}
		if err := binary.Read(br, binary.LittleEndian, &v); err != nil {
			return core.EdgeList[core.EdgeR]{}, fmt.Errorf("gio: reading edge %d endpoint v: %w", i, err)
		}
		if err := binary.Read(br, binary.LittleEndian, &w); err != nil {
			return core.EdgeList[core.EdgeR]{}, fmt.Errorf("gio: reading edge %d weight: %w", i, err)
		}
		if err := core.AddR(&el, int(u), int(v), w); err != nil {
			return core.EdgeList[core.EdgeR]{}, fmt.Errorf("gio: edge %d: %w", i, err)
		}
	}

	return el, nil
}

// WriteBinary writes el in the format ReadBinary accepts.
func WriteBinary(w io.Writer, el core.EdgeList[core.EdgeR]) error {
	bw := bufio.NewWriter(w)

	if err := binary.Write(bw, binary.LittleEndian, uint32(el.N)); err != nil {
		return fmt.Errorf("gio: writing vertex count: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(el.Edges))); err != nil {
		return fmt.Errorf("gio: writing edge count: %w", err)
	}
	for i, e := range el.Edges {
		if err := binary.Write(bw, binary.LittleEndian, uint32(e.U)); err != nil {
			return fmt.Errorf("gio: writing edge %d endpoint u: %w", i, err)
		}
		if err := binary.Write(bw, binary.LittleEndian, uint32(e.V)); err != nil {
			return fmt.Errorf("gio: writing edge %d endpoint v: %w", i, err)
		}
		if err := binary.Write(bw, binary.LittleEndian, e.R); err != nil {
			return fmt.Errorf("gio: writing edge %d weight: %w", i, err)
		}
	}

	return bw.Flush()
}
