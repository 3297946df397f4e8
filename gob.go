package kdgo

import (
	"bytes"
	"encoding/gob"
	"io"

	"github.com/klauspost/compress/zstd"
)

// wireNode mirrors a tree node with exported fields for gob. The exact
// shape is preserved, so an unbalanced tree round-trips unbalanced.
// Nil children are omitted from the stream by gob.
type wireNode struct {
	Axis    int
	Coords  []float32
	Payload any
	Left    *wireNode
	Right   *wireNode
}

type wireTree struct {
	Dimension int
	Root      *wireNode
}

// GobEncode implements gob.GobEncoder.
//
// Payloads are encoded as interface values; callers using non-nil payloads
// must register their concrete types with gob.Register.
func (t *KDTree) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	encoder := gob.NewEncoder(&buf)

	if err := encoder.Encode(wireTree{Dimension: t.dimension, Root: t.toWire()}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder.
func (t *KDTree) GobDecode(data []byte) error {
	decoder := gob.NewDecoder(bytes.NewBuffer(data))

	var wire wireTree
	if err := decoder.Decode(&wire); err != nil {
		return err
	}

	rebuilt := fromWire(wire.Root, wire.Dimension)
	t.dimension, t.axis = rebuilt.dimension, rebuilt.axis
	t.value, t.left, t.right = rebuilt.value, rebuilt.left, rebuilt.right

	return nil
}

func (t *KDTree) toWire() *wireNode {
	if t == nil || t.value == nil {
		return nil
	}
	return &wireNode{
		Axis:    t.axis,
		Coords:  t.value.coords,
		Payload: t.value.payload,
		Left:    t.left.toWire(),
		Right:   t.right.toWire(),
	}
}

func fromWire(n *wireNode, dimension int) *KDTree {
	if n == nil {
		return &KDTree{dimension: dimension}
	}
	return &KDTree{
		dimension: dimension,
		axis:      n.Axis,
		value:     &Point{coords: n.Coords, payload: n.Payload},
		left:      fromWireChild(n.Left, dimension),
		right:     fromWireChild(n.Right, dimension),
	}
}

func fromWireChild(n *wireNode, dimension int) *KDTree {
	if n == nil {
		return nil
	}
	return fromWire(n, dimension)
}

// SaveToWriter writes a zstd-compressed snapshot of the tree to w.
func (t *KDTree) SaveToWriter(w io.Writer) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}

	if err := gob.NewEncoder(zw).Encode(t); err != nil {
		zw.Close()
		return err
	}

	return zw.Close()
}

// LoadFromReader reads a snapshot previously written by SaveToWriter.
func LoadFromReader(r io.Reader) (*KDTree, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	t := &KDTree{}
	if err := gob.NewDecoder(zr).Decode(t); err != nil {
		return nil, err
	}

	return t, nil
}
