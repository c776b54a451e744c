package netfile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/vgrepeater/vgrepeater/core"
)

// LoadTechnology parses a technology.json file into the engine's
// WireParams/BufferParams.
func LoadTechnology(path string) (core.WireParams, core.BufferParams, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.WireParams{}, core.BufferParams{}, fmt.Errorf("%w: reading %s: %v", ErrIOFailure, path, err)
	}

	var doc jsonTechDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return core.WireParams{}, core.BufferParams{}, fmt.Errorf("%w: parsing %s: %v", ErrInvalidInput, path, err)
	}

	if len(doc.Module) == 0 || len(doc.Module[0].Input) == 0 {
		return core.WireParams{}, core.BufferParams{}, fmt.Errorf("%w: %s: missing module[0].input[0]", ErrInvalidInput, path)
	}

	wp := core.WireParams{
		RPerUnit: doc.Technology.UnitWireResistance,
		CPerUnit: doc.Technology.UnitWireCapacitance,
	}
	in := doc.Module[0].Input[0]
	bp := core.BufferParams{
		CIn:            in.C,
		RDrive:         in.R,
		IntrinsicDelay: in.IntrinsicDelay,
	}

	return wp, bp, nil
}

// LoadNet parses a net.json file: every node and edge, with each edge's
// Length computed as the total Manhattan distance along its routed
// polyline.
func LoadNet(path string) (*NetFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrIOFailure, path, err)
	}

	var doc jsonNetDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrInvalidInput, path, err)
	}
	if len(doc.Node) == 0 {
		return nil, fmt.Errorf("%w: %s: no nodes", ErrInvalidInput, path)
	}

	nf := &NetFile{raw: doc}
	for _, n := range doc.Node {
		nf.Nodes = append(nf.Nodes, Node{
			ExternalID:  n.ID,
			X:           n.X,
			Y:           n.Y,
			Type:        n.Type,
			Name:        n.Name,
			Capacitance: n.Capacitance,
			RAT:         n.RAT,
		})
	}
	for _, e := range doc.Edge {
		if len(e.Segments) < 2 {
			return nil, fmt.Errorf("%w: %s: edge %d->%d has fewer than two routed points", ErrInvalidInput, path, e.Vertices[0], e.Vertices[1])
		}
		nf.Edges = append(nf.Edges, Edge{
			StartExternalID: e.Vertices[0],
			EndExternalID:   e.Vertices[1],
			Length:          polylineLength(e.Segments),
		})
	}

	return nf, nil
}
