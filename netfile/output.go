package netfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vgrepeater/vgrepeater/vanginneken"
)

// WriteResult splices a solved buffer placement into the original net
// document and writes it next to path as "<stem>_out.json". Each
// placement's (ParentID, ChildID) is translated back to external node
// ids via idmap; the edge between them is located and split at the
// geometric point LenFromChild units from the child end, with a cloned
// driver-template node inserted there.
func WriteResult(path string, nf *NetFile, idmap IDMap, placements []vanginneken.BufPlace) error {
	doc := nf.raw // shallow copy; Node/Edge slices are rebuilt below, not mutated in place

	template, err := bufferTemplate(doc.Node)
	if err != nil {
		return err
	}

	maxID := 0
	for _, n := range doc.Node {
		if n.ID > maxID {
			maxID = n.ID
		}
	}

	byEdge := map[[2]int][]vanginneken.BufPlace{}
	for _, p := range placements {
		parentExt, ok1 := idmap.ToExternal[p.ParentID]
		childExt, ok2 := idmap.ToExternal[p.ChildID]
		if !ok1 || !ok2 {
			return fmt.Errorf("%w: placement references unknown internal id (%d,%d)", ErrInvalidInput, p.ParentID, p.ChildID)
		}
		key := [2]int{parentExt, childExt}
		byEdge[key] = append(byEdge[key], p)
	}

	newNodes := make([]jsonNode, 0, len(doc.Node))
	newEdges := make([]jsonEdge, 0, len(doc.Edge))
	for _, e := range doc.Edge {
		forward := [2]int{e.Vertices[0], e.Vertices[1]}
		reverse := [2]int{e.Vertices[1], e.Vertices[0]}

		group, reversed := byEdge[forward], false
		if group == nil {
			group, reversed = byEdge[reverse], true
		}
		if group == nil {
			newEdges = append(newEdges, e)
			continue
		}

		sort.Slice(group, func(i, j int) bool { return group[i].LenFromChild < group[j].LenFromChild })

		// splitFromEnd expects points ordered parent..child (LenFromChild
		// is measured from the last point); reverse the routed polyline
		// if the raw edge happened to list child first.
		parentExt, childExt := e.Vertices[0], e.Vertices[1]
		segments := e.Segments
		if reversed {
			parentExt, childExt = e.Vertices[1], e.Vertices[0]
			segments = reverseSegments(e.Segments)
		}

		currentChildID := childExt
		remaining := append([][2]int{}, segments...)
		consumed := 0
		for _, p := range group {
			splitPt, head, tail := splitFromEnd(remaining, p.LenFromChild-consumed)
			maxID++
			bufNode := template
			bufNode.ID = maxID
			bufNode.X = splitPt[0]
			bufNode.Y = splitPt[1]
			newNodes = append(newNodes, bufNode)

			newEdges = append(newEdges, jsonEdge{Vertices: [2]int{maxID, currentChildID}, Segments: tail})
			currentChildID = maxID
			remaining = head
			consumed = p.LenFromChild
		}
		newEdges = append(newEdges, jsonEdge{Vertices: [2]int{parentExt, currentChildID}, Segments: remaining})
	}

	doc.Node = append(append([]jsonNode{}, doc.Node...), newNodes...)
	doc.Edge = newEdges

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshaling result: %v", ErrIOFailure, err)
	}

	outPath := outputPath(path)
	if err := os.WriteFile(outPath, out, 0644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrIOFailure, outPath, err)
	}

	return nil
}

func bufferTemplate(nodes []jsonNode) (jsonNode, error) {
	for _, n := range nodes {
		if n.Type == "b" {
			return n, nil
		}
	}

	return jsonNode{}, fmt.Errorf("%w: no driver node (type \"b\") to clone as a buffer template", ErrInvalidInput)
}

func outputPath(path string) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	return filepath.Join(dir, stem+"_out.json")
}
