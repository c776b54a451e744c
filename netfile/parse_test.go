package netfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vgrepeater/vgrepeater/netfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const techJSON = `{
  "technology": {"unit_wire_resistance": 1.0, "unit_wire_capacitance": 1.0},
  "module": [{"input": [{"C": 2.0, "R": 3.0, "intrinsic_delay": 0.5}]}]
}`

const netJSON = `{
  "node": [
    {"id": 0, "x": 0, "y": 0, "type": "b", "name": "DRV"},
    {"id": 2, "x": 5, "y": 0, "type": "s"},
    {"id": 1, "x": 5, "y": 3, "type": "t", "capacitance": 1.0, "rat": 10.0}
  ],
  "edge": [
    {"vertices": [0, 2], "segments": [[0,0],[5,0]]},
    {"vertices": [2, 1], "segments": [[5,0],[5,3]]}
  ]
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestLoadTechnology(t *testing.T) {
	path := writeTemp(t, "tech.json", techJSON)

	wp, bp, err := netfile.LoadTechnology(path)
	require.NoError(t, err)

	assert.Equal(t, 1.0, wp.RPerUnit)
	assert.Equal(t, 1.0, wp.CPerUnit)
	assert.Equal(t, 2.0, bp.CIn)
	assert.Equal(t, 3.0, bp.RDrive)
	assert.Equal(t, 0.5, bp.IntrinsicDelay)
}

func TestLoadTechnology_MissingFile(t *testing.T) {
	_, _, err := netfile.LoadTechnology(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestLoadNet_ComputesManhattanLength(t *testing.T) {
	path := writeTemp(t, "net.json", netJSON)

	nf, err := netfile.LoadNet(path)
	require.NoError(t, err)

	require.Len(t, nf.Nodes, 3)
	require.Len(t, nf.Edges, 2)

	lengths := map[[2]int]int{}
	for _, e := range nf.Edges {
		lengths[[2]int{e.StartExternalID, e.EndExternalID}] = e.Length
	}
	assert.Equal(t, 5, lengths[[2]int{0, 2}])
	assert.Equal(t, 3, lengths[[2]int{2, 1}])
}

func TestBuildTree_AssignsInternalIDs(t *testing.T) {
	path := writeTemp(t, "net.json", netJSON)
	nf, err := netfile.LoadNet(path)
	require.NoError(t, err)

	tr, idmap, err := nf.BuildTree()
	require.NoError(t, err)
	require.NotNil(t, tr)

	assert.Equal(t, 0, idmap.ToInternal[0]) // driver
	assert.Equal(t, 1, idmap.ToInternal[1]) // sole sink
	assert.Equal(t, 0, idmap.ToExternal[0])
	assert.Equal(t, 1, idmap.ToExternal[1])
}

func TestBuildTree_RejectsMissingDriver(t *testing.T) {
	path := writeTemp(t, "net.json", `{"node":[{"id":1,"x":0,"y":0,"type":"t","capacitance":1,"rat":1}],"edge":[]}`)
	nf, err := netfile.LoadNet(path)
	require.NoError(t, err)

	_, _, err = nf.BuildTree()
	require.Error(t, err)
}
