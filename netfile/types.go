package netfile

// jsonNode mirrors one entry of the net file's "node" array.
type jsonNode struct {
	ID          int     `json:"id"`
	X           int     `json:"x"`
	Y           int     `json:"y"`
	Type        string  `json:"type"`
	Name        string  `json:"name,omitempty"`
	Capacitance float64 `json:"capacitance,omitempty"`
	RAT         float64 `json:"rat,omitempty"`
}

// jsonEdge mirrors one entry of the net file's "edge" array: a pair of
// node ids connected by a rectilinear polyline.
type jsonEdge struct {
	ID       int     `json:"id,omitempty"`
	Vertices [2]int  `json:"vertices"`
	Segments [][2]int `json:"segments"`
}

// jsonNetDoc is the whole net file.
type jsonNetDoc struct {
	Node []jsonNode `json:"node"`
	Edge []jsonEdge `json:"edge"`
}

// jsonTechDoc is the whole technology file.
type jsonTechDoc struct {
	Technology struct {
		UnitWireResistance  float64 `json:"unit_wire_resistance"`
		UnitWireCapacitance float64 `json:"unit_wire_capacitance"`
	} `json:"technology"`
	Module []struct {
		Input []struct {
			C              float64 `json:"C"`
			R              float64 `json:"R"`
			IntrinsicDelay float64 `json:"intrinsic_delay"`
		} `json:"input"`
	} `json:"module"`
}

// Node is the parsed, internal-id-free view of one net file node.
type Node struct {
	ExternalID  int
	X, Y        int
	Type        string
	Name        string
	Capacitance float64
	RAT         float64
}

// Edge is the parsed, internal-id-free view of one net file edge: its
// endpoints (by external id) and its routed Manhattan length.
type Edge struct {
	StartExternalID int
	EndExternalID   int
	Length          int
}

// NetFile is a fully parsed net file: the node/edge view used to build
// a core.Tree, plus the original decoded document retained for
// WriteResult to splice buffer nodes into.
type NetFile struct {
	Nodes []Node
	Edges []Edge

	raw jsonNetDoc
}

// IDMap translates between the internal ids core.Tree operates on
// (driver=0, sinks=1..N, Steiner=N+1..N+M, assigned in node input
// order) and the external ids used in the net file.
type IDMap struct {
	ToExternal map[int]int
	ToInternal map[int]int
}
