package entities

import "github.com/ravjot07/TxGraph/domain/core/valueobjects"

// PathNode is one endpoint of a computed path. The Type field carries
// the wire kind discriminator; Name and DeviceID are populated for the
// matching kind only.
type PathNode struct {
	ID       int64  `json:"id"`
	Type     string `json:"type"`
	Name     string `json:"name,omitempty"`
	DeviceID string `json:"deviceId,omitempty"`
}

// Key derives the endpoint's entity key, failing on an unknown kind
func (n PathNode) Key() (valueobjects.EntityKey, error) {
	kind, err := valueobjects.ParseKind(n.Type)
	if err != nil {
		return "", err
	}
	return valueobjects.NewEntityKey(kind, n.ID)
}

// DisplayLabel returns the label rendered for the endpoint's graph node
func (n PathNode) DisplayLabel() string {
	if n.Type == string(valueobjects.KindUser) {
		return n.Name
	}
	return TransactionLabel(n.ID, n.DeviceID)
}

// PathSegment is one hop of a computed path, carrying its own
// relationship name
type PathSegment struct {
	From         PathNode `json:"from"`
	To           PathNode `json:"to"`
	Relationship string   `json:"relationship"`
}

// PathResult holds a computed shortest path in whichever of the two
// historically divergent wire shapes the collaborator produced. The two
// variants are mutually exclusive: a response carries segments or an
// ordered node list, never both.
type PathResult struct {
	// Segments is the hop list shape, each hop naming its relationship.
	Segments []PathSegment

	// Ordered is the legacy shape: a strictly ordered walk with no
	// relationship names.
	Ordered []PathNode
}

// HasSegments reports whether the result uses the segment-list shape
func (p PathResult) HasSegments() bool {
	return len(p.Segments) > 0
}

// HasOrdered reports whether the result uses the ordered-walk shape
func (p PathResult) HasOrdered() bool {
	return len(p.Ordered) > 0
}

// IsEmpty reports whether the result carries no path at all. An empty
// result means "no path found", not a malformed response.
func (p PathResult) IsEmpty() bool {
	return len(p.Segments) == 0 && len(p.Ordered) == 0
}
