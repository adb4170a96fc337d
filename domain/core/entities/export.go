package entities

// ExportNode is one node of the full graph export. Properties carry the
// kind-specific attributes (`name` for users, `deviceId` and friends for
// transactions).
type ExportNode struct {
	ID         int64          `json:"id"`
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
}

// StringProperty returns the named property when it is a string,
// otherwise the empty string
func (n ExportNode) StringProperty(name string) string {
	if n.Properties == nil {
		return ""
	}
	if v, ok := n.Properties[name].(string); ok {
		return v
	}
	return ""
}

// ExportRelationship is one edge of the full graph export, carrying
// explicit kind discriminators for both endpoints
type ExportRelationship struct {
	SourceID     int64  `json:"sourceId"`
	SourceType   string `json:"sourceType"`
	Relationship string `json:"relationship"`
	TargetID     int64  `json:"targetId"`
	TargetType   string `json:"targetType"`
}

// GraphExport is the full graph export payload
type GraphExport struct {
	Nodes         []ExportNode         `json:"nodes"`
	Relationships []ExportRelationship `json:"relationships"`
}
