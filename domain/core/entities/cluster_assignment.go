package entities

// ClusterAssignment maps one transaction id to the cluster an external
// clustering algorithm placed it in. Flat, no graph structure; related
// to Transaction by id only.
type ClusterAssignment struct {
	TransactionID int64 `json:"transactionId"`
	ClusterID     int64 `json:"clusterId"`
}
