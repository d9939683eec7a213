package http

// GraphList is the body of GET /api/state.
type GraphList struct {
	Graphs []string `json:"graphs"`
}
