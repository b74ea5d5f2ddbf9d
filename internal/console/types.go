package console

// Result structs are shared across resources by operation category. The
// Console API returns schemaless JSON per resource; the envelope around it is
// fixed so every tool reports success, data and errors the same way.

// ListResult is the result of a list operation.
type ListResult struct {
	Items []map[string]any `json:"items"`
	Count int              `json:"count"`
}

// ItemResult is the result of a single-resource lookup. Found is false when
// the remote resource does not exist; Message then carries the explanation.
type ItemResult struct {
	Found   bool           `json:"found"`
	Data    map[string]any `json:"data,omitempty"`
	Message string         `json:"message,omitempty"`
}

// CreateResult is the result of a create operation.
type CreateResult struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data,omitempty"`
	Message string         `json:"message,omitempty"`
}

// UpdateResult is the result of an update operation.
type UpdateResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// DeleteResult is the result of a delete operation.
type DeleteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ReportResult is the result of an analytics endpoint (experiment results,
// pulse, metric details, pulse export).
type ReportResult struct {
	Data    map[string]any `json:"data,omitempty"`
	Message string         `json:"message,omitempty"`
}
