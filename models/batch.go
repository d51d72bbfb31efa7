package models

// Batch action names accepted by the batch endpoints.
const (
	BatchActionCreate = "create"
	BatchActionUpdate = "update"
	BatchActionDelete = "delete"
)

// MaxBatchOperations caps the number of operations in a single batch request.
const MaxBatchOperations = 50

// BatchRequest is the body of POST /api/batch/{kind}.
type BatchRequest struct {
	Operations []BatchOperation `json:"operations" validate:"required,min=1,max=50,dive"`
}

// BatchOperation is one {action, data} item. For update and delete the data
// object must carry the target id.
type BatchOperation struct {
	Action string                 `json:"action" validate:"required,oneof=create update delete"`
	Data   map[string]interface{} `json:"data" validate:"required"`
}

// BatchResult records the outcome of a single operation. Status is either
// "success" or "error"; the slice returned to the client preserves input
// order.
type BatchResult struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// BatchSummary counts outcomes across the whole batch.
type BatchSummary struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// BatchResponse is the body returned by batch endpoints.
type BatchResponse struct {
	Results []BatchResult `json:"results"`
	Summary BatchSummary  `json:"summary"`
}
