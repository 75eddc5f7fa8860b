package responses

// Response is the JSON envelope for error replies. Successful writes reply
// with plain text and listings with a bare JSON array.
type Response struct {
	Status  int                    `json:"status"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data,omitempty"`
}
