package paths

// ParseRequest is the body of POST /paths/parse.
type ParseRequest struct {
	Path string `json:"path"`
}

// FormatResult is the response of POST /paths/format.
type FormatResult struct {
	Path string `json:"path"`
}
