package domain

// PingResult is the outcome of a connectivity probe against the endpoint.
type PingResult struct {
	OK        bool
	ElapsedMS int64
	Model     string
	Error     string
}
