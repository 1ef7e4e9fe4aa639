package types

// ErrorEnvelope is the body of every non-2xx response. Detail is the public
// message, or a list of field errors for validation failures.
type ErrorEnvelope struct {
	Detail any `json:"detail"`
}

// StatusMessage is the body of the service index route.
type StatusMessage struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// HealthStatus is the body of the health route.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
