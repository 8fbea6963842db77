package commons

import "strings"

// Response is the envelope every service operation returns. Data is only set
// when Success is true; Errors holds the failure details otherwise.
type Response[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    *T       `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func OK[T any](message string, data T) Response[T] {
	return Response[T]{Success: true, Message: message, Data: &data}
}

// Fail builds an unsuccessful envelope. Blank details are dropped.
func Fail[T any](message string, details ...string) Response[T] {
	resp := Response[T]{Message: message}
	for _, detail := range details {
		if detail = strings.TrimSpace(detail); detail != "" {
			resp.Errors = append(resp.Errors, detail)
		}
	}

	return resp
}

// FailWith is Fail with err's message as the only detail.
func FailWith[T any](message string, err error) Response[T] {
	if err == nil {
		return Fail[T](message)
	}

	return Fail[T](message, err.Error())
}
