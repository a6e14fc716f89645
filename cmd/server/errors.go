package main

import "fmt"

// IntentError rejects a client intent with a stable code.
type IntentError struct {
	Code    string
	Message string
}

func (e *IntentError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}
