package parameter

import "time"

// Code breaker
const (
	CodeBudget = 10 * time.Second
	CodeLength = 4
	CodeReveal = 3 * time.Second
	CodeTick   = 100 * time.Millisecond
)
