package services

// Result is the outcome of every public mutation. Callers branch on OK and
// display Message; no error ever escapes a mutation entry point.
type Result struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

func ok(message string) Result   { return Result{OK: true, Message: message} }
func fail(message string) Result { return Result{OK: false, Message: message} }
