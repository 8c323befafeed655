package service

// ValidationError signals that an entry field failed a business rule.
// The message is user-facing and surfaced verbatim by the HTTP layer.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// BusinessRuleError signals a violated business rule, such as a duplicate email
type BusinessRuleError struct {
	Message string
}

func (e *BusinessRuleError) Error() string {
	return e.Message
}

// AuthenticationError signals failed credential authentication
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// NotFoundError signals that a named entity does not exist
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}
