package kifudto

// DomainError is a failure reported by the kifu service itself (success:false).
type DomainError struct {
	Code    string
	Message string
}

func (e DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return e.Code
	}
	return "kifu service error"
}
