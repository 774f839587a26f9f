package model

// Scope carries the identity of the caller through the use case layer.
type Scope struct {
	UserID   string
	ClientIP string
}

// CallerKey identifies the caller for per-caller limits: the user when known,
// otherwise the client IP.
func (sc Scope) CallerKey() string {
	if sc.UserID != "" {
		return "user:" + sc.UserID
	}
	if sc.ClientIP != "" {
		return "ip:" + sc.ClientIP
	}
	return "anonymous"
}
