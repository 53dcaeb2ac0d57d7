package zerror

// Status is a transport-agnostic error class. Transports map it to their own
// status codes.
type Status uint8

const (
	StatusUnknown Status = iota
	StatusBadRequest
	StatusNotFound
	StatusInternalServerError
	StatusServiceUnavailable
)

func (s Status) String() string {
	switch s {
	case StatusBadRequest:
		return "BAD_REQUEST"
	case StatusNotFound:
		return "NOT_FOUND"
	case StatusInternalServerError:
		return "INTERNAL_SERVER_ERROR"
	case StatusServiceUnavailable:
		return "SERVICE_UNAVAILABLE"
	default:
		return "UNKNOWN"
	}
}
