package core

type PageAction int

const (
	ActionRender PageAction = iota
	ActionNotFound
	ActionMethodNotAllowed
)

type PageRequest struct {
	Method      string
	Pattern     string
	RequestPath string
}

func DecidePageAction(req PageRequest) PageAction {
	switch req.Method {
	case "", "GET", "HEAD":
	default:
		return ActionMethodNotAllowed
	}

	if NormalizePath(req.RequestPath) != NormalizePath(req.Pattern) {
		return ActionNotFound
	}

	return ActionRender
}
