package workitem

// Kind distinguishes the two work-item variants in commands that accept
// either.
type Kind string

const (
	KindTask Kind = "task"
	KindDuty Kind = "duty"
)

// KindForAlias maps a user-supplied noun onto a Kind.
func KindForAlias(s string) (Kind, bool) {
	switch s {
	case "task", "tasks":
		return KindTask, true
	case "duty", "duties":
		return KindDuty, true
	default:
		return "", false
	}
}
