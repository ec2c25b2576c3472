package repl

// Action keyword typed at the main prompt.
type Action int

const (
	ActionUnknown Action = iota
	ActionList
	ActionAdd
	ActionRemove
	ActionEdit
	ActionQuit
)

var actionKeywords = map[string]Action{
	"list":   ActionList,
	"add":    ActionAdd,
	"remove": ActionRemove,
	"edit":   ActionEdit,
	"quit":   ActionQuit,
}

// ParseAction matches the keyword exactly; "list " is not "list".
func ParseAction(s string) Action {
	if a, ok := actionKeywords[s]; ok {
		return a
	}
	return ActionUnknown
}

func (a Action) String() string {
	switch a {
	case ActionList:
		return "list"
	case ActionAdd:
		return "add"
	case ActionRemove:
		return "remove"
	case ActionEdit:
		return "edit"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// actionHelp is the banner listing, in display order.
var actionHelp = []struct {
	action      Action
	description string
}{
	{ActionList, "show all users"},
	{ActionAdd, "add new user to the list"},
	{ActionRemove, "remove user from the list"},
	{ActionEdit, "edit user details"},
	{ActionQuit, "quit the app"},
}
