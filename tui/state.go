package tui

type state int

const (
	listState state = iota + 1
	detailState
)

func (s state) String() string {
	switch s {
	case listState:
		return "list"
	case detailState:
		return "detail"
	default:
		return "unknown"
	}
}
