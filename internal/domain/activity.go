package domain

type ActivityKind string

const (
	ActivityPointerDown ActivityKind = "pointer_down"
	ActivityPointerMove ActivityKind = "pointer_move"
	ActivityKeyPress    ActivityKind = "key_press"
	ActivityScroll      ActivityKind = "scroll"
	ActivityTouchStart  ActivityKind = "touch_start"
	ActivityClick       ActivityKind = "click"
)

func (k ActivityKind) Qualifying() bool {
	switch k {
	case ActivityPointerDown, ActivityPointerMove, ActivityKeyPress, ActivityScroll, ActivityTouchStart, ActivityClick:
		return true
	default:
		return false
	}
}
