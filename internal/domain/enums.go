package domain

// DateFilter names a calendar period used to narrow session lists.
type DateFilter string

const (
	FilterToday     DateFilter = "today"
	FilterThisWeek  DateFilter = "thisWeek"
	FilterThisMonth DateFilter = "thisMonth"
	FilterThisYear  DateFilter = "thisYear"
	FilterAllTime   DateFilter = "allTime"
	FilterCustom    DateFilter = "custom"
)

// ValidDateFilters is the canonical set of accepted date filter strings.
var ValidDateFilters = map[DateFilter]bool{
	FilterToday: true, FilterThisWeek: true, FilterThisMonth: true,
	FilterThisYear: true, FilterAllTime: true, FilterCustom: true,
}

// SessionSort names an ordering for session lists.
type SessionSort string

const (
	SortStartDesc    SessionSort = "start"
	SortDurationDesc SessionSort = "duration"
	SortProjectAsc   SessionSort = "project"
)

// DeletionState tracks a project deletion through its lifecycle.
type DeletionState string

const (
	DeletionIdle              DeletionState = "idle"
	DeletionSessionsCollected DeletionState = "sessions_collected"
	DeletionNoSessions        DeletionState = "no_sessions"
	DeletionNeedsTarget       DeletionState = "needs_target"
	DeletionDeleted           DeletionState = "deleted"
	DeletionAborted           DeletionState = "aborted"
)

// Terminal reports whether no further transition is possible.
func (s DeletionState) Terminal() bool {
	return s == DeletionDeleted || s == DeletionAborted
}

// UnassignedProject labels chart series for sessions without a project.
const UnassignedProject = "Unassigned"
