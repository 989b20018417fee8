package domain

import "time"

type ActivityType struct {
	ID        string
	Name      string
	Emoji     string
	Archived  bool
	CreatedAt time.Time
}

const uncategorizedLabel = "uncategorized"

// ActivityKey identifies the activity a session is attributed to. The zero
// value is Uncategorized.
type ActivityKey struct {
	id    string
	known bool
}

// Uncategorized is the key for sessions logged without an activity type.
var Uncategorized = ActivityKey{}

// KnownActivity returns the key for an existing activity type id. An empty id
// yields Uncategorized.
func KnownActivity(id string) ActivityKey {
	if id == "" {
		return Uncategorized
	}
	return ActivityKey{id: id, known: true}
}

// ID returns the activity type id and whether the key is known.
func (k ActivityKey) ID() (string, bool) {
	return k.id, k.known
}

func (k ActivityKey) IsUncategorized() bool {
	return !k.known
}

func (k ActivityKey) String() string {
	if !k.known {
		return uncategorizedLabel
	}
	return k.id
}
