package domain

// Task is a single to-do item owned by exactly one user. OwnerID is
// resolved from the caller's token and never appears on the wire.
type Task struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	IsComplete bool   `json:"isComplete"`
	OwnerID    int64  `json:"-"`
}
