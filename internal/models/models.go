package models

// User is an account holder. PasswordHash never leaves the process: it is
// excluded from JSON and only the login lookup path loads it at all.
type User struct {
	ID           int    `json:"id"`
	Login        string `json:"login"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	CreatedAt    Date   `json:"created_at"`
}

// NewUser carries everything the directory needs to persist a user. The
// hash and creation date are produced by the caller (the account service),
// never by clients.
type NewUser struct {
	Login        string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	CreatedAt    Date
}

// Task is a unit of work owned by exactly one user.
type Task struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	StartDate   Date   `json:"start_date"`
	EndDate     Date   `json:"end_date"`
	OwnerID     int    `json:"owner_id"`
}

// TaskFields is the full set of mutable task fields. Updates are whole
// overwrites: every field here is written back, nothing is merged.
type TaskFields struct {
	Title       string
	Description string
	Status      string
	StartDate   Date
	EndDate     Date
	OwnerID     int
}

// Overwrite replaces every mutable field of the task with f. Each field is
// named explicitly so a schema change here is a compile error, not a
// silently dropped attribute.
func (t *Task) Overwrite(f TaskFields) {
	t.Title = f.Title
	t.Description = f.Description
	t.Status = f.Status
	t.StartDate = f.StartDate
	t.EndDate = f.EndDate
	t.OwnerID = f.OwnerID
}
