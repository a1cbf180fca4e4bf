package service

// Task represents a single task item as the remote store returns it.
// The ID is assigned by the server at creation time and is stable for the
// task's lifetime. Only Completed changes after creation.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Signup carries the fields for account registration.
type Signup struct {
	Name     string
	Email    string
	Password string
	Note     string
}
