package user

// User represents a bank user entity in the system.
type User struct {
	ID        int64  // ID is assigned by the store on creation
	Firstname string // Firstname of the bank user
	Lastname  string // Lastname of the bank user
	Email     string // Email is unique across all users
}
