package model

// User represents a console account. Users are identified by email,
// not by a numeric id.
type User struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}

// UserTable is the wrapper the list endpoint returns.
type UserTable struct {
	Users []User `json:"user_table"`
}
