package user

type User struct {
	ID        int    `json:"userId"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	FullName  string `json:"fullName"`
	Phone     string `json:"phone"`
	IsAdmin   bool   `json:"isAdmin,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// sanitizeUser blanks the password hash before a user leaves the API.
func sanitizeUser(u User) User {
	u.Password = ""
	return u
}
