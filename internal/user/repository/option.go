package repository

type CreateUserOptions struct {
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
}

type GetOneUserOptions struct {
	ID uint64
}
