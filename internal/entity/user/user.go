package user

// Account is a registered user. The password is kept as plain text.
type Account struct {
	Username string
	Password string
}

func (a Account) PasswordMatches(password string) bool {
	return a.Password == password
}
