package dto

// RegisterForm carries the registration form fields
type RegisterForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// LoginForm carries the login form fields
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// TransactionForm carries the add-transaction form fields. The field names
// match the dashboard form inputs; "type" is the income/expense tag.
type TransactionForm struct {
	Type     string `form:"type"`
	Category string `form:"category"`
	Amount   string `form:"amount"`
	Date     string `form:"date"`
	Account  string `form:"account"`
}
