package users

import "time"

// User is an account row. Password holds whatever the configured credential
// scheme stored at signup; with the default plain scheme that is the
// supplied value itself.
type User struct {
	ID        int64
	Email     string
	Password  string
	CreatedAt time.Time
}
