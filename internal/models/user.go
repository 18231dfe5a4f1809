package models

// User is an account that can log in to the API.
type User struct {
	ID           string `json:"id" firestore:"-"`
	Email        string `json:"email" firestore:"email"`
	Name         string `json:"name" firestore:"name"`
	PasswordHash string `json:"-" firestore:"password_hash"`
	CreatedAt    string `json:"created_at" firestore:"created_at"`
}
