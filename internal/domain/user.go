package domain

import "time"

type User struct {
	Email        string    `json:"email" dynamodbav:"email"`
	UserID       string    `json:"id" dynamodbav:"user_id"`
	Name         string    `json:"name" dynamodbav:"name"`
	PasswordHash string    `json:"-" dynamodbav:"password_hash"`
	Phone        string    `json:"phone" dynamodbav:"phone"`
	CreatedAt    time.Time `json:"created" dynamodbav:"created_at"`
}
