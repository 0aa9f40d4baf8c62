package models

type User struct {
	ID           string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string `gorm:"not null;type:varchar(100)" json:"name"`
	Email        string `json:"email" gorm:"type:varchar(255);unique;not null"`
	PasswordHash string `json:"-" gorm:"column:password_hash;type:varchar(255);not null"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
