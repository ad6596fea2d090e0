package domain

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"size:64;not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(u *User) error
	FindByID(id string) (*User, error)
	FindByEmail(email string) (*User, error)
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateNewUser 注册入参校验；password 只在这里见到明文
func ValidateNewUser(name, email, password string) error {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return Invalid("name", "please provide name")
	case utf8.RuneCountInString(name) < 3 || utf8.RuneCountInString(name) > 50:
		return Invalid("name", "name must be 3-50 characters")
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return Invalid("email", "please provide email")
	}
	if !emailRe.MatchString(email) {
		return Invalid("email", "please provide a valid email")
	}
	if len(password) < 3 {
		return Invalid("password", "password must be at least 3 characters")
	}
	// bcrypt 只吃前 72 字节，超长直接拒绝而不是静默截断
	if len(password) > 72 {
		return Invalid("password", "password must be at most 72 bytes")
	}
	return nil
}
