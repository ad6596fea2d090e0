package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword 生成带随机盐的 bcrypt 哈希（cost 默认 10）
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword bcrypt 内部做恒定时间比较
func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
