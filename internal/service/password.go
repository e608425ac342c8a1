// File: internal/service/password.go
package service

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// 測試可覆寫
var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// normalize 將密碼轉為 64 字元的 SHA-256 hex，避開 bcrypt 72 bytes 上限
func normalize(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(hex.EncodeToString(sum[:]))
}

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串
func HashPassword(password string, cost int) (string, error) {
	hashBytes, err := bcryptGenerateFromPassword(normalize(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword 比對明文密碼與 bcrypt 哈希，成功回傳 nil，失敗則回傳錯誤
func ComparePassword(hash, password string) error {
	return bcryptCompareHashAndPassword([]byte(hash), normalize(password))
}
