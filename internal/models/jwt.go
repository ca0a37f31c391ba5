package models

import "github.com/golang-jwt/jwt/v5"

type Claims struct {
	AdminID uint   `json:"adminId"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}
