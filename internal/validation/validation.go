// Package validation содержит проверки пользовательского ввода клиента
package validation

import (
	"fmt"
	"regexp"
)

// EmailPattern определяет допустимый формат email.
// Проверка намеренно грубая: окончательная валидация на стороне upstream
var EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// SlugPattern определяет формат slug категории:
// строчные латинские буквы, цифры и дефис
var SlugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

const (
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 8
	// MaxQuantity верхняя граница количества в одной позиции корзины
	MaxQuantity = 99
)

// ValidateEmail проверяет, что строка похожа на email
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}

	return nil
}

// ValidatePassword проверяет минимальные требования к паролю
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	return nil
}

// ValidateQuantity проверяет количество для позиции корзины
func ValidateQuantity(quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}

	if quantity > MaxQuantity {
		return fmt.Errorf("quantity must not exceed %d", MaxQuantity)
	}

	return nil
}

// ValidateSlug проверяет формат slug категории
func ValidateSlug(slug string) error {
	if slug == "" {
		return fmt.Errorf("slug cannot be empty")
	}

	if !SlugPattern.MatchString(slug) {
		return fmt.Errorf("slug can only contain lowercase letters, numbers, and hyphens")
	}

	return nil
}
