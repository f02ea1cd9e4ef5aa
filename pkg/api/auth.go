package api

// LoginRequest представляет запрос на аутентификацию в upstream API
type LoginRequest struct {
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль (передается только по TLS)
}

// TokenResponse представляет ответ upstream API с парой токенов
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`  // bearer access token (opaque для клиента)
	RefreshToken string `json:"refreshToken"` // bearer refresh token
	ExpiresIn    int64  `json:"expiresIn"`    // время жизни access token в секундах
}

// ProfileResponse представляет профиль пользователя с его permissions
type ProfileResponse struct {
	ID          string   `json:"id"`          // UUID пользователя
	Email       string   `json:"email"`       // email
	Name        string   `json:"name"`        // отображаемое имя
	Permissions []string `json:"permissions"` // permission строки, включая wildcard (shop.*)
}

// PermissionsResponse представляет ответ upstream API со списком
// permissions текущего пользователя
type PermissionsResponse struct {
	Permissions []string `json:"permissions"`
}

// ErrorDetail содержит описание ошибки
type ErrorDetail struct {
	Message string `json:"message"` // человекочитаемое сообщение
}

// ErrorResponse представляет JSON envelope для ошибок gateway
// Формат: {"error":{"message":"..."}}
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// RevalidateResponse представляет ответ на инвалидацию cache tag
type RevalidateResponse struct {
	Timestamp   string `json:"timestamp"`             // время инвалидации (RFC3339)
	Revalidated string `json:"revalidated,omitempty"` // имя инвалидированного тега
	Success     bool   `json:"success"`
}
