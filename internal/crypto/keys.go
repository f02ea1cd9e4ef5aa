package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"strings"
)

// LoadOrCreateDeviceKey возвращает ключ шифрования устройства.
// Ключ генерируется при первом запуске и хранится в файле рядом
// с локальной базой с правами 0600. Токены, зашифрованные этим
// ключом, нельзя прочитать скопировав одну только базу.
func LoadOrCreateDeviceKey(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		key, decodeErr := base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
		if decodeErr != nil {
			return nil, fmt.Errorf("failed to decode device key: %w", decodeErr)
		}
		if len(key) != KeySize {
			return nil, fmt.Errorf("device key must be %d bytes, got %d", KeySize, len(key))
		}
		return key, nil
	}

	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read device key: %w", err)
	}

	// Первый запуск: генерируем новый ключ
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate device key: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(key)
	if err := os.WriteFile(path, []byte(encoded+"\n"), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write device key: %w", err)
	}

	return key, nil
}
