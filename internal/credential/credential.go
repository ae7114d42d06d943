// Package credential хеширует пароли и распознаёт пароли,
// сохранённые открытым текстом до появления хеширования.
package credential

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Result - итог проверки пароля
type Result int

const (
	// Mismatch - пароль не подошёл
	Mismatch Result = iota
	// Match - пароль совпал с bcrypt-хешем
	Match
	// LegacyMatch - сохранено открытым текстом и совпало; запись нужно перехешировать
	LegacyMatch
)

// Hasher хеширует и проверяет пароли
type Hasher struct {
	cost int
}

// NewHasher создаёт Hasher; некорректная стоимость заменяется на bcrypt.DefaultCost
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash возвращает bcrypt-хеш пароля
func (h *Hasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify сравнивает пароль с сохранённым значением.
// Сначала проверяется хеш, затем совпадение с открытым текстом.
// Значение, которое уже является хешем, с открытым текстом не сравнивается.
func (h *Hasher) Verify(stored, plain string) Result {
	if plain == "" || stored == "" {
		return Mismatch
	}
	if bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil {
		return Match
	}
	if IsHash(stored) {
		return Mismatch
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(plain)) == 1 {
		return LegacyMatch
	}
	return Mismatch
}

// IsHash сообщает, похоже ли сохранённое значение на bcrypt-хеш
func IsHash(stored string) bool {
	_, err := bcrypt.Cost([]byte(stored))
	return err == nil
}
