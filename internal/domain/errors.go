package domain

import "errors"

var (
	// ErrNotFound — запись отсутствует в удалённом сервисе.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable — удалённый сервис недоступен (сеть, таймаут, 5xx).
	ErrUnavailable = errors.New("remote service unavailable")
	// ErrEmptyQuery — пустое имя/id в запросе.
	ErrEmptyQuery = errors.New("empty name or id")
)
