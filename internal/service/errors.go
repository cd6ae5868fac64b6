package service

import "errors"

var (
	// ErrNotFound - идентификатор инцидента, назначения или спасателя не найден
	ErrNotFound = errors.New("not found")
	// ErrInvalidState - переход недопустим из текущего статуса
	ErrInvalidState = errors.New("invalid state")
	// ErrInvalidArgument - не передан обязательный ключ корреляции или аргумент некорректен
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUpstreamUnavailable - отказ геокодера или сервиса маршрутов
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
