package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для доменных ошибок
маркетплейса: пользователи, объявления, сообщения.
*/

// =========================================================================
// Фабричные функции
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error, message string) *AppError {
	return Wrap(err, CodeNotFound, "resource", message, http.StatusNotFound)
}

// ErrInvalidStatus - фабрика для невалидных переходов статуса (400)
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Предопределенные переменные
// =========================================================================

// --- Users & Auth ---

// ErrEmailAlreadyExists - регистрация с занятым email.
// Клиент ожидает 400 "User already exists", а не 409.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"users",
	"User already exists",
	http.StatusBadRequest,
)

// ErrInvalidCredentials - неверная пара email/пароль.
// На логине отвечаем 400: клиент разбирает его как ошибку формы.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusBadRequest,
)

// ErrUserNotFound - subject токена не резолвится в пользователя
var ErrUserNotFound = New(
	CodeNotFound,
	"users",
	"User not found",
	http.StatusNotFound,
)

// ErrInvalidToken - подпись не сошлась или токен истек
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid token",
	http.StatusUnauthorized,
)

// ErrInvalidUserRole - роль вне enum (company|influencer)
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"users",
	"Invalid user role",
	http.StatusBadRequest,
)

// --- Ads ---

// ErrAdNotFound - объявление не найдено
var ErrAdNotFound = New(
	CodeNotFound,
	"ads",
	"Ad not found",
	http.StatusNotFound,
)

// ErrAdNotPending - accept/reject по объявлению, которое уже не pending
var ErrAdNotPending = New(
	CodeInvalidStatus,
	"ads",
	"Ad is already accepted or rejected",
	http.StatusBadRequest,
)

// ErrProofAlreadySubmitted - proof пишется один раз
var ErrProofAlreadySubmitted = New(
	CodeAlreadyExists,
	"ads",
	"Proof has already been submitted for this ad",
	http.StatusBadRequest,
)

// ErrNotAdOwner - удаление чужого объявления
var ErrNotAdOwner = New(
	CodeForbidden,
	"ads",
	"You are not authorized to delete this ad",
	http.StatusForbidden,
)

// ErrNotAdAcceptor - proof может прислать только принявший инфлюенсер
var ErrNotAdAcceptor = New(
	CodeForbidden,
	"ads",
	"You are not authorized to submit proof for this ad",
	http.StatusForbidden,
)
