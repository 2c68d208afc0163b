package common

// SessionCookieName is the cookie that carries the signed session token.
const SessionCookieName = "DREAMJOB_SESSION"

// GuestName is shown in place of a user name for anonymous visitors.
const GuestName = "Гость"

// User-facing messages rendered by the web layer.
const (
	MessageEmailTaken        = "Пользователь с такой почтой уже существует"
	MessageBadCredentials    = "Почта или пароль введены неверно"
	MessageVacancyNotFound   = "Вакансия с указанным идентификатором не найдена"
	MessageVacancyNotUpdated = "Вакансия с указанным идентификатором не найдена, обновление невозможно"
	MessageInvalidForm       = "Проверьте правильность заполнения формы"
	MessageInternal          = "Внутренняя ошибка сервера, попробуйте позже"
)
