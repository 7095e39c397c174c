package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// maxBodySize ограничение тела запроса
const maxBodySize = 1 << 20

const msgInternalError = "внутренняя ошибка сервера"

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	Field string `json:"field,omitempty"`
}

// DecodeJSON читает JSON тело запроса в v
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// RespondJSON пишет data в формате JSON с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondError пишет ошибку с сообщением
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Сообщения нарушений бизнес-правил
var businessMessages = map[domain.ErrorCode]string{
	domain.CodeTimeWindowInvalid:     "запись возможна только на время от текущего момента до конца горизонта записи",
	domain.CodeSlotTaken:             "выбранное время уже занято",
	domain.CodeEmailConflict:         "email уже используется другим клиентом",
	domain.CodePhoneConflict:         "телефон уже используется другим клиентом",
	domain.CodeNameConflict:          "email и телефон принадлежат клиенту с другим именем",
	domain.CodeUsernameConflict:      "клиент уже привязан к другому аккаунту",
	domain.CodeStartAfterEnd:         "время начала должно быть раньше времени окончания",
	domain.CodeOverlappingRange:      "диапазон пересекается с другим диапазоном этого дня",
	domain.CodeServiceNameConflict:   "услуга с таким названием уже существует",
	domain.CodeUsernameTaken:         "имя пользователя уже занято",
	domain.CodePasswordMismatch:      "пароли не совпадают",
	domain.CodeOldPasswordIncorrect:  "неверный текущий пароль",
	domain.CodeCustomerNotFound:      "у аккаунта нет профиля клиента",
	domain.CodeDefaultOwnerProtected: "аккаунт владельца по умолчанию нельзя удалить",
}

// BusinessErrorStatus HTTP статус нарушения бизнес-правила
func BusinessErrorStatus(code domain.ErrorCode) int {
	switch code {
	case domain.CodeTimeWindowInvalid, domain.CodeStartAfterEnd,
		domain.CodePasswordMismatch, domain.CodeOldPasswordIncorrect:
		return http.StatusBadRequest
	case domain.CodeCustomerNotFound, domain.CodeDefaultOwnerProtected:
		return http.StatusForbidden
	default:
		return http.StatusConflict
	}
}

// RespondBusinessError отвечает кодом нарушения, если err - бизнес-ошибка.
// Возвращает false, если err не бизнес-ошибка и ответ не записан.
func RespondBusinessError(w http.ResponseWriter, err error) bool {
	be, ok := domain.AsBusinessError(err)
	if !ok {
		return false
	}

	message, found := businessMessages[be.Code]
	if !found {
		message = string(be.Code)
	}

	RespondJSON(w, BusinessErrorStatus(be.Code), ErrorResponse{
		Error: message,
		Code:  string(be.Code),
		Field: be.Field,
	})
	return true
}
