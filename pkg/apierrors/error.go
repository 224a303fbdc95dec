package apierrors

import (
	"errors"
	"fmt"

	"nestodo/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
)

// JsonErr is the body of every error response.
type JsonErr struct {
	ErrDetails Err `json:"error"`
}

type Err struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.ErrDetails.Code, e.ErrDetails.Message)
}

// CreateError builds a JsonErr whose message is msgKey translated to lang.
// An optional data map fills template fields of the message.
func CreateError(code int, msgKey string, lang string, data ...map[string]interface{}) JsonErr {
	return JsonErr{ErrDetails: Err{code, GetTransErrorMsg(msgKey, lang, data...)}}
}

// GetTransErrorMsg translates msgKey, falling back to English and then to
// the key itself.
func GetTransErrorMsg(msgKey string, lang string, data ...map[string]interface{}) string {
	l := i18n.NewLocalizer(translator.Translator, lang, translator.LanguageEn)
	m := i18n.LocalizeConfig{MessageID: msgKey}
	if len(data) > 0 {
		m.TemplateData = data[0]
	}
	msg, err := l.Localize(&m)
	if err == nil {
		return msg
	}
	zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
	var notFound *i18n.MessageNotFoundErr
	if msg != "" && errors.As(err, &notFound) {
		return msg
	}
	return msgKey
}
