package apierrors_test

import (
	"os"
	"testing"

	"nestodo/pkg/apierrors"
	"nestodo/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMain(m *testing.M) {
	translator.Translator = i18n.NewBundle(language.English)
	translator.Translator.MustAddMessages(language.English,
		&i18n.Message{ID: "test_key", Other: "Test message"},
		&i18n.Message{ID: "too_big", Other: "Limit is {{.Max}} bytes"},
		&i18n.Message{ID: "english_only", Other: "Only in English"},
	)
	translator.Translator.MustAddMessages(language.French,
		&i18n.Message{ID: "test_key", Other: "Message de test"},
	)
	os.Exit(m.Run())
}

func TestCreateError_ReturnsJsonErr(t *testing.T) {
	err := apierrors.CreateError(400, "test_key", "en")
	assert.Equal(t, 400, err.ErrDetails.Code)
	assert.Equal(t, "Test message", err.ErrDetails.Message)
}

func TestCreateError_Translates(t *testing.T) {
	err := apierrors.CreateError(404, "test_key", "fr")
	assert.Equal(t, "Message de test", err.ErrDetails.Message)
}

func TestCreateError_FillsTemplateData(t *testing.T) {
	err := apierrors.CreateError(413, "too_big", "en", map[string]interface{}{"Max": 10})
	assert.Equal(t, "Limit is 10 bytes", err.ErrDetails.Message)
}

func TestGetTransErrorMsg_FallsBackToEnglish(t *testing.T) {
	assert.Equal(t, "Only in English", apierrors.GetTransErrorMsg("english_only", "fr"))
}

func TestGetTransErrorMsg_FallbackToKey(t *testing.T) {
	assert.Equal(t, "unknown_key", apierrors.GetTransErrorMsg("unknown_key", "en"))
}

func TestJsonErr_ErrorMethod(t *testing.T) {
	err := apierrors.CreateError(500, "test_key", "en")
	assert.Equal(t, "Code: 500, Message: Test message", err.Error())
}

func TestGetTransErrorMsg_FallsBackToEnglishTemplate(t *testing.T) {
	msg := apierrors.GetTransErrorMsg("too_big", "fr", map[string]interface{}{"Max": 42})
	assert.Equal(t, "Limit is 42 bytes", msg)
}
