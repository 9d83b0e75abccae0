package dashboard

import (
	"errors"

	"regime-dashboard/internal/data"
)

const (
	errorTitle     = "Error Loading Data"
	errorMessageKO = "데이터 파일을 불러오는 데 실패했습니다. 봇이 아직 실행되지 않았거나 경로가 잘못되었습니다."
	errorMessageEN = "Failed to load the data files. The bot has not run yet, or the data path is wrong."
)

// ErrorCode is the single user-facing failure kind.
const ErrorCode = "LOAD_OR_RENDER_FAILURE"

// ErrorView is the static panel that replaces the page body on failure.
type ErrorView struct {
	Title     string `json:"title"`
	Message   string `json:"message"`
	MessageEN string `json:"message_en"`
	Detail    string `json:"detail"`
}

func NewErrorView(err error) ErrorView {
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	return ErrorView{
		Title:     errorTitle,
		Message:   errorMessageKO,
		MessageEN: errorMessageEN,
		Detail:    detail,
	}
}

// IsLoadError reports whether err came from fetching or decoding the
// documents rather than from rendering them.
func IsLoadError(err error) bool {
	var lerr *data.LoadError
	return errors.As(err, &lerr)
}
