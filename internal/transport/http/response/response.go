package response

// ErrorBody 统一错误体：{"error": "..."}
type ErrorBody struct {
	Error string `json:"error"`
}

// Error 失败响应
func Error(msg string) ErrorBody { return ErrorBody{Error: msg} }

// ErrorCode 按状态码取默认文案，customMsg 非空时覆盖
func ErrorCode(code int, customMsg string) ErrorBody {
	msg := CodeMsgMap[code]
	if customMsg != "" {
		msg = customMsg
	}
	if msg == "" {
		msg = CodeMsgMap[CodeServerError]
	}
	return ErrorBody{Error: msg}
}
