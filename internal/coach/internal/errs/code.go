package errs

var (
	SystemError     = ErrorCode{Code: 606001, Msg: "系统错误"}
	InvalidInput    = ErrorCode{Code: 606002, Msg: "参数错误"}
	SessionNotFound = ErrorCode{Code: 606003, Msg: "会话不存在"}
	SessionClosed   = ErrorCode{Code: 606004, Msg: "会话已经结束"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
