package errs

var (
	SystemError       = ErrorCode{Code: 607001, Msg: "系统错误"}
	InvalidInput      = ErrorCode{Code: 607002, Msg: "参数错误"}
	InterviewNotFound = ErrorCode{Code: 607003, Msg: "面试不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
