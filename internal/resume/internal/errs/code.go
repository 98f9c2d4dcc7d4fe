package errs

var (
	SystemError      = ErrorCode{Code: 608001, Msg: "系统错误"}
	InvalidInput     = ErrorCode{Code: 608002, Msg: "参数错误"}
	TemplateNotFound = ErrorCode{Code: 608003, Msg: "简历模板不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
