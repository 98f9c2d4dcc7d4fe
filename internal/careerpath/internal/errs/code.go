package errs

var (
	SystemError  = ErrorCode{Code: 604001, Msg: "系统错误"}
	InvalidInput = ErrorCode{Code: 604002, Msg: "目标职位不能为空"}
	PathNotFound = ErrorCode{Code: 604003, Msg: "职业路径不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
