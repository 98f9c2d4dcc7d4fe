package errs

var (
	SystemError  = ErrorCode{Code: 602001, Msg: "系统错误"}
	InvalidInput = ErrorCode{Code: 602002, Msg: "参数错误"}
	JobNotFound  = ErrorCode{Code: 602003, Msg: "职位不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
