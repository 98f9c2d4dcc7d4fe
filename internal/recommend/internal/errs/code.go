package errs

var (
	SystemError     = ErrorCode{Code: 605001, Msg: "系统错误"}
	InvalidInput    = ErrorCode{Code: 605002, Msg: "参数错误"}
	ProfileNotFound = ErrorCode{Code: 605003, Msg: "请先完善个人资料"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
