package errs

var (
	SystemError = ErrorCode{Code: 601001, Msg: "系统错误"}
	// InvalidInput 例如沟通风格不合法
	InvalidInput    = ErrorCode{Code: 601002, Msg: "参数错误"}
	ProfileNotFound = ErrorCode{Code: 601003, Msg: "个人资料不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
