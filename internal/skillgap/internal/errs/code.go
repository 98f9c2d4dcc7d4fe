package errs

var (
	SystemError      = ErrorCode{Code: 603001, Msg: "系统错误"}
	InvalidInput     = ErrorCode{Code: 603002, Msg: "目标职位不能为空"}
	AnalysisNotFound = ErrorCode{Code: 603003, Msg: "技能差距分析不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
