package model

// ResultStatus 操作結果等級。warning 不是錯誤：重複掃描屬於「已完成、無害」，
// 掃描端要能和 success、error 分開顯示（綠/黃/紅）。
type ResultStatus string

const (
	StatusSuccess ResultStatus = "success"
	StatusWarning ResultStatus = "warning"
	StatusError   ResultStatus = "error"
)

// Result 帶訊息的操作結果，action 類 API 的回應主體
type Result struct {
	Status  ResultStatus `json:"status"`
	Message string       `json:"message"`
}

func Success(message string) *Result {
	return &Result{Status: StatusSuccess, Message: message}
}

func Warning(message string) *Result {
	return &Result{Status: StatusWarning, Message: message}
}
