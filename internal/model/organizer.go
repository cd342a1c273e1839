package model

// Organizer 工作人員帳號。密碼欄位可能是 bcrypt hash，也可能是舊的明文。
// 此服務只讀取，不建立、不修改。
type Organizer struct {
	Email    string `json:"email" db:"email"`
	Name     string `json:"name" db:"name"`
	Password string `json:"-" db:"password"`
	IsAdmin  bool   `json:"is_admin" db:"is_admin"`
}
