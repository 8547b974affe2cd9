package employees

// Employee は社員名簿1件の正規形。upstream が返す分だけ持つ。
type Employee struct {
	ID             string `json:"id,omitempty"`
	Name           string `json:"name"`
	Department     string `json:"department,omitempty"`
	Branch         string `json:"branch,omitempty"`
	EmployeeStatus string `json:"employee_status,omitempty"`
}
