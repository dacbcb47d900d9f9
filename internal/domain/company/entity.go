package company

type Company struct {
	ID   int64  `json:"company_id"`
	Name string `json:"company_name"`
}
