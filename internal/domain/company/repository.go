package company

import "context"

type CompanyRepository interface {
	List(ctx context.Context) ([]Company, error)
}
