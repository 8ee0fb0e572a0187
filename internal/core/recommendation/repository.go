package recommendation

import "context"

// Repository はレコメンデーションの永続化を行うインターフェースです。
type Repository interface {
	Create(ctx context.Context, rec *Recommendation) (*Recommendation, error)
	Update(ctx context.Context, rec *Recommendation) (*Recommendation, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Recommendation, error)
	FindByEmployeeAndRole(ctx context.Context, employeeID, roleID string) (*Recommendation, error)
	List(ctx context.Context, filter ListRecommendationsFilter) ([]*Recommendation, string, error)
}

// ListRecommendationsFilter は一覧取得時の条件です。
type ListRecommendationsFilter struct {
	EmployeeID string
	Status     *Status
	Limit      int
	Offset     int
}
