package course

import "context"

// Repository はコース永続化の抽象です。
type Repository interface {
	Create(ctx context.Context, course *Course) (*Course, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Course, error)
	List(ctx context.Context, filter ListCoursesFilter) ([]*Course, string, error)
}

// ListCoursesFilter は一覧取得用フィルタです。Skill は大文字小文字を区別しません。
type ListCoursesFilter struct {
	Skill  string
	Limit  int
	Offset int
}
