package role

import "context"

// Repository はロールエンティティの永続化を行うインターフェースです。
type Repository interface {
	Create(ctx context.Context, role *Role) (*Role, error)
	Update(ctx context.Context, role *Role) (*Role, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Role, error)
	// FindByTitle は大文字小文字を区別せずにロール名で検索します。
	FindByTitle(ctx context.Context, title string) (*Role, error)
	List(ctx context.Context, filter ListRolesFilter) ([]*Role, string, error)
}

// ListRolesFilter は一覧取得時の検索条件を表します。
type ListRolesFilter struct {
	Limit      int
	Offset     int
	Department string
}
