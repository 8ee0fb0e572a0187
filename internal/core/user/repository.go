package user

import "context"

// Repository はユーザーエンティティの永続化を行うインターフェースです。
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	Update(ctx context.Context, user *User) (*User, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, filter ListUsersFilter) ([]*User, string, error)
}

// ListUsersFilter は一覧取得時の条件です。
type ListUsersFilter struct {
	Limit      int
	Offset     int
	Status     *Status
	Department string
}

// SessionStore はログイン中ユーザーのレコードを保持します。
type SessionStore interface {
	CurrentUser(ctx context.Context) (*User, error)
	SetCurrentUser(ctx context.Context, user *User) error
}
