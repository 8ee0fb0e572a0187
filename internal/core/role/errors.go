package role

import "errors"

var (
	// ErrRoleNotFound はロールが存在しない場合に返却されます。
	ErrRoleNotFound = errors.New("role not found")
	// ErrTitleAlreadyExists はロール名重複時に返却されます。
	ErrTitleAlreadyExists = errors.New("role title already exists")
	// ErrInvalidTitle はロール名が不正な場合に返却されます。
	ErrInvalidTitle = errors.New("invalid title")
	// ErrInvalidExperience は必要経験年数が負の場合に返却されます。
	ErrInvalidExperience = errors.New("invalid required experience")
	// ErrInvalidID は ID が不正な場合に返却されます。
	ErrInvalidID = errors.New("invalid role id")
	// ErrInvalidPageSize は一覧取得時のページサイズが不正な場合に返却されます。
	ErrInvalidPageSize = errors.New("invalid page size")
	// ErrInvalidPageToken は一覧取得時のページトークンが不正な場合に返却されます。
	ErrInvalidPageToken = errors.New("invalid page token")
)
