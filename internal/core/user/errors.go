package user

import "errors"

var (
	// ErrUserNotFound はユーザーが存在しない場合に返却されます。
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailAlreadyExists はメールアドレス重複時に返却されます。
	ErrEmailAlreadyExists = errors.New("email already exists")
	// ErrInvalidEmail はメールアドレスが不正な場合に返却されます。
	ErrInvalidEmail = errors.New("invalid email")
	// ErrInvalidName は名前が不正な場合に返却されます。
	ErrInvalidName = errors.New("invalid name")
	// ErrInvalidStatus はステータスが不正な場合に返却されます。
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidID はIDが不正な場合に返却されます。
	ErrInvalidID = errors.New("invalid id")
	// ErrInvalidPerformance はパフォーマンス評価が 1〜5 の範囲外の場合に返却されます。
	ErrInvalidPerformance = errors.New("performance must be between 1 and 5")
	// ErrInvalidPotential はポテンシャル評価が 1〜5 の範囲外の場合に返却されます。
	ErrInvalidPotential = errors.New("potential must be between 1 and 5")
	// ErrInvalidExperience は経験年数が負の場合に返却されます。
	ErrInvalidExperience = errors.New("experience must be zero or greater")
	// ErrInvalidPageSize はページサイズが不正な場合に返却されます。
	ErrInvalidPageSize = errors.New("invalid page size")
	// ErrInvalidPageToken はページトークンが不正な場合に返却されます。
	ErrInvalidPageToken = errors.New("invalid page token")
	// ErrNoCurrentUser はカレントユーザーが未設定の場合に返却されます。
	ErrNoCurrentUser = errors.New("no current user")
	// ErrSessionUnavailable はセッションストアが構成されていない場合に返却されます。
	ErrSessionUnavailable = errors.New("session store unavailable")
)
