package recommendation

import "errors"

var (
	// ErrRecommendationNotFound はレコメンデーションが存在しない場合に返却されます。
	ErrRecommendationNotFound = errors.New("recommendation: not found")
	// ErrAlreadyExists は同じ社員・ロールの組み合わせが既に存在する場合に返却されます。
	ErrAlreadyExists = errors.New("recommendation: already exists for employee and role")
	// ErrItemNotFound は学習アイテムが存在しない場合に返却されます。
	ErrItemNotFound = errors.New("recommendation: learning item not found")
	// ErrInvalidTransition は許可されていない状態遷移の場合に返却されます。
	ErrInvalidTransition = errors.New("recommendation: invalid status transition")
	// ErrInvalidStatus は状態が不正な場合に返却されます。
	ErrInvalidStatus = errors.New("recommendation: invalid status")
	// ErrInvalidProgress は進捗が 0〜100 の範囲外の場合に返却されます。
	ErrInvalidProgress = errors.New("recommendation: progress must be between 0 and 100")
	// ErrInvalidTimeline はタイムラインが 1〜60 ヶ月の範囲外の場合に返却されます。
	ErrInvalidTimeline = errors.New("recommendation: timeline must be between 1 and 60 months")
	// ErrInvalidConfidence は確度が 0〜1 の範囲外の場合に返却されます。
	ErrInvalidConfidence = errors.New("recommendation: confidence must be between 0 and 1")
	// ErrInvalidID は ID が不正な場合に返却されます。
	ErrInvalidID = errors.New("recommendation: invalid id")
	// ErrInvalidEmployeeID は社員 ID が不正な場合に返却されます。
	ErrInvalidEmployeeID = errors.New("recommendation: invalid employee id")
	// ErrInvalidRole は目標ロールが指定されていない場合に返却されます。
	ErrInvalidRole = errors.New("recommendation: invalid target role")
	// ErrInvalidPageSize はページサイズが不正な場合に返却されます。
	ErrInvalidPageSize = errors.New("recommendation: invalid page size")
	// ErrInvalidPageToken はページトークンが不正な場合に返却されます。
	ErrInvalidPageToken = errors.New("recommendation: invalid page token")
)
