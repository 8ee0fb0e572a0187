package postgres

import (
	"encoding/json"
	"fmt"
)

// encodeJSON は JSONB カラムへ書き込む値をエンコードします。nil は JSON の null になります。
func encodeJSON(column string, v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("postgres: encode %s: %w", column, err)
	}
	return b, nil
}

func decodeJSON(column string, raw []byte, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("postgres: decode %s: %w", column, err)
	}
	return nil
}
