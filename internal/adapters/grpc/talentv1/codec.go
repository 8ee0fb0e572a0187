// Package talentv1 は talent.v1 の gRPC サービス定義とワイヤメッセージです。
//
// メッセージは JSON でエンコードされ、content-subtype "json" のコーデックで送受信されます。
// protobuf メッセージ (ヘルスチェックなど) は protojson で扱います。
package talentv1

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// Name はコーデック名で、content-subtype として使われます。
const Name = "json"

type codec struct{}

func (codec) Marshal(v any) ([]byte, error) {
	if m, ok := v.(proto.Message); ok {
		return protojson.Marshal(m)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("talentv1: marshal %T: %w", v, err)
	}
	return b, nil
}

func (codec) Unmarshal(data []byte, v any) error {
	if m, ok := v.(proto.Message); ok {
		return protojson.UnmarshalOptions{DiscardUnknown: true}.Unmarshal(data, m)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("talentv1: unmarshal %T: %w", v, err)
	}
	return nil
}

func (codec) Name() string {
	return Name
}

func init() {
	encoding.RegisterCodec(codec{})
}
