package handler

import "encoding/json"

// jsonCodec はprotobufを使わずにGoの構造体をそのままJSONでやり取りするConnectのコーデックです
// "json" という名前で登録し、application/json のリクエストを扱います
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
