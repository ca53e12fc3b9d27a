package helper

import "github.com/bytedance/sonic"

// Same codec Fiber is configured with.
func MarshalJSON(v any) ([]byte, error) { return sonic.Marshal(v) }

func UnmarshalJSON(data []byte, v any) error { return sonic.Unmarshal(data, v) }
