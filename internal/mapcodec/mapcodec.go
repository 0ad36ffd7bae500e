// Package mapcodec 在 YAML/JSON 文本、map[string]any 与结构体之间转换。
//
// key 统一使用 json tag，YAML 与 JSON 共享同一套 key。
package mapcodec

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	yamlv3 "go.yaml.in/yaml/v3"
)

// IsJSON 根据扩展名判断是否按 JSON 解析，其余一律按 YAML 解析。
func IsJSON(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".json")
}

// Parse 解析 YAML/JSON 文本，根节点必须是对象；空文档返回空 map。
func Parse(name string, content []byte) (map[string]any, error) {
	var (
		raw any
		err error
	)
	if IsJSON(name) {
		err = json.Unmarshal(content, &raw)
	} else {
		err = yamlv3.Unmarshal(content, &raw)
	}
	if err != nil {
		return nil, err
	}

	switch root := stringKeys(raw).(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return root, nil
	default:
		return nil, errors.New("document root must be an object")
	}
}

// stringKeys 递归地将 map[any]any 的 key 转为字符串。
func stringKeys(val any) any {
	switch typed := val.(type) {
	case map[string]any:
		for k, v := range typed {
			typed[k] = stringKeys(v)
		}

		return typed
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, v := range typed {
			out[fmt.Sprint(k)] = stringKeys(v)
		}

		return out
	case []any:
		for i, v := range typed {
			typed[i] = stringKeys(v)
		}

		return typed
	default:
		return val
	}
}

// Decode 将 map 解码到 out（指针），允许弱类型输入（如环境变量中的 "42"）。
//
// out 中已有的值只会被 data 中出现的 key 覆盖。
func Decode(data map[string]any, out any, hooks ...mapstructure.DecodeHookFunc) error {
	hooks = append(hooks,
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.TextUnmarshallerHookFunc(),
	)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(hooks...),
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
	})
	if err != nil {
		return err
	}

	return decoder.Decode(data)
}

// FromStruct 通过 JSON 往返将结构体转换为 map。
func FromStruct(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	out := map[string]any{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Merge 将 src 深度合并到 dst，src 优先。
func Merge(dst, src map[string]any) {
	for key, value := range src {
		if child, ok := value.(map[string]any); ok {
			if existing, ok := dst[key].(map[string]any); ok {
				Merge(existing, child)

				continue
			}
		}
		dst[key] = value
	}
}

// Set 按点分路径写入值，缺失的中间节点会被创建。
func Set(dst map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := dst
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

// Keys 按字典序返回所有叶子节点的点分路径。
func Keys(data map[string]any) []string {
	var keys []string
	collectKeys(data, "", &keys)
	slices.Sort(keys)

	return keys
}

func collectKeys(data map[string]any, prefix string, keys *[]string) {
	for key, value := range data {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		if child, ok := value.(map[string]any); ok && len(child) > 0 {
			collectKeys(child, full, keys)

			continue
		}
		*keys = append(*keys, full)
	}
}
