package config

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"time"

	yamlv3 "go.yaml.in/yaml/v3"
)

const exampleHeader = "配置示例文件, 复制此文件为 .apris.yaml 并根据需要修改"

// ExampleYAML 根据配置结构体生成带注释的 YAML 示例。
//
// key 取自 json tag，注释取自 desc tag；嵌套结构体的注释写在 key 上方。
func ExampleYAML(cfg any) ([]byte, error) {
	return Render(cfg, exampleHeader)
}

// Render 与 [ExampleYAML] 相同，但使用指定的文件头注释（为空时省略）。
func Render(cfg any, header string) ([]byte, error) {
	root := &yamlv3.Node{Kind: yamlv3.MappingNode}
	if err := appendFields(root, reflect.ValueOf(cfg)); err != nil {
		return nil, err
	}
	doc := &yamlv3.Node{Kind: yamlv3.DocumentNode, HeadComment: header, Content: []*yamlv3.Node{root}}

	var buf bytes.Buffer
	enc := yamlv3.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("config: render yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("config: render yaml: %w", err)
	}

	return buf.Bytes(), nil
}

func appendFields(m *yamlv3.Node, val reflect.Value) error {
	if val.Kind() == reflect.Pointer {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("config: render yaml: want a struct, got %s", val.Kind())
	}

	typ := val.Type()
	for i := range typ.NumField() {
		field := typ.Field(i)
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if !field.IsExported() || name == "" || name == "-" {
			continue
		}

		key := &yamlv3.Node{Kind: yamlv3.ScalarNode, Value: name}
		desc := field.Tag.Get("desc")
		fv := val.Field(i)

		if isStruct(field.Type) {
			child := &yamlv3.Node{Kind: yamlv3.MappingNode}
			if err := appendFields(child, fv); err != nil {
				return err
			}
			key.HeadComment = desc
			m.Content = append(m.Content, key, child)

			continue
		}

		value, err := scalarNode(fv)
		if err != nil {
			return fmt.Errorf("config: render %s: %w", name, err)
		}
		value.LineComment = desc
		m.Content = append(m.Content, key, value)
	}

	return nil
}

func isStruct(typ reflect.Type) bool {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	return typ.Kind() == reflect.Struct && typ != reflect.TypeFor[time.Time]()
}

func scalarNode(val reflect.Value) (*yamlv3.Node, error) {
	if d, ok := val.Interface().(time.Duration); ok {
		return &yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!str", Value: d.String()}, nil
	}
	if val.Kind() == reflect.String {
		return &yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!str", Style: yamlv3.SingleQuotedStyle, Value: val.String()}, nil
	}

	node := &yamlv3.Node{}
	if err := node.Encode(val.Interface()); err != nil {
		return nil, err
	}

	return node, nil
}
