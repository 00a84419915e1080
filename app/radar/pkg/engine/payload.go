package engine

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/iWorld-y/compliance_radar/app/radar/pkg/model"
)

//go:embed payload.schema.json
var payloadSchema string

const payloadSchemaURL = "https://compliance-radar.local/payload.schema.json"

// ErrInvalidPayload 模型返回的内容无法解析或不符合结构约定
var ErrInvalidPayload = errors.New("invalid payload")

// newPayloadValidator 编译内嵌的 payload schema
func newPayloadValidator() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(payloadSchemaURL, strings.NewReader(payloadSchema)); err != nil {
		return nil, fmt.Errorf("add payload schema: %w", err)
	}
	return c.Compile(payloadSchemaURL)
}

// cleanJSON 去掉 markdown 代码块，截取第一个 '{' 到最后一个 '}'
func cleanJSON(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}

// parsePayload 解析并校验模型输出
func parsePayload(validator *jsonschema.Schema, raw string) (*model.Payload, error) {
	content := cleanJSON(raw)

	var doc any
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if err := validator.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	var p model.Payload
	if err := json.Unmarshal([]byte(content), &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	for i := range p.NewUpdates {
		for j := range p.NewUpdates[i].Parties {
			p.NewUpdates[i].Parties[j].Type = model.NormalizePartyType(p.NewUpdates[i].Parties[j].Type)
		}
	}
	if p.NewUpdates == nil {
		p.NewUpdates = []model.UpdateItem{}
	}
	return &p, nil
}
