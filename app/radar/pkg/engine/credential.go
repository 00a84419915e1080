package engine

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrMissingAPIKey 所有候选环境变量和配置都没有凭证
	ErrMissingAPIKey = errors.New("missing API key")
	// ErrInvalidAPIKey 凭证为空白或占位符
	ErrInvalidAPIKey = errors.New("invalid API key format")
)

const placeholderKey = "YOUR_API_KEY"

// Credential 解析后的凭证及其来源
type Credential struct {
	Key    string
	Source string
}

// Masked 仅保留前 4 位和长度，用于日志
func (c Credential) Masked() string {
	prefix := c.Key
	if len(prefix) > 4 {
		prefix = prefix[:4]
	}
	return fmt.Sprintf("%s... (len=%d)", prefix, len(c.Key))
}

// ResolveAPIKey 按优先级依次查找环境变量，均未设置时使用 fallback
func ResolveAPIKey(names []string, fallback string, lookup func(string) (string, bool)) (Credential, error) {
	var cred Credential
	for _, name := range names {
		if v, ok := lookup(name); ok && v != "" {
			cred = Credential{Key: v, Source: name}
			break
		}
	}
	if cred.Source == "" {
		if fallback == "" {
			return Credential{}, fmt.Errorf("%w: checked %s", ErrMissingAPIKey, strings.Join(names, ", "))
		}
		cred = Credential{Key: fallback, Source: "config"}
	}

	cred.Key = sanitizeKey(cred.Key)
	if cred.Key == "" || strings.Contains(cred.Key, placeholderKey) {
		return Credential{}, fmt.Errorf("%w: from %s", ErrInvalidAPIKey, cred.Source)
	}
	return cred, nil
}

// sanitizeKey 去掉引号和所有空白字符
func sanitizeKey(key string) string {
	return strings.Map(func(r rune) rune {
		if r == '\'' || r == '"' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, key)
}
