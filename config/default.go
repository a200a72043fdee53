package config

import _ "embed"

// DefaultConfigYAML 内置默认配置，外部 config.yaml 可覆盖其中任意项
//
//go:embed default.yaml
var DefaultConfigYAML []byte
