package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/aws-costbot-go/internal/domain/repository"
	"github.com/diillson/aws-costbot-go/internal/shared/types"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

type decoder struct {
	format    string
	unmarshal func(data []byte, v interface{}) error
}

// decoders por extensão de arquivo.
var decoders = map[string]decoder{
	".toml": {format: "TOML", unmarshal: toml.Unmarshal},
	".yaml": {format: "YAML", unmarshal: yaml.Unmarshal},
	".yml":  {format: "YAML", unmarshal: yaml.Unmarshal},
	".json": {format: "JSON", unmarshal: json.Unmarshal},
}

// FileConfigRepository carrega os defaults do relatório de um arquivo.
type FileConfigRepository struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &FileConfigRepository{}
}

// LoadConfigFile reads report defaults from a TOML, YAML or JSON file.
// ${VAR} references are expanded from the environment first, so a webhook URL
// can stay out of the file.
func (r *FileConfigRepository) LoadConfigFile(filePath string) (*types.Config, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	dec, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported config file format: %s (use .toml, .yaml, .yml or .json)", ext)
	}

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg types.Config
	if err := dec.unmarshal([]byte(os.ExpandEnv(string(raw))), &cfg); err != nil {
		return nil, fmt.Errorf("error parsing %s file %s: %w", dec.format, filePath, err)
	}
	normalize(&cfg)
	return &cfg, nil
}

// normalize lowercases the enumerated options; grouping tokens keep their
// case because tag keys are case-sensitive.
func normalize(c *types.Config) {
	c.Group1 = strings.TrimSpace(c.Group1)
	c.Group2 = strings.TrimSpace(c.Group2)
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	c.Granularity = strings.ToLower(strings.TrimSpace(c.Granularity))
	for i, t := range c.ReportType {
		c.ReportType[i] = strings.ToLower(strings.TrimSpace(t))
	}
}
