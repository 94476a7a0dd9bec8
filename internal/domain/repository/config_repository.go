package repository

import (
	"github.com/diillson/aws-costbot-go/internal/shared/types"
)

// ConfigRepository loads report defaults from a TOML, YAML or JSON file.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
}
