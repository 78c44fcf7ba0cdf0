package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// fileName 配置文件名
const fileName = "bomberman.yaml"

// Load 加载配置，返回配置和实际使用的来源
// 查找顺序: customPath -> ~/.bomberman/configs/bomberman.yaml -> ./configs/bomberman.yaml -> 内置默认
// 只有显式指定的路径读取或解析失败才返回错误，其余位置失败时继续往下找
func Load(customPath string) (Config, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(customPath, data)
		if err != nil {
			return Config{}, "", err
		}
		return cfg, customPath, nil
	}

	candidates := []string{filepath.Join("configs", fileName)}
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(path, data); err == nil {
			return cfg, path, nil
		}
	}

	cfg, err := Parse(fileName, defaultYAML)
	if err != nil {
		return Default(), "builtin", nil
	}
	return cfg, "embedded", nil
}

// Parse 解析配置内容，.toml 结尾的文件按 TOML 解析，其余按 YAML 解析
// 文件中未出现的字段保留默认值
func Parse(name string, data []byte) (Config, error) {
	cfg := Default()
	var err error
	if strings.EqualFold(filepath.Ext(name), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", name, err)
	}
	return cfg, nil
}

// userConfigPath 用户配置目录下的文件路径，无法获取 home 时返回空
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bomberman", "configs", filename)
}
