// Package config は yaml 設定ファイルと環境変数を読み込む。
// 環境変数が設定されていればファイルの値より優先する（トークン類は基本こちら）。
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Endpoint struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token"`
}

type Certs struct {
	Cert string `yaml:"cert"`
	Key  string `yaml:"key"`
}

type Config struct {
	Version string `yaml:"version"`
	Mode    string `yaml:"mode"`

	HTTP struct {
		Addr string `yaml:"addr"`
	} `yaml:"http"`

	Certificate Certs `yaml:"certificate"`

	Upstream struct {
		Asset    Endpoint `yaml:"asset"`
		Borrow   Endpoint `yaml:"borrow"`
		Employee Endpoint `yaml:"employee"`
	} `yaml:"upstream"`

	Auth struct {
		Secret       string `yaml:"secret"`
		Email        string `yaml:"email"`
		PasswordHash string `yaml:"password_hash"` // bcrypt ハッシュ
	} `yaml:"auth"`
}

func Load(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("設定ファイルの読み込み失敗: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, fmt.Errorf("設定ファイルのパース失敗: %w", err)
	}
	cfg.applyEnv()

	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8443"
	}
	if cfg.Upstream.Asset.URL == "" || cfg.Upstream.Borrow.URL == "" {
		return nil, fmt.Errorf("upstream の asset / borrow URL は必須")
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	override(&c.Upstream.Asset.URL, "ASSET_API_URL")
	override(&c.Upstream.Asset.Token, "ASSET_API_TOKEN")
	override(&c.Upstream.Borrow.URL, "BORROW_API_URL")
	override(&c.Upstream.Borrow.Token, "BORROW_API_TOKEN")
	override(&c.Upstream.Employee.URL, "EMPLOYEE_API_URL")
	override(&c.Upstream.Employee.Token, "EMPLOYEE_API_TOKEN")
	override(&c.Auth.Secret, "JWT_SECRET")
	override(&c.Auth.Email, "ADMIN_EMAIL")
	override(&c.Auth.PasswordHash, "ADMIN_PASSWORD_HASH")
}

func override(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
