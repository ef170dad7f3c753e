package config

import (
	"encoding/json"
	"os"
	"sync"

	"clinicship/model"
)

type Config struct {
	Port           string `json:"port"`
	DBDriver       string `json:"dbDriver"` // sqlite3 または postgres
	DBDSN          string `json:"dbDSN"`
	OutputEncoding string `json:"outputEncoding"` // sjis または utf8
	// テナント設定がない項目に使う出荷設定
	DefaultShipping model.ShippingSettings `json:"defaultShipping"`
}

var (
	cfg Config
	mu  sync.RWMutex
)

// DefaultPath は --config を省略したときの設定ファイルです。
const DefaultPath = "./clinicship_config.json"

// BuiltinShipping は設定ファイルにも defaultShipping がない場合の出荷設定です。
func BuiltinShipping() model.ShippingSettings {
	return model.ShippingSettings{
		DefaultCarrier: model.CarrierYamato,
		Yamato: model.YamatoConfig{
			SenderName:       "サンプルクリニック",
			SenderPostal:     "1000001",
			SenderAddress:    "東京都千代田区千代田1-1",
			SenderPhone:      "03-0000-0000",
			ItemName:         "医療用品",
			CoolType:         model.CoolNormal,
			ScheduledMessage: "{name}様 ご注文の商品を発送いたします。",
			CompletedMessage: "{name}様 お荷物のお届けが完了しました。",
		},
		JapanPost: model.JapanPostConfig{
			SenderName:    "サンプルクリニック",
			SenderPostal:  "1000001",
			SenderAddress: "東京都千代田区千代田1-1",
			SenderPhone:   "03-0000-0000",
			ItemName:      "医療用品",
		},
	}
}

// Defaults はゼロ値を既定値で埋めた Config を返します。
func Defaults() Config {
	return applyDefaults(Config{})
}

func applyDefaults(c Config) Config {
	if c.Port == "" {
		c.Port = "8080"
	}
	if c.DBDriver == "" {
		c.DBDriver = "sqlite3"
	}
	if c.DBDSN == "" && c.DBDriver == "sqlite3" {
		c.DBDSN = "./clinicship.db?_journal_mode=WAL&_busy_timeout=5000"
	}
	if c.OutputEncoding == "" {
		c.OutputEncoding = "sjis"
	}
	if c.DefaultShipping == (model.ShippingSettings{}) {
		c.DefaultShipping = BuiltinShipping()
	}
	return c
}

// LoadConfigFrom は設定ファイルを読み込みます。ファイルがなければ既定値を返します。
func LoadConfigFrom(path string) (Config, error) {
	mu.Lock()
	defer mu.Unlock()

	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg = Defaults()
			return cfg, nil
		}
		return Config{}, err
	}

	// defaultShipping にないキーは BuiltinShipping の値を残す
	tempCfg := Config{DefaultShipping: BuiltinShipping()}
	if err := json.Unmarshal(file, &tempCfg); err != nil {
		return Config{}, err
	}
	cfg = applyDefaults(tempCfg)
	return cfg, nil
}

func SaveConfigTo(path string, newCfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	newCfg = applyDefaults(newCfg)

	file, err := json.MarshalIndent(newCfg, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, file, 0644); err != nil {
		return err
	}
	cfg = newCfg
	return nil
}

func GetConfig() Config {
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}
