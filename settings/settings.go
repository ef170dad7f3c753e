// Package settings はテナントごとの出荷設定 (JSON) を既定値とマージします。
package settings

import (
	"bytes"
	"encoding/json"
	"fmt"

	"clinicship/model"
)

// Merge はテナント設定JSONを defaults の上に読み込みます。
// JSONにないキーは defaults の値のままです。raw が空または null の場合は defaults をそのまま返します。
func Merge(defaults model.ShippingSettings, raw []byte) (model.ShippingSettings, error) {
	merged := defaults
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return merged, nil
	}
	if err := json.Unmarshal(trimmed, &merged); err != nil {
		return defaults, fmt.Errorf("出荷設定の形式が不正です: %w", err)
	}
	return merged, nil
}

// Validate は保存前に設定値を確認します。
func Validate(s model.ShippingSettings) error {
	switch s.DefaultCarrier {
	case "", model.CarrierYamato, model.CarrierJapanPost:
	default:
		return fmt.Errorf("defaultCarrier が不正です: %q", s.DefaultCarrier)
	}
	switch s.Yamato.CoolType {
	case "", model.CoolNormal, model.CoolFrozen, model.CoolRefrigerated:
	default:
		return fmt.Errorf("yamato.coolType が不正です: %q", s.Yamato.CoolType)
	}
	switch s.JapanPost.CoolType {
	case "", "0", "1":
	default:
		return fmt.Errorf("japanpost.coolType が不正です: %q", s.JapanPost.CoolType)
	}
	return nil
}
