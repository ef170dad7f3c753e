package model

// Carrier は配送業者の識別子です。
type Carrier string

const (
	CarrierYamato    Carrier = "yamato"
	CarrierJapanPost Carrier = "japanpost"
)

// クール区分 (B2クラウド)
const (
	CoolNormal       = "0"
	CoolFrozen       = "1"
	CoolRefrigerated = "2"
)

// YamatoConfig はヤマト運輸 B2クラウド用の差出人・請求情報です。
type YamatoConfig struct {
	SenderName          string `json:"senderName"`
	SenderPostal        string `json:"senderPostal"`
	SenderAddress       string `json:"senderAddress"`
	SenderPhone         string `json:"senderPhone"`
	BillingCustomerCode string `json:"billingCustomerCode"` // ご請求先顧客コード
	BillingCategoryCode string `json:"billingCategoryCode"` // ご請求先分類コード
	FareManagementNo    string `json:"fareManagementNo"`    // 運賃管理番号
	ItemName            string `json:"itemName"`
	CoolType            string `json:"coolType"`
	HandlingNote1       string `json:"handlingNote1"`
	HandlingNote2       string `json:"handlingNote2"`
	// お届け予定/完了eメールのメッセージ。{name} と {payment_id} を置換します。
	ScheduledMessage string `json:"scheduledMessage"`
	CompletedMessage string `json:"completedMessage"`
}

// JapanPostConfig は日本郵便 ゆうプリR 用の差出人情報です。
type JapanPostConfig struct {
	SenderName    string `json:"senderName"`
	SenderPostal  string `json:"senderPostal"`
	SenderAddress string `json:"senderAddress"`
	SenderPhone   string `json:"senderPhone"`
	SenderEmail   string `json:"senderEmail"`
	ItemName      string `json:"itemName"`
	CoolType      string `json:"coolType"` // "" or "0": 通常, "1": 冷蔵 (チルド)
	HandlingNote  string `json:"handlingNote"`
}

// ShippingSettings はテナント単位の出荷設定 (JSON) です。
type ShippingSettings struct {
	DefaultCarrier Carrier         `json:"defaultCarrier"`
	Yamato         YamatoConfig    `json:"yamato"`
	JapanPost      JapanPostConfig `json:"japanpost"`
}
