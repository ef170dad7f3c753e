package shipping

import (
	"clinicship/model"
	"clinicship/normalize"
)

// JapanPostColumns は ゆうプリR 外部データ取込の列数です。
const JapanPostColumns = 30

// JapanPostHeader は ゆうプリR の取込レイアウトの列名です。順序は変更できません。
var JapanPostHeader = [JapanPostColumns]string{
	"お届け先郵便番号",
	"お届け先氏名",
	"お届け先敬称",
	"お届け先住所1行目",
	"お届け先住所2行目",
	"お届け先住所3行目",
	"お届け先電話番号",
	"お届け先メールアドレス",
	"発送予定日",
	"発送予定時間帯",
	"セキュリティ",
	"ご依頼主郵便番号",
	"ご依頼主氏名",
	"ご依頼主住所1行目",
	"ご依頼主住所2行目",
	"ご依頼主電話番号",
	"ご依頼主メールアドレス",
	"お客様側管理番号",
	"品名",
	"荷扱い1",
	"荷扱い2",
	"記事",
	"保冷",
	"個数",
	"配達希望日",
	"配達希望時間帯",
	"代引金額",
	"損害要償額",
	"送り状種別",
	"フリー項目",
}

// JapanPostRow は1注文を ゆうプリR の1行 (JapanPostColumns 列) に変換します。
// 沖縄宛ての品名置換はヤマトのみで、こちらでは行いません。
func (f *Formatter) JapanPostRow(o model.OrderData, shipDate string, cfg model.JapanPostConfig) []string {
	n := f.normalize(o)
	sender := f.splitter.Split(cfg.SenderAddress)

	cool := cfg.CoolType
	if cool == "" {
		cool = "0"
	}

	row := [JapanPostColumns]string{
		n.postal,
		o.Name,
		"様",
		n.parts.Addr1,
		n.parts.Addr2,
		"",
		n.phone,
		o.Email,
		shipDate,
		"",
		"0", // セキュリティ: なし
		normalize.Postal(cfg.SenderPostal),
		cfg.SenderName,
		sender.Addr1,
		sender.Addr2,
		normalize.Phone(cfg.SenderPhone),
		cfg.SenderEmail,
		o.PaymentID,
		cfg.ItemName,
		cfg.HandlingNote,
		"",
		"",
		cool,
		"1", // 個数
		"",
		"",
		"",
		"",
		"0", // 元払い
		"",
	}
	return row[:]
}
