package shipping

import (
	"strings"

	"clinicship/model"
	"clinicship/normalize"
)

// YamatoColumns は B2クラウド 外部データ取込 (発払い) の列数です。
const YamatoColumns = 55

// OkinawaItemName は沖縄県宛ての品名です。航空搭載の制限があるため設定値に関わらずこの品名を使います。
const OkinawaItemName = "医療用品（未使用の注射器）可燃物・高圧ガスは含みません"

// YamatoHeader は B2クラウドの取込レイアウトの列名です。順序は変更できません。
var YamatoHeader = [YamatoColumns]string{
	"お客様管理番号",
	"送り状種類",
	"クール区分",
	"伝票番号",
	"出荷予定日",
	"お届け予定（指定）日",
	"配達時間帯",
	"お届け先コード",
	"お届け先電話番号",
	"お届け先電話番号枝番",
	"お届け先郵便番号",
	"お届け先住所",
	"お届け先住所（アパートマンション名）",
	"お届け先会社・部門名１",
	"お届け先会社・部門名２",
	"お届け先名",
	"お届け先名略称カナ",
	"敬称",
	"ご依頼主コード",
	"ご依頼主電話番号",
	"ご依頼主電話番号枝番",
	"ご依頼主郵便番号",
	"ご依頼主住所",
	"ご依頼主住所（アパートマンション名）",
	"ご依頼主名",
	"ご依頼主略称カナ",
	"品名コード１",
	"品名１",
	"品名コード２",
	"品名２",
	"荷扱い１",
	"荷扱い２",
	"記事",
	"コレクト代金引換額（税込）",
	"コレクト内消費税額等",
	"営業所止置き",
	"営業所コード",
	"発行枚数",
	"個数口枠の印字",
	"ご請求先顧客コード",
	"ご請求先分類コード",
	"運賃管理番号",
	"注文時カード払いデータ登録",
	"注文時カード払い加盟店番号",
	"注文時カード払い申込受付番号１",
	"注文時カード払い申込受付番号２",
	"注文時カード払い申込受付番号３",
	"お届け予定ｅメール利用区分",
	"お届け予定ｅメールe-mailアドレス",
	"入力機種",
	"お届け予定ｅメールメッセージ",
	"お届け完了ｅメール利用区分",
	"お届け完了ｅメールe-mailアドレス",
	"お届け完了ｅメールメッセージ",
	"クロネコ収納代行利用区分",
}

const (
	yamatoInvoicePrepaid = "0" // 発払い
	yamatoHonorific      = "様"
)

// YamatoItemName は品名欄の値を返します。住所に「沖縄」を含む場合は OkinawaItemName です。
func YamatoItemName(o model.OrderData, cfg model.YamatoConfig) string {
	if strings.Contains(o.Address, "沖縄") {
		return OkinawaItemName
	}
	return cfg.ItemName
}

// YamatoRow は1注文を B2クラウドの1行 (YamatoColumns 列) に変換します。
func (f *Formatter) YamatoRow(o model.OrderData, shipDate string, cfg model.YamatoConfig) []string {
	n := f.normalize(o)
	sender := f.splitter.Split(cfg.SenderAddress)

	coolType := cfg.CoolType
	if coolType == "" {
		coolType = model.CoolNormal
	}

	// お届け予定/完了eメールはメールアドレスがある場合のみ
	var (
		mailUse      = "0"
		mailAddr     string
		inputDevice  string
		scheduledMsg string
		completedMsg string
	)
	if email := strings.TrimSpace(o.Email); email != "" {
		mailUse = "1"
		mailAddr = email
		inputDevice = "1" // PC
		scheduledMsg = renderMessage(cfg.ScheduledMessage, o)
		completedMsg = renderMessage(cfg.CompletedMessage, o)
	}

	row := [YamatoColumns]string{
		o.PaymentID,          // お客様管理番号
		yamatoInvoicePrepaid, // 送り状種類
		coolType,             // クール区分
		"",                   // 伝票番号
		shipDate,             // 出荷予定日
		"",                   // お届け予定日
		"",                   // 配達時間帯
		"",                   // お届け先コード
		n.phone,              // お届け先電話番号
		"",                   // 枝番
		n.postal,             // お届け先郵便番号
		n.parts.Addr1,        // お届け先住所
		n.parts.Addr2,        // アパートマンション名
		"",                   // 会社・部門名１
		"",                   // 会社・部門名２
		o.Name,               // お届け先名
		"",                   // 略称カナ
		yamatoHonorific,      // 敬称
		"",                   // ご依頼主コード
		normalize.Phone(cfg.SenderPhone),
		"", // 枝番
		normalize.Postal(cfg.SenderPostal),
		sender.Addr1,
		sender.Addr2,
		cfg.SenderName,
		"", // ご依頼主略称カナ
		"", // 品名コード１
		YamatoItemName(o, cfg),
		"", // 品名コード２
		"", // 品名２
		cfg.HandlingNote1,
		cfg.HandlingNote2,
		"",  // 記事
		"",  // コレクト代金引換額
		"",  // コレクト内消費税額等
		"0", // 営業所止置き: しない
		"",  // 営業所コード
		"1", // 発行枚数
		"1", // 個数口枠の印字: 印字する
		cfg.BillingCustomerCode,
		cfg.BillingCategoryCode,
		cfg.FareManagementNo,
		"0", // 注文時カード払いデータ登録: しない
		"",
		"",
		"",
		"",
		mailUse,
		mailAddr,
		inputDevice,
		scheduledMsg,
		mailUse,
		mailAddr,
		completedMsg,
		"0", // クロネコ収納代行利用区分
	}
	return row[:]
}
