package shipping

import (
	"strings"
	"testing"
	"time"

	"clinicship/address"
	"clinicship/model"
)

func testSettings() model.ShippingSettings {
	return model.ShippingSettings{
		DefaultCarrier: model.CarrierYamato,
		Yamato: model.YamatoConfig{
			SenderName:          "テストクリニック",
			SenderPostal:        "150-0001",
			SenderAddress:       "東京都渋谷区神宮前1-1-1 テストビル3階",
			SenderPhone:         "3-1111-2222",
			BillingCustomerCode: "012345678901",
			BillingCategoryCode: "001",
			FareManagementNo:    "01",
			ItemName:            "化粧品",
			CoolType:            model.CoolRefrigerated,
			ScheduledMessage:    "{name}様 ご注文{payment_id}を発送予定です",
			CompletedMessage:    "{name}様 お届けが完了しました",
		},
		JapanPost: model.JapanPostConfig{
			SenderName:    "テストクリニック",
			SenderPostal:  "1500001",
			SenderAddress: "東京都渋谷区神宮前1-1-1",
			SenderPhone:   "0311112222",
			SenderEmail:   "clinic@example.com",
			ItemName:      "化粧品",
		},
	}
}

func testOrder() model.OrderData {
	return model.OrderData{
		PaymentID: "pay_001",
		Name:      "山田 花子",
		Postal:    "〒150-0002",
		Address:   "東京都渋谷区渋谷2-1-1 マンション渋谷101",
		Email:     "hanako@example.com",
		Phone:     "9012345678",
	}
}

func col(t *testing.T, header []string, row []string, name string) string {
	t.Helper()
	for i, h := range header {
		if h == name {
			return row[i]
		}
	}
	t.Fatalf("column %q not found", name)
	return ""
}

func TestYamatoRow(t *testing.T) {
	f := NewFormatter(nil)
	s := testSettings()
	row := f.YamatoRow(testOrder(), "2026/10/15", s.Yamato)
	h := YamatoHeader[:]

	if len(row) != YamatoColumns {
		t.Fatalf("expected %d columns, got %d", YamatoColumns, len(row))
	}

	checks := map[string]string{
		"お客様管理番号": "pay_001",
		"送り状種類": "0",
		"クール区分": model.CoolRefrigerated,
		"出荷予定日": "2026/10/15",
		"お届け先電話番号": "09012345678",
		"お届け先郵便番号": "1500002",
		"お届け先住所": "東京都渋谷区渋谷2-1-1",
		"お届け先住所（アパートマンション名）": "マンション渋谷101",
		"お届け先名": "山田 花子",
		"ご依頼主電話番号": "03-1111-2222",
		"ご依頼主郵便番号": "1500001",
		"ご依頼主住所": "東京都渋谷区神宮前1-1-1 テスト",
		"ご依頼主住所（アパートマンション名）": "ビル3階",
		"ご依頼主名": "テストクリニック",
		"品名１": "化粧品",
		"発行枚数": "1",
		"ご請求先顧客コード": "012345678901",
		"ご請求先分類コード": "001",
		"運賃管理番号": "01",
		"お届け予定ｅメール利用区分": "1",
		"お届け予定ｅメールe-mailアドレス": "hanako@example.com",
		"入力機種": "1",
		"お届け予定ｅメールメッセージ": "山田 花子様 ご注文pay_001を発送予定です",
		"お届け完了ｅメール利用区分": "1",
		"お届け完了ｅメールメッセージ": "山田 花子様 お届けが完了しました",
	}
	for name, want := range checks {
		if got := col(t, h, row, name); got != want {
			t.Errorf("%s: expected %q, got %q", name, want, got)
		}
	}
}

func TestYamatoRowWithoutEmail(t *testing.T) {
	o := testOrder()
	o.Email = ""
	row := NewFormatter(nil).YamatoRow(o, "2026/10/15", testSettings().Yamato)
	h := YamatoHeader[:]

	if got := col(t, h, row, "お届け予定ｅメール利用区分"); got != "0" {
		t.Errorf("expected mail usage 0, got %q", got)
	}
	if got := col(t, h, row, "お届け予定ｅメールメッセージ"); got != "" {
		t.Errorf("expected empty message, got %q", got)
	}
	if got := col(t, h, row, "入力機種"); got != "" {
		t.Errorf("expected empty input device, got %q", got)
	}
}

func TestYamatoRowOkinawaItemName(t *testing.T) {
	s := testSettings()
	for _, item := range []string{"化粧品", "", OkinawaItemName + "x"} {
		s.Yamato.ItemName = item
		o := testOrder()
		o.Address = "沖縄県那覇市泉崎1-2-2"
		row := NewFormatter(nil).YamatoRow(o, "2026/10/15", s.Yamato)
		if got := col(t, YamatoHeader[:], row, "品名１"); got != OkinawaItemName {
			t.Errorf("item %q: expected Okinawa item name, got %q", item, got)
		}
	}
}

func TestYamatoRowDefaultCoolType(t *testing.T) {
	s := testSettings()
	s.Yamato.CoolType = ""
	row := NewFormatter(nil).YamatoRow(testOrder(), "2026/10/15", s.Yamato)
	if got := col(t, YamatoHeader[:], row, "クール区分"); got != model.CoolNormal {
		t.Errorf("expected %q, got %q", model.CoolNormal, got)
	}
}

func TestJapanPostRow(t *testing.T) {
	s := testSettings()
	o := testOrder()
	o.Address = "沖縄県那覇市泉崎1-2-2 ハイツ那覇"
	row := NewFormatter(nil).JapanPostRow(o, "2026/10/15", s.JapanPost)
	h := JapanPostHeader[:]

	if len(row) != JapanPostColumns {
		t.Fatalf("expected %d columns, got %d", JapanPostColumns, len(row))
	}
	checks := map[string]string{
		"お届け先郵便番号": "1500002",
		"お届け先氏名": "山田 花子",
		"お届け先住所1行目": "沖縄県那覇市泉崎1-2-2",
		"お届け先住所2行目": "ハイツ那覇",
		"お届け先電話番号": "09012345678",
		"お届け先メールアドレス": "hanako@example.com",
		"発送予定日": "2026/10/15",
		"ご依頼主郵便番号": "1500001",
		"ご依頼主電話番号": "0311112222",
		"お客様側管理番号": "pay_001",
		"品名": "化粧品",
		"個数": "1",
	}
	for name, want := range checks {
		if got := col(t, h, row, name); got != want {
			t.Errorf("%s: expected %q, got %q", name, want, got)
		}
	}
}

func TestColumnCountsForEmptyOrder(t *testing.T) {
	f := NewFormatter(nil)
	var empty model.OrderData
	var zero model.ShippingSettings
	if n := len(f.YamatoRow(empty, "", zero.Yamato)); n != YamatoColumns {
		t.Errorf("yamato: expected %d, got %d", YamatoColumns, n)
	}
	if n := len(f.JapanPostRow(empty, "", zero.JapanPost)); n != JapanPostColumns {
		t.Errorf("japanpost: expected %d, got %d", JapanPostColumns, n)
	}
	if n := len(YamatoHeader); n != YamatoColumns {
		t.Errorf("yamato header: expected %d, got %d", YamatoColumns, n)
	}
	if n := len(JapanPostHeader); n != JapanPostColumns {
		t.Errorf("japanpost header: expected %d, got %d", JapanPostColumns, n)
	}
}

type fixedSplitter struct{}

func (fixedSplitter) Split(raw string) address.Parts {
	return address.Parts{Addr1: "A1", Addr2: "A2"}
}

func TestFormatterUsesInjectedSplitter(t *testing.T) {
	row := NewFormatter(fixedSplitter{}).YamatoRow(testOrder(), "", testSettings().Yamato)
	if got := col(t, YamatoHeader[:], row, "お届け先住所"); got != "A1" {
		t.Errorf("expected A1, got %q", got)
	}
	if got := col(t, YamatoHeader[:], row, "お届け先住所（アパートマンション名）"); got != "A2" {
		t.Errorf("expected A2, got %q", got)
	}
}

func TestParseShipDate(t *testing.T) {
	for _, in := range []string{"2026/10/15", "2026-10-15", "20261015", " 2026/10/15 "} {
		got, err := ParseShipDate(in)
		if err != nil {
			t.Errorf("ParseShipDate(%q): unexpected error %v", in, err)
			continue
		}
		if got != "2026/10/15" {
			t.Errorf("ParseShipDate(%q): expected 2026/10/15, got %q", in, got)
		}
	}
	if _, err := ParseShipDate("10/15"); err == nil {
		t.Error("expected error for invalid date")
	}
	if got := FormatShipDate(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)); got != "2026/01/02" {
		t.Errorf("expected 2026/01/02, got %q", got)
	}
}

func TestRenderMessageWithoutTemplate(t *testing.T) {
	if got := renderMessage("", testOrder()); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
	if !strings.Contains(renderMessage("{payment_id}", testOrder()), "pay_001") {
		t.Error("payment id placeholder not replaced")
	}
}
