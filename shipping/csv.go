package shipping

import "strings"

// 配送業者の取込ツールは Windows 向けのため CRLF 固定
const lineBreak = "\r\n"

// ToCSVRow は全項目をダブルクォートで囲み、内部の " は "" にエスケープして1行にします。
// encoding/csv は必要な項目しか囲まないため使いません。
func ToCSVRow(cols []string) string {
	var sb strings.Builder
	for i, c := range cols {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(c, `"`, `""`))
		sb.WriteByte('"')
	}
	return sb.String()
}

// AssembleCSV はヘッダーと各行を CRLF で連結します。
func AssembleCSV(header []string, rows [][]string) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, ToCSVRow(header))
	for _, r := range rows {
		lines = append(lines, ToCSVRow(r))
	}
	return strings.Join(lines, lineBreak)
}
