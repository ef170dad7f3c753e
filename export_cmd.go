package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"clinicship/address"
	"clinicship/model"
	"clinicship/parsers"
	"clinicship/settings"
	"clinicship/shipping"
)

type exportOptions struct {
	carrier      string
	inputPath    string
	outputPath   string
	shipDate     string
	settingsPath string
	encoding     string
}

func newExportCmd() *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "export",
		Short: "注文CSVから配送業者の取込CSVを作成します",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if opts.encoding == "" {
				opts.encoding = cfg.OutputEncoding
			}
			out, err := runExport(opts, cfg.DefaultShipping, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "CSVを作成しました: %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.carrier, "carrier", "", "配送業者 (yamato / japanpost)。省略時は設定の defaultCarrier")
	cmd.Flags().StringVarP(&opts.inputPath, "input", "i", "", "注文CSVファイルのパス (必須)")
	cmd.MarkFlagRequired("input")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "出力ファイルのパス。省略時は入力と同じフォルダ")
	cmd.Flags().StringVar(&opts.shipDate, "ship-date", "", "出荷予定日 (YYYY/MM/DD)。省略時は今日")
	cmd.Flags().StringVar(&opts.settingsPath, "settings", "", "テナント出荷設定JSONのパス")
	cmd.Flags().StringVar(&opts.encoding, "encoding", "", "出力文字コード (sjis / utf8)")
	return cmd
}

// runExport は export コマンドの本体です。作成したファイルのパスを返します。
func runExport(opts exportOptions, defaults model.ShippingSettings, today time.Time) (string, error) {
	cfg := defaults
	if opts.settingsPath != "" {
		raw, err := os.ReadFile(opts.settingsPath)
		if err != nil {
			return "", fmt.Errorf("出荷設定ファイルを読み込めません: %w", err)
		}
		if cfg, err = settings.Merge(defaults, raw); err != nil {
			return "", err
		}
	}

	shipDate := shipping.FormatShipDate(today)
	if opts.shipDate != "" {
		var err error
		if shipDate, err = shipping.ParseShipDate(opts.shipDate); err != nil {
			return "", err
		}
	}

	f, err := os.Open(opts.inputPath)
	if err != nil {
		return "", fmt.Errorf("入力ファイルを開けません: %w", err)
	}
	defer f.Close()

	orders, err := parsers.ParseOrderCSV(f)
	if err != nil {
		return "", err
	}
	if len(orders) == 0 {
		return "", fmt.Errorf("出荷対象の注文がありません")
	}

	if missing := shipping.ValidateOrders(orders); len(missing) > 0 {
		var sb strings.Builder
		for _, m := range missing {
			fmt.Fprintf(&sb, "\n  %s: %s", m.PaymentID, strings.Join(m.Fields, ", "))
		}
		return "", fmt.Errorf("必須項目が空の注文が%d件あります:%s", len(missing), sb.String())
	}

	exp, err := shipping.NewFormatter(address.NewHeuristic()).BuildExport(orders, model.Carrier(opts.carrier), shipDate, cfg)
	if err != nil {
		return "", err
	}
	body, err := shipping.Encode(exp.CSV, opts.encoding)
	if err != nil {
		return "", err
	}

	outPath := opts.outputPath
	if outPath == "" {
		outPath = filepath.Join(filepath.Dir(opts.inputPath), exp.FileName)
	}
	if err := os.WriteFile(outPath, body, 0644); err != nil {
		return "", fmt.Errorf("出力ファイルの書き込みに失敗: %w", err)
	}
	return outPath, nil
}

func newSplitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "split <住所>",
		Short: "住所を 住所 / 建物名 に分割して表示します",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printSplit(cmd.OutOrStdout(), strings.Join(args, " "))
			return nil
		},
	}
}

func printSplit(w io.Writer, raw string) {
	p := address.Split(raw)
	fmt.Fprintf(w, "addr1: %s\naddr2: %s\n", p.Addr1, p.Addr2)
}
