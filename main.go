package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"clinicship/config"
	"clinicship/database"
)

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "エラー: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "clinicship",
		Short:         "注文データから配送業者 (ヤマト B2クラウド / ゆうプリR) の取込CSVを作成します。",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "設定ファイルのパス")

	root.AddCommand(newServeCmd(), newExportCmd(), newSplitCmd())
	return root
}

func loadConfig() config.Config {
	cfg, err := config.LoadConfigFrom(configPath)
	if err != nil {
		log.Printf("WARN: Failed to load config file: %v. Using defaults.", err)
		return config.Defaults()
	}
	return cfg
}

func newServeCmd() *cobra.Command {
	var openBrowserFlag bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "HTTPサーバーを起動します",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()

			log.Printf("Connecting to database (%s)...", cfg.DBDriver)
			dbConn, err := database.Open(cfg.DBDriver, cfg.DBDSN)
			if err != nil {
				return err
			}
			defer dbConn.Close()
			log.Println("Database connection successful.")

			if err := database.InitSchema(dbConn); err != nil {
				return fmt.Errorf("database initialization failed: %w", err)
			}

			mux := http.NewServeMux()
			SetupRoutes(mux, dbConn, cfg)

			addr := ":" + cfg.Port
			log.Printf("Starting server on http://localhost%s", addr)
			if openBrowserFlag {
				openBrowser("http://localhost" + addr)
			}
			return http.ListenAndServe(addr, mux)
		},
	}
	cmd.Flags().BoolVar(&openBrowserFlag, "open", false, "起動後にブラウザを開く")
	return cmd
}

func openBrowser(url string) {
	var err error
	switch runtime.GOOS {
	case "windows":
		err = exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "darwin":
		err = exec.Command("open", url).Start()
	default:
		err = exec.Command("xdg-open", url).Start()
	}
	if err != nil {
		log.Printf("failed to open browser: %v", err)
	}
}
