package main

import (
	"net/http"

	"clinicship/address"
	"clinicship/config"
	"clinicship/orders"
	"clinicship/shipment"
	"clinicship/shipping"

	"github.com/jmoiron/sqlx"
)

func SetupRoutes(mux *http.ServeMux, dbConn *sqlx.DB, cfg config.Config) {
	splitter := address.NewHeuristic()

	mux.HandleFunc("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			GetShippingSettingsHandler(dbConn, cfg.DefaultShipping)(w, r)
		case http.MethodPost:
			SaveShippingSettingsHandler(dbConn, cfg.DefaultShipping)(w, r)
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/api/orders", orders.ListOrdersHandler(dbConn))
	mux.HandleFunc("/api/orders/import", orders.ImportOrdersHandler(dbConn))

	mux.HandleFunc("/api/shipping/export", shipment.ExportHandler(shipment.Deps{
		DB:        dbConn,
		Formatter: shipping.NewFormatter(splitter),
		Defaults:  cfg.DefaultShipping,
		Encoding:  cfg.OutputEncoding,
	}))
	mux.HandleFunc("/api/shipping/exports", shipment.ListExportsHandler(dbConn))

	mux.HandleFunc("/api/address/split", shipment.SplitAddressHandler(splitter))
}
