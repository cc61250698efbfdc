// Package app wires stores, services and HTTP handlers from configuration.
package app

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/MrJamesThe3rd/costbook/internal/accountcode"
	accountcodeStore "github.com/MrJamesThe3rd/costbook/internal/accountcode/store"
	"github.com/MrJamesThe3rd/costbook/internal/allocation"
	allocationStore "github.com/MrJamesThe3rd/costbook/internal/allocation/store"
	"github.com/MrJamesThe3rd/costbook/internal/bill"
	billStore "github.com/MrJamesThe3rd/costbook/internal/bill/store"
	"github.com/MrJamesThe3rd/costbook/internal/category"
	categoryStore "github.com/MrJamesThe3rd/costbook/internal/category/store"
	"github.com/MrJamesThe3rd/costbook/internal/config"
	"github.com/MrJamesThe3rd/costbook/internal/contact"
	contactStore "github.com/MrJamesThe3rd/costbook/internal/contact/store"
	"github.com/MrJamesThe3rd/costbook/internal/document/split"
	costbookHttp "github.com/MrJamesThe3rd/costbook/internal/http"
	accountcodeHandler "github.com/MrJamesThe3rd/costbook/internal/http/accountcode"
	billHandler "github.com/MrJamesThe3rd/costbook/internal/http/bill"
	categoryHandler "github.com/MrJamesThe3rd/costbook/internal/http/category"
	contactHandler "github.com/MrJamesThe3rd/costbook/internal/http/contact"
	libraryHandler "github.com/MrJamesThe3rd/costbook/internal/http/library"
	poHandler "github.com/MrJamesThe3rd/costbook/internal/http/purchaseorder"
	quoteHandler "github.com/MrJamesThe3rd/costbook/internal/http/quote"
	reportHandler "github.com/MrJamesThe3rd/costbook/internal/http/report"
	"github.com/MrJamesThe3rd/costbook/internal/library"
	libraryStore "github.com/MrJamesThe3rd/costbook/internal/library/store"
	"github.com/MrJamesThe3rd/costbook/internal/mail"
	"github.com/MrJamesThe3rd/costbook/internal/purchaseorder"
	poStore "github.com/MrJamesThe3rd/costbook/internal/purchaseorder/store"
	"github.com/MrJamesThe3rd/costbook/internal/quote"
	quoteStore "github.com/MrJamesThe3rd/costbook/internal/quote/store"
	"github.com/MrJamesThe3rd/costbook/internal/report"
	"github.com/MrJamesThe3rd/costbook/internal/storage"
	"github.com/MrJamesThe3rd/costbook/internal/xero"
	"github.com/MrJamesThe3rd/costbook/internal/xerosync"
)

type App struct {
	Files          *storage.Local
	Allocations    *allocation.Service
	Categories     *category.Service
	Contacts       *contact.Service
	Quotes         *quote.Service
	Bills          *bill.Service
	PurchaseOrders *purchaseorder.Service
	Library        *library.Service
	AccountCodes   *accountcode.Service
	Sync           *xerosync.Service
	Reports        *report.Service
}

// New builds every service over db. ctx bounds the lifetime of the Xero
// token source.
func New(ctx context.Context, cfg *config.Config, db *sql.DB) *App {
	files := storage.NewLocal(cfg.Storage.Root, cfg.Storage.BaseURL)

	mailer := mail.NewSMTP(mail.SMTPConfig{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
	})

	xeroClient := xero.New(ctx, xero.Config{
		ClientID:       cfg.Xero.ClientID,
		ClientSecret:   cfg.Xero.ClientSecret,
		TokenURL:       cfg.Xero.TokenURL,
		BaseURL:        cfg.Xero.BaseURL,
		Scopes:         cfg.Xero.Scopes,
		CallsPerWindow: cfg.Xero.CallsPerWindow,
		Window:         cfg.Xero.Window,
	})

	var (
		allocations  = allocation.NewService(allocationStore.New(db))
		categories   = category.NewService(categoryStore.New(db), allocations)
		contacts     = contact.NewService(contactStore.New(db))
		quotes       = quote.NewService(quoteStore.New(db), categories, files)
		bills        = bill.NewService(billStore.New(db), categories, files, split.New())
		accountCodes = accountcode.NewService(accountcodeStore.New(db), cfg.Xero.DefaultAccount)
	)

	purchaseOrders := purchaseorder.NewService(poStore.New(db), contacts, files, mailer, purchaseorder.Project{
		Company:        cfg.Project.Company,
		CompanyAddress: cfg.Project.CompanyAddress,
		ABN:            cfg.Project.ABN,
		Email:          cfg.Project.Email,
		Address:        cfg.Project.Address,
		Letterhead:     cfg.Project.Letterhead,
		MailFrom:       cfg.Mail.From,
	})

	return &App{
		Files:          files,
		Allocations:    allocations,
		Categories:     categories,
		Contacts:       contacts,
		Quotes:         quotes,
		Bills:          bills,
		PurchaseOrders: purchaseOrders,
		Library:        library.NewService(libraryStore.New(db), files),
		AccountCodes:   accountCodes,
		Sync:           xerosync.NewService(xeroClient, contacts, bills, categories, accountCodes, files),
		Reports:        report.NewService(allocations, bills, contacts, files),
	}
}

// Router exposes the services over the JSON API, with stored files served
// under the storage base URL.
func (a *App) Router(cfg *config.Config) http.Handler {
	api := costbookHttp.New(costbookHttp.Options{
		JWTSecret:   cfg.Auth.JWTSecret,
		CORSOrigins: cfg.Server.CORSOrigins,
		Timeout:     cfg.Server.Timeout,
		Metrics:     cfg.Metrics.Enabled,
	}, costbookHttp.Handlers{
		Categories:     categoryHandler.NewHandler(a.Categories),
		Contacts:       contactHandler.NewHandler(a.Contacts, a.Sync),
		Quotes:         quoteHandler.NewHandler(a.Quotes),
		Bills:          billHandler.NewHandler(a.Bills, a.Sync),
		PurchaseOrders: poHandler.NewHandler(a.PurchaseOrders),
		Library:        libraryHandler.NewHandler(a.Library),
		AccountCodes:   accountcodeHandler.NewHandler(a.AccountCodes),
		Reports:        reportHandler.NewHandler(a.Reports),
	})

	mux := http.NewServeMux()
	mux.Handle(cfg.Storage.BaseURL+"/", http.StripPrefix(cfg.Storage.BaseURL, http.FileServer(http.Dir(cfg.Storage.Root))))
	mux.Handle("/", api)

	return mux
}
