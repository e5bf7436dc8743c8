// Package web serves the point-and-click entry page: one amount input and
// one button per expense category.
package web

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cleared-dev/buy/internal/ledger"
	buylog "github.com/cleared-dev/buy/internal/log"
	"github.com/cleared-dev/buy/internal/model"
)

// Recorder is what a button click needs from the application.
type Recorder interface {
	Categories() []model.Category
	OnCategorySelected(category model.Category, amountText string) (string, error)
}

type categoryButton struct {
	Token string
	Label string
}

type result struct {
	OK      bool
	Title   string
	Message string
	Entry   string
}

type page struct {
	Amount     string
	Categories []categoryButton
	Result     *result
}

// Handler renders the page and handles button clicks.
type Handler struct {
	rec    Recorder
	tmpl   *template.Template
	logger *slog.Logger
}

// NewHandler parses the embedded template.
func NewHandler(rec Recorder, logger *slog.Logger) (*Handler, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/index.html")
	if err != nil {
		return nil, err
	}
	return &Handler{
		rec:    rec,
		tmpl:   tmpl,
		logger: buylog.WithComponent(logger, buylog.ComponentWeb),
	}, nil
}

// Router mounts the handler's routes on a chi router.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)
	// Reject form posts from other sites; the page listens on loopback but
	// any page the user visits could otherwise submit to it.
	r.Use(http.NewCrossOriginProtection().Handler)

	r.Get("/", h.index)
	r.Post("/entries/{category}", h.createEntry)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, page{Categories: h.buttons()})
}

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	amountText := r.PostFormValue("amount")
	p := page{Amount: amountText, Categories: h.buttons()}

	category, err := model.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		p.Result = &result{Title: "Unknown category", Message: err.Error()}
		h.render(w, http.StatusBadRequest, p)
		return
	}

	entry, err := h.rec.OnCategorySelected(category, amountText)
	if err != nil {
		status, title := classify(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("appending entry", buylog.FieldCategory, category, buylog.FieldError, err)
		}
		p.Result = &result{Title: title, Message: err.Error()}
		h.render(w, status, p)
		return
	}

	p.Amount = ""
	p.Result = &result{OK: true, Title: "Saved " + category.Label(), Entry: entry}
	h.render(w, http.StatusOK, p)
}

func classify(err error) (int, string) {
	var iae *model.InvalidAmountError
	switch {
	case errors.As(err, &iae):
		return http.StatusBadRequest, "Invalid amount"
	case errors.Is(err, ledger.ErrBusy):
		return http.StatusConflict, "File busy, try again"
	default:
		return http.StatusInternalServerError, "Could not write the ledger"
	}
}

func (h *Handler) buttons() []categoryButton {
	cats := h.rec.Categories()
	out := make([]categoryButton, 0, len(cats))
	for _, c := range cats {
		out = append(out, categoryButton{Token: c.String(), Label: c.Label()})
	}
	return out
}

func (h *Handler) render(w http.ResponseWriter, status int, p page) {
	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, p); err != nil {
		h.logger.Error("rendering page", buylog.FieldError, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// Serve runs an HTTP server on ln until ctx is cancelled, then shuts it down.
func Serve(ctx context.Context, ln net.Listener, handler http.Handler, logger *slog.Logger) error {
	logger = buylog.WithComponent(logger, buylog.ComponentWeb)
	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	logger.Info("serving", buylog.FieldAddr, ln.Addr().String())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info("stopped")
	return nil
}
