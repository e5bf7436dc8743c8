// Package recorder ties parsing, formatting and the guarded ledger write
// together. Both the CLI and the web UI go through a Recorder.
package recorder

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cleared-dev/buy/internal/ledger"
	buylog "github.com/cleared-dev/buy/internal/log"
	"github.com/cleared-dev/buy/internal/model"
)

// ScopedWriter grants exclusive, scoped access to the ledger.
type ScopedWriter interface {
	Do(fn func(w io.Writer) error) error
	Path() string
}

// Committer records the ledger in version control after a write.
type Committer interface {
	Commit(message string) (string, error)
}

// Options configures a Recorder. Writer is required.
type Options struct {
	Writer    ScopedWriter
	Location  *time.Location   // zone for the entry date; nil = time.Local
	Now       func() time.Time // nil = time.Now
	Committer Committer        // nil = no commits
	Logger    *slog.Logger
}

// Recorder is the single owner of the ledger handle.
type Recorder struct {
	w         ScopedWriter
	loc       *time.Location
	now       func() time.Time
	committer Committer
	logger    *slog.Logger
}

// New creates a Recorder.
func New(opts Options) *Recorder {
	r := &Recorder{
		w:         opts.Writer,
		loc:       opts.Location,
		now:       opts.Now,
		committer: opts.Committer,
		logger:    buylog.WithComponent(opts.Logger, buylog.ComponentRecorder),
	}
	if r.loc == nil {
		r.loc = time.Local
	}
	if r.now == nil {
		r.now = time.Now
	}
	return r
}

// Categories lists the categories a caller may select.
func (r *Recorder) Categories() []model.Category {
	return model.Categories()
}

// Record parses both tokens and appends one entry. The category is checked
// before the amount.
func (r *Recorder) Record(categoryToken, amountToken string) (string, error) {
	category, err := model.ParseCategory(categoryToken)
	if err != nil {
		return "", err
	}
	return r.OnCategorySelected(category, amountToken)
}

// OnCategorySelected appends an entry for category with the amount typed by
// the user. It returns the appended block.
func (r *Recorder) OnCategorySelected(category model.Category, amountText string) (string, error) {
	amount, err := model.ParseAmount(amountText)
	if err != nil {
		return "", err
	}

	block := ledger.Format(category, amount, r.now().In(r.loc))

	err = r.w.Do(func(w io.Writer) error {
		if err := ledger.WriteBlock(w, block); err != nil {
			return err
		}
		if r.committer == nil {
			return nil
		}
		msg := fmt.Sprintf("buy: %s %s%s", category.Label(), ledger.Currency, amount)
		hash, err := r.committer.Commit(msg)
		if err != nil {
			// The entry is already on disk; a failed commit is not a failed write.
			r.logger.Warn("committing ledger", buylog.FieldLedger, r.w.Path(), buylog.FieldError, err)
			return nil
		}
		r.logger.Debug("committed ledger", buylog.FieldCommit, hash)
		return nil
	})
	if errors.Is(err, ledger.ErrBusy) {
		r.logger.Warn("ledger busy", buylog.FieldCategory, category, buylog.FieldAmount, amount.String())
		return "", err
	}
	if err != nil {
		return "", err
	}

	r.logger.Debug("appended entry",
		buylog.FieldCategory, category,
		buylog.FieldAmount, amount.String(),
		buylog.FieldLedger, r.w.Path(),
	)
	return block, nil
}
