// ABOUTME: File-transfer sentry: constructs a trzsz filter over the session byte channel
// ABOUTME: Bytes are never inspected here; the filter owns detection and the transfer protocol

package transfer

import (
	"errors"
	"fmt"
	"io"

	"github.com/trzsz/trzsz-go/trzsz"

	"github.com/mauromedda/lunaterm/internal/log"
)

// ErrMissingStream is returned when a required stream is nil.
var ErrMissingStream = errors.New("missing stream")

// SentryConfig holds the four streams the filter sits between and its options.
//
//	surface -> ClientIn  -> [sentry] -> ServerIn  -> transport
//	surface <- ClientOut <- [sentry] <- ServerOut <- transport
type SentryConfig struct {
	ClientIn  io.Reader
	ClientOut io.WriteCloser
	ServerIn  io.WriteCloser
	ServerOut io.Reader

	Columns        int
	DetectDragFile bool
	EnableZmodem   bool
	EnableOSC52    bool
	DownloadPath   string

	Logger *log.Logger
}

func (c SentryConfig) validate() error {
	var missing []error
	if c.ClientIn == nil {
		missing = append(missing, fmt.Errorf("%w: client in", ErrMissingStream))
	}
	if c.ClientOut == nil {
		missing = append(missing, fmt.Errorf("%w: client out", ErrMissingStream))
	}
	if c.ServerIn == nil {
		missing = append(missing, fmt.Errorf("%w: server in", ErrMissingStream))
	}
	if c.ServerOut == nil {
		missing = append(missing, fmt.Errorf("%w: server out", ErrMissingStream))
	}
	return errors.Join(missing...)
}

// Sentry negotiates trz/tsz (and optionally rz/sz) transfers.
type Sentry struct {
	filter *trzsz.TrzszFilter
	log    *log.Logger
}

// NewSentry starts a filter over the configured streams. The filter's copy
// goroutines run until ClientIn and ServerOut reach EOF.
func NewSentry(cfg SentryConfig) (*Sentry, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("creating transfer sentry: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New("transfer")
	}

	filter := trzsz.NewTrzszFilter(cfg.ClientIn, cfg.ClientOut, cfg.ServerIn, cfg.ServerOut, trzsz.TrzszOptions{
		TerminalColumns: int32(cfg.Columns),
		DetectDragFile:  cfg.DetectDragFile,
		EnableZmodem:    cfg.EnableZmodem,
		EnableOSC52:     cfg.EnableOSC52,
	})
	if cfg.DownloadPath != "" {
		filter.SetDefaultDownloadPath(cfg.DownloadPath)
	}
	logger.Debug("sentry started, %d columns", cfg.Columns)
	return &Sentry{filter: filter, log: logger}, nil
}

// SetColumns follows the emulator width so progress bars fit.
func (s *Sentry) SetColumns(cols int) {
	if cols <= 0 {
		return
	}
	s.filter.SetTerminalColumns(int32(cols))
}

// Transferring reports whether a transfer is in progress.
func (s *Sentry) Transferring() bool {
	return s.filter.IsTransferringFiles()
}

// Stop aborts a running transfer, keeping partially received files.
func (s *Sentry) Stop() {
	if s.filter.IsTransferringFiles() {
		s.log.Debug("stopping transfer")
	}
	s.filter.StopTransferringFiles(false)
}

// Upload queues files for upload; the remote side must be waiting in trz.
func (s *Sentry) Upload(paths []string) error {
	if err := s.filter.UploadFiles(paths); err != nil {
		return fmt.Errorf("queueing upload: %w", err)
	}
	return nil
}
