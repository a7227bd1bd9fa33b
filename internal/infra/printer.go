package infra

import (
	"context"
	"errors"
	"os/exec"
	"time"

	"github.com/rs/zerolog/log"
)

// Printer sends a rendered receipt to the physical print surface.
// Print blocks for at most the configured window and returns nil on success.
type Printer interface {
	Print(ctx context.Context, pdfPath string) error
}

// SpoolPrinter hands a spooled PDF to an external print command (e.g. lp).
// The print surface offers no reliable completion signal, so a command still
// running when the window closes is declared successful — a deliberately weak
// guarantee that trades strict correctness for forward progress. Only a
// definite failure (spawn error, non-zero exit, open breaker) is reported.
type SpoolPrinter struct {
	command string
	timeout time.Duration
	breaker *CircuitBreaker
}

// NewSpoolPrinter builds a printer around the given command. An empty command
// means spool-only mode: the PDF is kept on disk and printing always succeeds.
func NewSpoolPrinter(command string, timeout time.Duration, breaker *CircuitBreaker) *SpoolPrinter {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &SpoolPrinter{command: command, timeout: timeout, breaker: breaker}
}

// Breaker exposes the printer's circuit breaker for the health endpoint.
func (p *SpoolPrinter) Breaker() *CircuitBreaker { return p.breaker }

func (p *SpoolPrinter) Print(ctx context.Context, pdfPath string) error {
	if p.command == "" {
		log.Info().Str("pdf", pdfPath).Msg("no print command configured, receipt spooled")
		return nil
	}

	run := func() error {
		cmdCtx, cancel := context.WithTimeout(ctx, p.timeout)
		defer cancel()

		cmd := exec.CommandContext(cmdCtx, p.command, pdfPath)
		out, err := cmd.CombinedOutput()

		if errors.Is(cmdCtx.Err(), context.DeadlineExceeded) {
			// No completion signal within the window — count it as printed.
			log.Warn().Str("pdf", pdfPath).Dur("timeout", p.timeout).
				Msg("print window elapsed without completion signal, assuming success")
			return nil
		}
		if err != nil {
			log.Error().Str("pdf", pdfPath).Str("output", string(out)).Err(err).
				Msg("print command failed")
			return err
		}
		return nil
	}

	if p.breaker != nil {
		return p.breaker.Execute(run)
	}
	return run()
}
