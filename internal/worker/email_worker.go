package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/hamaza7867/POS-NEW/internal/infra"
)

// EmailPayload describes one receipt email job.
type EmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	PDFPath string `json:"pdf_path"`
}

// EmailWorker delivers receipt emails via the SMTP mailer.
type EmailWorker struct {
	mailer *infra.Mailer
}

func NewEmailWorker(mailer *infra.Mailer) *EmailWorker {
	return &EmailWorker{mailer: mailer}
}

func (w *EmailWorker) Handle(_ context.Context, raw json.RawMessage) error {
	var p EmailPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("email worker: decode payload: %w", err)
	}
	if !w.mailer.Configured() {
		log.Warn().Str("to", p.To).Msg("SMTP not configured, dropping receipt email")
		return nil
	}
	if err := w.mailer.SendReceipt(p.To, p.Subject, p.Body, p.PDFPath); err != nil {
		return fmt.Errorf("email worker: send to %s: %w", p.To, err)
	}
	log.Info().Str("to", p.To).Msg("receipt email sent")
	return nil
}
