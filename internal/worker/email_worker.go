package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ArojasJ/agendas-entregas/internal/infra"
)

// EmailJobPayload is the job envelope sent to QueueEmail. New bookings enqueue
// one of these so the staff inbox hears about reservations without the booking
// request waiting on SMTP.
type EmailJobPayload struct {
	ToEmail    string `json:"to_email"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	AttachPath string `json:"attach_path,omitempty"`
}

// EmailWorker sends staff notifications via SMTP.
type EmailWorker struct {
	mailer *infra.Mailer
}

func NewEmailWorker(mailer *infra.Mailer) *EmailWorker {
	return &EmailWorker{mailer: mailer}
}

func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("email_worker: payload invalido: %w", err)
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("email_worker: to_email vacio, se omite")
		return nil
	}

	if err := w.mailer.SendNotificacion(payload.ToEmail, payload.Subject, payload.Body, payload.AttachPath); err != nil {
		return fmt.Errorf("email_worker: enviar a %s: %w", payload.ToEmail, err)
	}
	log.Info().Str("to", payload.ToEmail).Msg("email_worker: notificacion enviada")
	return nil
}
