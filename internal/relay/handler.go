package relay

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/prxstudio/reel/internal/config"
)

// Response messages returned to the form.
const (
	msgConfigNotFound = "Configuration not found"
	msgInvalidRequest = "Invalid request"
	msgMissingFields  = "Missing required fields"
	msgInvalidEmail   = "Invalid email address"
	msgSendFailed     = "Unable to send message at this time."
	msgSent           = "Message sent successfully"
)

const (
	maxBodyBytes  = 64 << 10
	maxFormMemory = 32 << 10
)

// Result is the JSON body of every /send_mail response.
type Result struct {
	Success bool   `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ConfigLoader yields the mail configuration. It runs on every request so
// edits take effect without a restart.
type ConfigLoader func() (config.Mail, error)

// FileConfig loads the mail config from path on each call.
func FileConfig(path string) ConfigLoader {
	return func() (config.Mail, error) { return config.LoadMail(path) }
}

// Handler serves the contact form endpoint and relay status.
type Handler struct {
	load   ConfigLoader
	mailer Mailer
	stats  *Stats
	logger *zap.Logger
	now    func() time.Time
}

// NewHandler builds a Handler. A nil logger discards logs and nil stats are
// replaced with a fresh counter set.
func NewHandler(load ConfigLoader, mailer Mailer, stats *Stats, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if stats == nil {
		stats = NewStats(time.Now())
	}
	return &Handler{load: load, mailer: mailer, stats: stats, logger: logger, now: time.Now}
}

// Routes returns the relay's mux.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /send_mail", h.sendMail)
	mux.HandleFunc("POST /send_mail.php", h.sendMail)
	mux.HandleFunc("GET /api/status", h.status)
	return mux
}

func (h *Handler) sendMail(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.load()
	if err != nil {
		if errors.Is(err, config.ErrMailConfigNotFound) {
			h.logger.Error("mail config missing")
		} else {
			h.logger.Error("mail config unusable", zap.Error(err))
		}
		h.finish(w, http.StatusInternalServerError, Result{Error: msgConfigNotFound}, Delivery{Outcome: OutcomeMisconfigured})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.logger.Warn("unreadable form body", zap.Error(err))
		h.finish(w, http.StatusBadRequest, Result{Error: msgInvalidRequest}, Delivery{Outcome: OutcomeInvalid})
		return
	}

	sub := submissionFromRequest(r)
	if sub.IsBot() {
		h.logger.Info("honeypot tripped", zap.String("remote", r.RemoteAddr))
		h.finish(w, http.StatusBadRequest, Result{Error: msgInvalidRequest}, Delivery{Outcome: OutcomeBot})
		return
	}

	delivery := Delivery{Company: sub.Company}
	if err := sub.Validate(); err != nil {
		msg := msgMissingFields
		if errors.Is(err, ErrInvalidEmail) {
			msg = msgInvalidEmail
		}
		h.logger.Debug("submission rejected", zap.Error(err))
		delivery.Outcome = OutcomeInvalid
		h.finish(w, http.StatusUnprocessableEntity, Result{Error: msg}, delivery)
		return
	}

	if err := h.mailer.Send(r.Context(), cfg.SMTP, buildMessages(cfg, sub)...); err != nil {
		h.logger.Error("mail send failed",
			zap.Error(err),
			zap.String("host", cfg.SMTP.Host),
			zap.String("company", sub.Company),
		)
		delivery.Outcome = OutcomeFailed
		h.finish(w, http.StatusInternalServerError, Result{Error: msgSendFailed}, delivery)
		return
	}

	h.logger.Info("contact message relayed",
		zap.String("company", sub.Company),
		zap.Bool("auto_reply", cfg.AutoReply),
	)
	delivery.Outcome = OutcomeSent
	h.finish(w, http.StatusOK, Result{Success: true, Message: msgSent}, delivery)
}

func (h *Handler) status(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.stats.Snapshot())
}

func (h *Handler) finish(w http.ResponseWriter, code int, res Result, d Delivery) {
	d.At = h.now()
	h.stats.record(d)
	writeJSON(w, code, res)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
