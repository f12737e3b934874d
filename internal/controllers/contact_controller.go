package controllers

import (
	"net/http"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gookit/validate"
	"github.com/lquan-tech/porfolio/internal/models"
	"github.com/lquan-tech/porfolio/internal/providers"
	"github.com/lquan-tech/porfolio/internal/structures"
)

const maxContactBodySize = 64 << 10 // 64 KB

type ContactController struct {
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
	config  *structures.Config
}

func NewContactController(logger providers.Logger, metrics providers.MetricsProviderInterface, config *structures.Config) *ContactController {
	return &ContactController{
		logger:  logger,
		metrics: metrics,
		config:  config,
	}
}

type contactError struct {
	Error string `json:"error"`
}

// Submit validates a contact message and logs it. Nothing is stored; the
// receipt id only ties a log line to a response.
func (cc *ContactController) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBodySize)

	var msg models.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Message = strings.TrimSpace(msg.Message)

	if err := cc.validateMessage(&msg); err != nil {
		writeValidationError(w, err)
		return
	}

	id := uuid.NewString()
	cc.logger.Infof(providers.TypeContact, "Contact message %s from %s <%s>: %s", id, msg.Name, msg.Email, msg.Subject)
	cc.metrics.IncContactAccepted()

	gson, err := json.Marshal(models.ContactReceipt{ID: id})
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_, _ = w.Write(gson)
}

func (cc *ContactController) validateMessage(msg *models.ContactMessage) error {
	v := validate.Struct(msg)
	if !v.Validate() {
		return v.Errors.OneError()
	}
	if limit := cc.config.Contact.MaxMessageLen; limit > 0 && len(msg.Message) > limit {
		return errMessageTooLong
	}
	return nil
}

var errMessageTooLong = validationError("message exceeds configured length limit")

type validationError string

func (e validationError) Error() string { return string(e) }

func writeValidationError(w http.ResponseWriter, err error) {
	gson, merr := json.Marshal(contactError{Error: err.Error()})
	if merr != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_, _ = w.Write(gson)
}
