/**
 * @description
 * Live audit event feed over WebSocket, built on melody. The service layer
 * hands every recorded audit entry to the feed, which broadcasts it to all
 * connected dashboard sessions; the presentation layer subscribes instead
 * of polling the audit log.
 */
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/olahol/melody"

	"github.com/trustmark/designation-service/internal/domain"
)

// AuditFeed broadcasts audit entries to WebSocket subscribers.
type AuditFeed struct {
	m      *melody.Melody
	logger *slog.Logger
}

// NewAuditFeed creates the feed with keep-alive settings suitable for
// long-lived dashboard connections.
func NewAuditFeed(logger *slog.Logger) *AuditFeed {
	m := melody.New()
	m.Config.MaxMessageSize = 1024
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	m.HandleError(func(s *melody.Session, err error) {
		logger.Warn("audit feed session error", "error", err)
	})

	return &AuditFeed{m: m, logger: logger}
}

// HandleWS upgrades the request to a WebSocket subscription.
func (f *AuditFeed) HandleWS(w http.ResponseWriter, r *http.Request) {
	if err := f.m.HandleRequest(w, r); err != nil {
		f.logger.Warn("failed to upgrade websocket", "error", err)
	}
}

// AuditRecorded implements app.EventSink by broadcasting the entry to every
// subscriber.
func (f *AuditFeed) AuditRecorded(entry domain.AuditEntry) {
	msg, err := json.Marshal(entry)
	if err != nil {
		f.logger.Error("failed to encode audit entry for broadcast", "error", err)
		return
	}
	if err := f.m.Broadcast(msg); err != nil {
		f.logger.Warn("audit feed broadcast failed", "error", err)
	}
}

// Close shuts down the feed and its sessions.
func (f *AuditFeed) Close() error {
	return f.m.Close()
}
