package notify

import (
	"github.com/sirupsen/logrus"

	"chronoclicker/internal/domain/clicker"
)

// LogSink writes player notifications to the structured log. Destructive
// variants log at warn level.
type LogSink struct {
	Log *logrus.Logger
}

func (s LogSink) Notify(n clicker.Notification) {
	if s.Log == nil {
		return
	}
	entry := s.Log.WithFields(logrus.Fields{
		"title":   n.Title,
		"variant": n.Variant,
	})
	if n.Variant == clicker.VariantDestructive {
		entry.Warn(n.Description)
		return
	}
	entry.Info(n.Description)
}
