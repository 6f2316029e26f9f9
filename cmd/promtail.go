package main

import (
	"github.com/ic2hrmk/promtail"
	"github.com/sirupsen/logrus"
)

// lokiHook mirrors every logrus entry to Loki.
type lokiHook struct {
	client promtail.Client
}

func (h *lokiHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *lokiHook) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		return err
	}

	switch entry.Level {
	case logrus.TraceLevel, logrus.DebugLevel:
		h.client.Debugf("%s", line)
	case logrus.InfoLevel:
		h.client.Infof("%s", line)
	case logrus.WarnLevel:
		h.client.Warnf("%s", line)
	default:
		h.client.Errorf("%s", line)
	}

	return nil
}

func (a *App) initLoki() error {
	if a.Config.LokiAddr == "" {
		return nil
	}

	identifiers := map[string]string{
		"instanceId": a.Config.AppName,
	}

	promTail, err := promtail.NewJSONv1Client(a.Config.LokiAddr, identifiers)
	if err != nil {
		return err
	}

	a.PromTail = promTail
	a.Logger.AddHook(&lokiHook{client: promTail})

	return nil
}

func (a *App) closeLoki() {
	if a.PromTail != nil {
		a.PromTail.Close()
	}
}
