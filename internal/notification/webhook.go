package notification

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Webhook posts fire-and-forget JSON notifications (follow-up reminders) to
// an external endpoint. Failures are logged and never surfaced to the user.
type Webhook struct {
	URL    string
	Client *http.Client
	Log    zerolog.Logger
}

func NewWebhook(url string, log zerolog.Logger) *Webhook {
	return &Webhook{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
		Log:    log,
	}
}

// SendReminder notifies about an upcoming follow-up task.
func (wh *Webhook) SendReminder(taskID uint, title string, dueDate time.Time) {
	if wh.URL == "" {
		return
	}
	payload := map[string]any{
		"type":    "task_reminder",
		"taskId":  taskID,
		"title":   title,
		"dueDate": dueDate.Format(time.RFC3339),
	}
	body, _ := json.Marshal(payload)

	resp, err := wh.Client.Post(wh.URL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		wh.Log.Warn().Err(err).Uint("task_id", taskID).Msg("reminder webhook failed")
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		wh.Log.Warn().Int("status", resp.StatusCode).Uint("task_id", taskID).Msg("reminder webhook rejected")
	}
}
