package notification

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/slack-go/slack"

	"godsendjoseph.dev/package-uploader/internal/storage"
)

// SlackNotifier posts upload events to a Slack incoming webhook.
// A disabled notifier accepts every call and sends nothing.
type SlackNotifier struct {
	webhookURL string
	channel    string
	username   string
	iconEmoji  string
	enabled    bool
}

func NewSlackNotifier(webhookURL, channel, username, iconEmoji string, enabled bool) *SlackNotifier {
	return &SlackNotifier{
		webhookURL: webhookURL,
		channel:    channel,
		username:   username,
		iconEmoji:  iconEmoji,
		enabled:    enabled && webhookURL != "",
	}
}

func (s *SlackNotifier) Enabled() bool {
	return s != nil && s.enabled
}

// SendRichNotification sends a single attachment; fields are sorted by title.
func (s *SlackNotifier) SendRichNotification(ctx context.Context, title, message, color string, fields map[string]string) error {
	if !s.Enabled() {
		return nil
	}

	titles := make([]string, 0, len(fields))
	for k := range fields {
		titles = append(titles, k)
	}
	sort.Strings(titles)

	attachmentFields := make([]slack.AttachmentField, 0, len(fields))
	for _, k := range titles {
		attachmentFields = append(attachmentFields, slack.AttachmentField{
			Title: k,
			Value: fields[k],
			Short: len(fields[k]) < 20,
		})
	}

	msg := &slack.WebhookMessage{
		Channel:   s.channel,
		Username:  s.username,
		IconEmoji: s.iconEmoji,
		Attachments: []slack.Attachment{{
			Title:      title,
			Text:       message,
			Color:      color,
			Fields:     attachmentFields,
			MarkdownIn: []string{"text", "fields"},
		}},
	}

	if err := slack.PostWebhookContext(ctx, s.webhookURL, msg); err != nil {
		return fmt.Errorf("post slack webhook: %w", err)
	}
	return nil
}

func (s *SlackNotifier) NotifyUploadSucceeded(ctx context.Context, uploadID string, result *storage.UploadResult) error {
	if result == nil {
		return nil
	}

	return s.SendRichNotification(ctx,
		fmt.Sprintf("%s package uploaded", result.FileType),
		result.URL,
		"good",
		map[string]string{
			"Upload ID": uploadID,
			"Object":    result.Key,
			"Bucket":    result.Bucket,
			"Size":      fmt.Sprintf("%.2f MB", result.SizeMB),
		},
	)
}

// NotifyServerError reports a 5xx answered to request.
func (s *SlackNotifier) NotifyServerError(ctx context.Context, err error, request *http.Request) error {
	if err == nil {
		return nil
	}

	fields := map[string]string{
		"Error": fmt.Sprintf("`%v`", err),
	}
	if request != nil {
		fields["Method"] = request.Method
		fields["Path"] = request.URL.Path
		fields["User-Agent"] = request.UserAgent()
		fields["Remote IP"] = request.RemoteAddr
	}

	return s.SendRichNotification(ctx,
		fmt.Sprintf("Package upload failed (HTTP %d)", http.StatusInternalServerError),
		"",
		"danger",
		fields,
	)
}
