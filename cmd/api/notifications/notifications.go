package notifications

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/kiwi-kloset/cmd/api/costume"
)

const topicCostumeAdded = "/New_costume_added"

type Ntfy struct {
	baseURL string
	enabled bool
	client  *http.Client
}

func NewNtfy(enableNotifications bool, notificationsBaseURL string, client *http.Client) *Ntfy {
	if client == nil {
		client = &http.Client{}
	}
	return &Ntfy{
		baseURL: strings.TrimRight(notificationsBaseURL, "/"),
		enabled: enableNotifications,
		client:  client,
	}
}

func CostumeAddedMessage(c costume.CostumeView) string {
	return fmt.Sprintf("New costume added: #%d %s (%s) at %s", c.ID, c.Name, c.Size, c.BranchName)
}

/* Publishes the new costume to the ntfy topic. Does nothing when notifications are disabled. */
func (ntf *Ntfy) CostumeCreated(ctx context.Context, c costume.CostumeView) error {
	if !ntf.enabled {
		return nil
	}

	topic := ntf.baseURL + topicCostumeAdded
	message := CostumeAddedMessage(c)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, topic, strings.NewReader(message))
	if err != nil {
		return fmt.Errorf("error delivering message (%s) to topic (%s): %w", message, topic, err)
	}
	req.Header.Set("Title", "Kiwi Kloset inventory")
	req.Header.Set("Tags", "performing_arts")

	resp, err := ntf.client.Do(req)
	if err != nil {
		return fmt.Errorf("error delivering message (%s) to topic (%s): %w", message, topic, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return costume.NewErrNotificationFailed(resp.StatusCode)
	}
	return nil
}
