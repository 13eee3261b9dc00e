package background

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/helpconnect/helpconnect-api/schema"
	"github.com/helpconnect/helpconnect-api/utils"
)

// BroadcastNewRequest is the task run when someone asks the community for
// help: it builds the localized notification for the new request. Delivery
// transports hang off this hook; for now the rendered notification is
// logged.
func (b *Background) BroadcastNewRequest(requestID string) error {
	req, err := b.Store.GetRequest(requestID)
	if err != nil {
		return err
	}

	owner, err := b.Store.GetAccount(req.UserID)
	if err != nil {
		return err
	}

	title, body, err := renderNewRequestNotification(*req, *owner, owner.Language)
	if err != nil {
		return err
	}

	log.WithField("request_id", requestID).
		WithField("title", title).
		WithField("body", body).
		Info("broadcast new request notification")

	return nil
}

// renderNewRequestNotification localizes the notification line in the
// recipient's preferred language, falling back to English.
func renderNewRequestNotification(req schema.HelpRequest, owner schema.Account, lang string) (string, string, error) {
	if lang == "" {
		lang = "en"
	}
	localizer := utils.NewLocalizer(lang)

	title, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID: "notification_new_request_title",
	})
	if err != nil {
		return "", "", err
	}

	body, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID: "notification_new_request_body",
		TemplateData: map[string]interface{}{
			"Username": owner.Username,
			"Title":    req.Title,
		},
	})
	if err != nil {
		return "", "", err
	}

	return title, body, nil
}
