package chatbot

import (
	"context"
	"fmt"

	dialogflow "cloud.google.com/go/dialogflow/apiv2"
	"cloud.google.com/go/dialogflow/apiv2/dialogflowpb"
	"google.golang.org/api/option"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
)

// DialogflowClient implements domain.IntentClient against the Dialogflow
// sessions API.
type DialogflowClient struct {
	projectID       string
	credentialsFile string
	languageCode    string
}

// NewDialogflowClient creates a Dialogflow-backed intent client.
func NewDialogflowClient(projectID, credentialsFile, languageCode string) domain.IntentClient {
	if languageCode == "" {
		languageCode = "ko-KR"
	}
	return &DialogflowClient{
		projectID:       projectID,
		credentialsFile: credentialsFile,
		languageCode:    languageCode,
	}
}

// DetectIntent implements domain.IntentClient
func (d *DialogflowClient) DetectIntent(ctx context.Context, sessionID, message string) (string, error) {
	client, err := dialogflow.NewSessionsClient(ctx, option.WithCredentialsFile(d.credentialsFile))
	if err != nil {
		return "", fmt.Errorf("failed to create dialogflow client: %w", err)
	}
	defer client.Close()

	req := &dialogflowpb.DetectIntentRequest{
		Session: fmt.Sprintf("projects/%s/agent/sessions/%s", d.projectID, sessionID),
		QueryInput: &dialogflowpb.QueryInput{
			Input: &dialogflowpb.QueryInput_Text{
				Text: &dialogflowpb.TextInput{
					Text:         message,
					LanguageCode: d.languageCode,
				},
			},
		},
	}

	resp, err := client.DetectIntent(ctx, req)
	if err != nil {
		return "", fmt.Errorf("dialogflow request failed: %w", err)
	}

	result := resp.GetQueryResult()
	text := result.GetFulfillmentText()
	if text != "" {
		return text, nil
	}

	// Empty fulfillment: fall back on the matched action, then the intent name.
	switch result.GetAction() {
	case "login":
		return "To log in, check the top right of the page.", nil
	case "signup":
		return "To sign up, click the register button at the top right.", nil
	default:
		return fmt.Sprintf("Recognized intent '%s' but it has no response. Please try another question.",
			result.GetIntent().GetDisplayName()), nil
	}
}
