// Package push contains the Firebase Cloud Messaging implementation of the
// push gateway.
package push

import (
	"context"
	"fmt"

	"sharefit/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type fcmService struct {
	client *messaging.Client
}

// NewFCMService creates a new FCM push gateway instance
func NewFCMService(ctx context.Context, credentialsPath string) (service.PushGateway, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &fcmService{
		client: client,
	}, nil
}

// Send delivers a push notification to a single device token.
// A permanently dead token is reported as service.ErrUnregisteredToken so the
// caller can drop it from storage.
func (s *fcmService) Send(ctx context.Context, token, title, body string, data map[string]string, highPriority bool) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if highPriority {
		message.Android = &messaging.AndroidConfig{
			Priority: "high",
		}
		message.APNS = &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority": "10",
			},
		}
	}

	_, err := s.client.Send(ctx, message)
	if err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			return fmt.Errorf("token rejected by FCM: %w", service.ErrUnregisteredToken)
		}

		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}

// SendEach delivers a push notification to multiple device tokens (max 500 tokens)
func (s *fcmService) SendEach(ctx context.Context, tokens []string, title, body string, data map[string]string, highPriority bool) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}

	// Firebase limits to 500 tokens per request
	if len(tokens) > 500 {
		return 0, 0, nil, fmt.Errorf("token count exceeds limit: %d (max 500)", len(tokens))
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if highPriority {
		message.Android = &messaging.AndroidConfig{
			Priority: "high",
		}
		message.APNS = &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority": "10",
			},
		}
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("failed to send multicast notification: %w", err)
	}

	successCount = response.SuccessCount
	failureCount = response.FailureCount

	// Collect invalid tokens
	invalidTokens = make([]string, 0)
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error != nil {
			// Check if error is due to invalid or unregistered token
			if messaging.IsInvalidArgument(sendResponse.Error) ||
				messaging.IsUnregistered(sendResponse.Error) {
				invalidTokens = append(invalidTokens, tokens[idx])
			}
		}
	}

	return successCount, failureCount, invalidTokens, nil
}
