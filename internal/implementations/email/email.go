package email

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"schoolops/internal/core/domain/common"
	"schoolops/internal/core/domain/user"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const (
	passwordResetSubject = "OMOTEC Password Reset"
	charsetUTF8          = "UTF-8"
	sendTimeout          = 10 * time.Second
)

type ResetTokenSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender        string
	resetBaseURL  url.URL
	tokenValidFor time.Duration
}

func NewResetTokenSender(
	awsConfig aws.Config,
	sender string,
	resetBaseURL url.URL,
	tokenValidFor time.Duration,
) *ResetTokenSender {
	return &ResetTokenSender{
		ses:           ses.NewFromConfig(awsConfig),
		sender:        sender,
		resetBaseURL:  resetBaseURL,
		tokenValidFor: tokenValidFor,
	}
}

func (s *ResetTokenSender) SendResetToken(
	ctx context.Context,
	email common.Email,
	token user.ResetToken,
) error {
	resetURL := s.resetURL(token)
	subject := passwordResetSubject
	htmlBody := fmt.Sprintf(
		"<p>Click the link below to reset your password:</p>"+
			"<p><a href=\"%s\">%s</a></p>"+
			"<p>This link is valid for %d minutes.</p>",
		resetURL,
		resetURL,
		int(s.tokenValidFor.Minutes()),
	)
	textBody := fmt.Sprintf(
		"Reset your password: %s\nThis link is valid for %d minutes.",
		resetURL,
		int(s.tokenValidFor.Minutes()),
	)
	charset := charsetUTF8

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	_, err := s.ses.SendEmail(
		ctx,
		&ses.SendEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{string(email)},
			},
			Message: &types.Message{
				Subject: &types.Content{Charset: &charset, Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Charset: &charset, Data: &htmlBody},
					Text: &types.Content{Charset: &charset, Data: &textBody},
				},
			},
		},
	)
	return err
}

func (s *ResetTokenSender) resetURL(token user.ResetToken) string {
	u := s.resetBaseURL.JoinPath("reset-password")
	q := u.Query()
	q.Set("token", string(token))
	u.RawQuery = q.Encode()
	return u.String()
}
